// Package models defines the records persisted by the server and the request
// payloads accepted by the HTTP API.
package models

import "time"

// User is a row of the users table. Password always holds a bcrypt hash.
type User struct {
	ID               int64
	Name             string
	Password         string
	RegistrationTime time.Time
}

// Ad is a row of the ads table.
type Ad struct {
	ID               int64
	Title            string
	Description      string
	RegistrationTime time.Time
	OwnerID          int64
}

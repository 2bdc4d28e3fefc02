package api

import "time"

// UserCreated is returned by POST /user.
type UserCreated struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// User is returned by GET and PATCH /user/{id}.
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	RegistrationTime time.Time `json:"registration_time"`
	Status           string    `json:"status,omitempty"`
}

// UserUpdate is a PATCH /user/{id} body. Nil fields are not sent.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AdCreated is returned by POST /user/{id}/ads.
type AdCreated struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerID     int64  `json:"owner_id"`
}

// Ad is returned by GET /ads/{id}.
type Ad struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	RegistrationTime time.Time `json:"registration_time"`
	OwnerID          int64     `json:"owner_id"`
}

// AdUpdate is a PATCH /ads/{id} body.
type AdUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AdChange is returned by PATCH /ads/{id}.
type AdChange struct {
	ID             int64  `json:"id"`
	OwnerID        int64  `json:"owner_id"`
	OldTitle       string `json:"old_title"`
	NewTitle       string `json:"new_title"`
	OldDescription string `json:"old_description"`
	NewDescription string `json:"new_description"`
	Status         string `json:"status"`
}

// AdSummary is one element of GET /ads/user/{id}.
type AdSummary struct {
	AdsID       int64  `json:"ads_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

// Deleted confirms a DELETE. Name is set for users, Title for ads.
type Deleted struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	Title  string `json:"title,omitempty"`
	Status string `json:"status"`
}

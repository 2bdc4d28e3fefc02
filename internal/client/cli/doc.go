// Package cli provides the adboard command-line client.
//
// Commands are built with cobra and talk to the HTTP API through
// internal/client/api:
//
//	adboard user create --name alice        (password prompted without echo)
//	adboard user get 1
//	adboard user update 1 --name alice2 --password-prompt
//	adboard user delete 1
//	adboard ads create --owner 1 --title bike --description "red bike"
//	adboard ads get 1
//	adboard ads update 1 --description "blue bike"
//	adboard ads delete 1
//	adboard ads list --owner 1
//	adboard ping
//
// Replies are printed as indented JSON. Server errors become command errors
// and a non-zero exit status.
package cli

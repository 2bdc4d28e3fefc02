package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/adboard/internal/common"
)

const (
	MaxUserNameLength = 64
	// bcrypt ignores input past 72 bytes, so longer passwords are refused.
	MaxPasswordBytes = 72
)

// CreateUserRequest is the body of POST /user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	if err := ValidateUserName(r.Name); err != nil {
		return err
	}
	return ValidatePassword(r.Password)
}

// UserPatch lists the user fields PATCH /user/{id} may change.
// A nil field is left as is.
type UserPatch struct {
	Name     *string
	Password *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Password == nil
}

func (p UserPatch) Validate() error {
	if p.Name != nil {
		if err := ValidateUserName(*p.Name); err != nil {
			return err
		}
	}
	if p.Password != nil {
		return ValidatePassword(*p.Password)
	}
	return nil
}

func ValidateUserName(name string) error {
	return validateText("name", name, MaxUserNameLength)
}

func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", common.ErrorValidation, MaxPasswordBytes)
	}
	return nil
}

func validateText(field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", common.ErrorValidation, field, maxLen)
	}
	return nil
}

package models

const (
	MaxAdTitleLength       = 64
	MaxAdDescriptionLength = 384
)

// CreateAdRequest is the body of POST /user/{user_id}/ads.
type CreateAdRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CreateAdRequest) Validate() error {
	if err := ValidateAdTitle(r.Title); err != nil {
		return err
	}
	return ValidateAdDescription(r.Description)
}

// AdPatch lists the ad fields PATCH /ads/{id} may change.
type AdPatch struct {
	Title       *string
	Description *string
}

func (p AdPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}

func (p AdPatch) Validate() error {
	if p.Title != nil {
		if err := ValidateAdTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		return ValidateAdDescription(*p.Description)
	}
	return nil
}

// AdChange carries an ad before and after a PATCH.
type AdChange struct {
	Old *Ad
	New *Ad
}

func ValidateAdTitle(title string) error {
	return validateText("title", title, MaxAdTitleLength)
}

func ValidateAdDescription(description string) error {
	return validateText("description", description, MaxAdDescriptionLength)
}

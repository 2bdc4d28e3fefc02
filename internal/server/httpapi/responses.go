package httpapi

import (
	"time"

	"github.com/dmitrijs2005/adboard/internal/server/models"
)

const (
	statusCreated = "created"
	statusChanged = "has been changed"
	statusDeleted = "delete"
)

type userCreatedResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type userResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	RegistrationTime time.Time `json:"registration_time"`
	Status           string    `json:"status,omitempty"`
}

type userDeletedResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type adCreatedResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerID     int64  `json:"owner_id"`
}

type adResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	RegistrationTime time.Time `json:"registration_time"`
	OwnerID          int64     `json:"owner_id"`
}

type adChangedResponse struct {
	ID             int64  `json:"id"`
	OwnerID        int64  `json:"owner_id"`
	OldTitle       string `json:"old_title"`
	NewTitle       string `json:"new_title"`
	OldDescription string `json:"old_description"`
	NewDescription string `json:"new_description"`
	Status         string `json:"status"`
}

type adDeletedResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type adSummary struct {
	AdsID       int64  `json:"ads_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

func toUserResponse(u *models.User, status string) userResponse {
	return userResponse{
		ID:               u.ID,
		Name:             u.Name,
		RegistrationTime: u.RegistrationTime.UTC(),
		Status:           status,
	}
}

func toAdSummaries(ads []*models.Ad) []adSummary {
	out := make([]adSummary, 0, len(ads))
	for _, ad := range ads {
		out = append(out, adSummary{
			AdsID:       ad.ID,
			Title:       ad.Title,
			Description: ad.Description,
			OwnerID:     ad.OwnerID,
		})
	}
	return out
}

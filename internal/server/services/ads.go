package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adboard/internal/common"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/repomanager"
)

// AdService manages ads and the owner lookup.
type AdService struct {
	repomanager repomanager.RepositoryManager
}

func NewAdService(m repomanager.RepositoryManager) *AdService {
	return &AdService{repomanager: m}
}

// Create publishes an ad for ownerID. A missing owner yields
// common.ErrorNotFound and nothing is inserted; a taken title yields
// common.ErrorAlreadyExists.
func (s *AdService) Create(ctx context.Context, db dbx.DBTX, ownerID int64, req models.CreateAdRequest) (*models.Ad, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repomanager.Users(db).GetByID(ctx, ownerID); err != nil {
		return nil, userError(ownerID, err)
	}

	ad, err := s.repomanager.Ads(db).Create(ctx, &models.Ad{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, fmt.Errorf("ad with title %q: %w", req.Title, common.ErrorAlreadyExists)
		case errors.Is(err, common.ErrorNotFound):
			// owner deleted concurrently, reported by the foreign key
			return nil, fmt.Errorf("user %d: %w", ownerID, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("error creating ad: %w", err)
	}

	return ad, nil
}

func (s *AdService) Get(ctx context.Context, db dbx.DBTX, id int64) (*models.Ad, error) {
	ad, err := s.repomanager.Ads(db).GetByID(ctx, id)
	if err != nil {
		return nil, adError(id, err)
	}
	return ad, nil
}

// ListByOwner returns every ad of ownerID. An owner without ads, or an
// unknown owner, gives an empty slice.
func (s *AdService) ListByOwner(ctx context.Context, db dbx.DBTX, ownerID int64) ([]*models.Ad, error) {
	ads, err := s.repomanager.Ads(db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing ads of user %d: %w", ownerID, err)
	}
	return ads, nil
}

// Update applies patch and returns the ad as it was before and after.
func (s *AdService) Update(ctx context.Context, db dbx.DBTX, id int64, patch models.AdPatch) (*models.AdChange, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Ads(db)

	old, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, adError(id, err)
	}

	updated, err := repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) && patch.Title != nil {
			return nil, fmt.Errorf("ad with title %q: %w", *patch.Title, common.ErrorAlreadyExists)
		}
		return nil, adError(id, err)
	}

	return &models.AdChange{Old: old, New: updated}, nil
}

func (s *AdService) Delete(ctx context.Context, db dbx.DBTX, id int64) (*models.Ad, error) {
	ad, err := s.repomanager.Ads(db).Delete(ctx, id)
	if err != nil {
		return nil, adError(id, err)
	}
	return ad, nil
}

func adError(id int64, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("ad %d: %w", id, common.ErrorNotFound)
	}
	return fmt.Errorf("error accessing ad %d: %w", id, err)
}

package ads

import (
	"context"

	"github.com/dmitrijs2005/adboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, ad *models.Ad) (*models.Ad, error)
	GetByID(ctx context.Context, id int64) (*models.Ad, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Ad, error)
	Update(ctx context.Context, id int64, patch models.AdPatch) (*models.Ad, error)
	Delete(ctx context.Context, id int64) (*models.Ad, error)
}

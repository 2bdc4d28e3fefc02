// Package ads stores classified ads in PostgreSQL.
package ads

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/models"
)

var columns = []string{"ads_id", "title", "description", "registration_time", "owner_id"}

const returningColumns = "RETURNING ads_id, title, description, registration_time, owner_id"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts ad. A taken title yields common.ErrorAlreadyExists, an
// unknown owner common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, ad *models.Ad) (*models.Ad, error) {
	query :=
		`INSERT INTO ads (title, description, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING ads_id, registration_time
		 `

	err := r.db.QueryRowContext(ctx, query, ad.Title, ad.Description, ad.OwnerID).Scan(&ad.ID, &ad.RegistrationTime)
	if err != nil {
		return nil, dbx.ClassifyError(err)
	}

	return ad, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Ad, error) {
	query :=
		`SELECT ads_id, title, description, registration_time, owner_id FROM ads
		 WHERE ads_id = $1
		 `

	return scanAd(r.db.QueryRowContext(ctx, query, id))
}

// ListByOwner returns the owner's ads in insertion order. No ads is an empty
// slice, not an error.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Ad, error) {
	query, args, err := sq.Select(columns...).
		From("ads").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("ads_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.ClassifyError(err)
	}
	defer rows.Close()

	result := make([]*models.Ad, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.ClassifyError(err)
	}

	return result, nil
}

// Update changes only the fields set in patch and returns the stored row.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.AdPatch) (*models.Ad, error) {
	set := map[string]any{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := sq.Update("ads").
		SetMap(set).
		Where(sq.Eq{"ads_id": id}).
		Suffix(returningColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return scanAd(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.Ad, error) {
	query := `DELETE FROM ads WHERE ads_id = $1 ` + returningColumns

	return scanAd(r.db.QueryRowContext(ctx, query, id))
}

func scanAd(row interface{ Scan(dest ...any) error }) (*models.Ad, error) {
	ad := &models.Ad{}
	if err := row.Scan(&ad.ID, &ad.Title, &ad.Description, &ad.RegistrationTime, &ad.OwnerID); err != nil {
		return nil, dbx.ClassifyError(err)
	}
	return ad, nil
}

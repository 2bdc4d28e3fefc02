// Package users stores user accounts in PostgreSQL.
package users

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/models"
)

const returningColumns = "RETURNING id, name, password, registration_time"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts user and fills in the generated id and registration time.
// A taken name yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (name, password)
		 VALUES ($1, $2)
		 RETURNING id, registration_time
		 `

	err := r.db.QueryRowContext(ctx, query, user.Name, user.Password).Scan(&user.ID, &user.RegistrationTime)
	if err != nil {
		return nil, dbx.ClassifyError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, name, password, registration_time FROM users
		 WHERE id = $1
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Update changes only the fields set in patch and returns the stored row.
// The password in patch must already be hashed.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	set := map[string]any{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := sq.Update("users").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returningColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.User, error) {
	query := `DELETE FROM users WHERE id = $1 ` + returningColumns

	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	user := &models.User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Password, &user.RegistrationTime); err != nil {
		return nil, dbx.ClassifyError(err)
	}
	return user, nil
}

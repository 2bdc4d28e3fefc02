// Package services contains server-side business logic. Every method takes
// the transactional handle of the current request, so all repository calls
// made while serving one request share its transaction.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adboard/internal/common"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/auth"
	"github.com/dmitrijs2005/adboard/internal/server/config"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/repomanager"
)

// UserService creates, reads, updates and deletes user accounts. It owns
// password hashing: plaintext never reaches a repository.
type UserService struct {
	repomanager repomanager.RepositoryManager
	hashCost    int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{repomanager: m, hashCost: cfg.PasswordHashCost}
}

// Create registers a user. A taken name yields common.ErrorAlreadyExists.
func (s *UserService) Create(ctx context.Context, db dbx.DBTX, req models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.hashCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(db).Create(ctx, &models.User{Name: req.Name, Password: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("user with name %q: %w", req.Name, common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(db).GetByID(ctx, id)
	if err != nil {
		return nil, userError(id, err)
	}
	return user, nil
}

// Update applies patch to an existing user, re-hashing a new password.
// Concurrent updates are last-write-wins.
func (s *UserService) Update(ctx context.Context, db dbx.DBTX, id int64, patch models.UserPatch) (*models.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(db)

	if _, err := repo.GetByID(ctx, id); err != nil {
		return nil, userError(id, err)
	}

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, s.hashCost)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	user, err := repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) && patch.Name != nil {
			return nil, fmt.Errorf("user with name %q: %w", *patch.Name, common.ErrorAlreadyExists)
		}
		return nil, userError(id, err)
	}

	return user, nil
}

// Delete removes the user; their ads go with them (ON DELETE CASCADE).
func (s *UserService) Delete(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(db).Delete(ctx, id)
	if err != nil {
		return nil, userError(id, err)
	}
	return user, nil
}

// Verify reports whether password matches the stored hash of user id. It
// is the checking half of the hashing done by Create and Update, meant for
// Go callers that embed the services. The HTTP API has no login route, so
// no handler calls it.
func (s *UserService) Verify(ctx context.Context, db dbx.DBTX, id int64, password string) (bool, error) {
	user, err := s.Get(ctx, db, id)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(user.Password, password), nil
}

func userError(id int64, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
	}
	return fmt.Errorf("error accessing user %d: %w", id, err)
}

package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/adboard/internal/common"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/config"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/ads"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// memStore backs both fake repositories so foreign keys and cascades can be
// emulated.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*models.User
	ads      map[int64]*models.Ad
	nextUser int64
	nextAd   int64
	clock    func() time.Time

	// failWith, when set, is returned by every repository call.
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		users: map[int64]*models.User{},
		ads:   map[int64]*models.Ad{},
		clock: func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) },
	}
}

type fakeUsersRepo struct{ s *memStore }

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	for _, existing := range f.s.users {
		if existing.Name == u.Name {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.s.nextUser++
	u.ID = f.s.nextUser
	u.RegistrationTime = f.s.clock()
	cp := *u
	f.s.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id int64, p models.UserPatch) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Name != nil {
		for otherID, other := range f.s.users {
			if otherID != id && other.Name == *p.Name {
				return nil, common.ErrorAlreadyExists
			}
		}
		u.Name = *p.Name
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Delete(_ context.Context, id int64) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.s.users, id)
	for adID, ad := range f.s.ads {
		if ad.OwnerID == id {
			delete(f.s.ads, adID)
		}
	}
	return u, nil
}

type fakeAdsRepo struct{ s *memStore }

func (f *fakeAdsRepo) Create(_ context.Context, ad *models.Ad) (*models.Ad, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	if _, ok := f.s.users[ad.OwnerID]; !ok {
		return nil, common.ErrorNotFound
	}
	for _, existing := range f.s.ads {
		if existing.Title == ad.Title {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.s.nextAd++
	ad.ID = f.s.nextAd
	ad.RegistrationTime = f.s.clock()
	cp := *ad
	f.s.ads[ad.ID] = &cp
	return ad, nil
}

func (f *fakeAdsRepo) GetByID(_ context.Context, id int64) (*models.Ad, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	ad, ok := f.s.ads[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *ad
	return &cp, nil
}

func (f *fakeAdsRepo) ListByOwner(_ context.Context, ownerID int64) ([]*models.Ad, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	result := make([]*models.Ad, 0)
	for _, ad := range f.s.ads {
		if ad.OwnerID == ownerID {
			cp := *ad
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeAdsRepo) Update(_ context.Context, id int64, p models.AdPatch) (*models.Ad, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	ad, ok := f.s.ads[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Title != nil {
		for otherID, other := range f.s.ads {
			if otherID != id && other.Title == *p.Title {
				return nil, common.ErrorAlreadyExists
			}
		}
		ad.Title = *p.Title
	}
	if p.Description != nil {
		ad.Description = *p.Description
	}
	cp := *ad
	return &cp, nil
}

func (f *fakeAdsRepo) Delete(_ context.Context, id int64) (*models.Ad, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	ad, ok := f.s.ads[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.s.ads, id)
	return ad, nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return &fakeUsersRepo{m.s} }
func (m *fakeRepoManager) Ads(dbx.DBTX) ads.Repository                  { return &fakeAdsRepo{m.s} }

func newServices() (*UserService, *AdService, *memStore) {
	store := newMemStore()
	rm := &fakeRepoManager{s: store}
	cfg := &config.Config{PasswordHashCost: bcrypt.MinCost}
	return NewUserService(rm, cfg), NewAdService(rm), store
}

package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/logging"
	"github.com/dmitrijs2005/adboard/internal/server/config"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/stretchr/testify/require"
)

var regTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fakeUsers struct {
	create func(req models.CreateUserRequest) (*models.User, error)
	get    func(id int64) (*models.User, error)
	update func(id int64, p models.UserPatch) (*models.User, error)
	delete func(id int64) (*models.User, error)
}

func (f *fakeUsers) Create(_ context.Context, _ dbx.DBTX, req models.CreateUserRequest) (*models.User, error) {
	return f.create(req)
}
func (f *fakeUsers) Get(_ context.Context, _ dbx.DBTX, id int64) (*models.User, error) {
	return f.get(id)
}
func (f *fakeUsers) Update(_ context.Context, _ dbx.DBTX, id int64, p models.UserPatch) (*models.User, error) {
	return f.update(id, p)
}
func (f *fakeUsers) Delete(_ context.Context, _ dbx.DBTX, id int64) (*models.User, error) {
	return f.delete(id)
}

type fakeAds struct {
	create func(ownerID int64, req models.CreateAdRequest) (*models.Ad, error)
	get    func(id int64) (*models.Ad, error)
	list   func(ownerID int64) ([]*models.Ad, error)
	update func(id int64, p models.AdPatch) (*models.AdChange, error)
	delete func(id int64) (*models.Ad, error)
}

func (f *fakeAds) Create(_ context.Context, _ dbx.DBTX, ownerID int64, req models.CreateAdRequest) (*models.Ad, error) {
	return f.create(ownerID, req)
}
func (f *fakeAds) Get(_ context.Context, _ dbx.DBTX, id int64) (*models.Ad, error) {
	return f.get(id)
}
func (f *fakeAds) ListByOwner(_ context.Context, _ dbx.DBTX, ownerID int64) ([]*models.Ad, error) {
	return f.list(ownerID)
}
func (f *fakeAds) Update(_ context.Context, _ dbx.DBTX, id int64, p models.AdPatch) (*models.AdChange, error) {
	return f.update(id, p)
}
func (f *fakeAds) Delete(_ context.Context, _ dbx.DBTX, id int64) (*models.Ad, error) {
	return f.delete(id)
}

func testConfig() *config.Config {
	return &config.Config{
		EndpointAddrHTTP: "127.0.0.1:0",
		RequestTimeout:   time.Second,
		ShutdownTimeout:  time.Second,
	}
}

func newTestServer(t *testing.T, us UserService, as AdService) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return NewHTTPServer(testConfig(), logging.Nop{}, db, us, as), mock
}

func do(t *testing.T, s *HTTPServer, method, path, body string) (*http.Response, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

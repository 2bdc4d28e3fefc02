package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/logging"
	"github.com/dmitrijs2005/adboard/internal/server/config"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/ads"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubManager struct {
	migrateErr error
	migrated   bool
}

func (m *stubManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrated = true
	return m.migrateErr
}
func (m *stubManager) Users(db dbx.DBTX) users.Repository { return users.NewPostgresRepository(db) }
func (m *stubManager) Ads(db dbx.DBTX) ads.Repository     { return ads.NewPostgresRepository(db) }

func stubSeams(t *testing.T, db *sql.DB, openErr error, rm *stubManager) {
	t.Helper()

	oldOpen, oldRM, oldLogger := openDB, newRepositoryManager, newLogger
	t.Cleanup(func() { openDB, newRepositoryManager, newLogger = oldOpen, oldRM, oldLogger })

	openDB = func(context.Context, string) (*sql.DB, error) {
		if openErr != nil {
			return nil, openErr
		}
		return db, nil
	}
	newRepositoryManager = func() repomanager.RepositoryManager { return rm }
	newLogger = func(string) logging.Logger { return logging.Nop{} }
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrHTTP = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func TestNewApp_OpenError(t *testing.T) {
	stubSeams(t, nil, errors.New("connection refused"), &stubManager{})

	_, err := NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_MigrationErrorClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	rm := &stubManager{migrateErr: errors.New("migrations: bad sql")}
	stubSeams(t, db, nil, rm)

	_, err = NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.True(t, rm.migrated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunStopsAndClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	stubSeams(t, db, nil, &stubManager{})

	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

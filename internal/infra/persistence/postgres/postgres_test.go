package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"testing"
	"time"

	"moodify/config"
	deliverycontext "moodify/internal/delivery/context"
	"moodify/internal/domain/entity"
	"moodify/internal/errors"
	"moodify/internal/infra/persistence/postgres/migrations"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "uniq_users_email" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestUserMapping_RoundTrip(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "ana",
		Email:        "a@x.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestMigrations_CreateUniqueEmailIndex(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations.FS, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_email ON users (email)")
}

func TestRunMigrations_UsesEmbeddedDirectory(t *testing.T) {
	prev := gooseUpContext
	t.Cleanup(func() { gooseUpContext = prev })

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("relation already exists")
	}
	assert.ErrorContains(t, RunMigrations(context.Background(), nil), "failed to run migrations")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}

	gormLogger := newGormSlogLogger(base, cfg)
	sqlFn := func() (string, int64) { return `SELECT * FROM "users" WHERE email = 'a@x.com'`, 0 }

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	buf.Reset()

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	buf.Reset()

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	gormLogger.LogMode(logger.Info).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), `"msg":"GORM query"`)
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&base, nil))
	requestLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))

	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)
	gormLogger := newGormSlogLogger(baseLogger, &config.Config{})

	gormLogger.Error(ctx, "insert into %s failed", "users")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-1"`)
	assert.Contains(t, scoped.String(), "insert into users failed")
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "storefront_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SessionModel{}, &model.EntitlementSnapshotModel{}))

	return db
}

func testSession() *entity.Session {
	return &entity.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Profile: &entity.UserProfile{
			ID:        "user-1",
			Email:     "user@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Verified:  true,
		},
		SignedInAt: time.Now().Truncate(time.Second),
	}
}

func TestSessionRepository_SaveAndLoad(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", loaded.AccessToken)
	assert.Equal(t, "refresh-token", loaded.RefreshToken)
	require.NotNil(t, loaded.Profile)
	assert.Equal(t, "user@example.com", loaded.Profile.Email)
	assert.Equal(t, "Ada Lovelace", loaded.Profile.DisplayName())
	assert.True(t, loaded.Valid())
}

func TestSessionRepository_SaveReplacesExisting(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession()))

	replacement := testSession()
	replacement.AccessToken = "newer-token"
	replacement.Profile.Email = "other@example.com"
	require.NoError(t, repo.Save(ctx, replacement))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "newer-token", loaded.AccessToken)
	assert.Equal(t, "other@example.com", loaded.Profile.Email)
}

func TestSessionRepository_LoadAbsent(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_LoadCorruptRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	record := model.SessionModel{
		ID:          model.CurrentSessionID,
		AccessToken: "access-token",
		Profile:     "{not json",
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&record).Error)

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrCorruptRecord)
}

func TestSessionRepository_SaveRejectsInvalidSession(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	err := repo.Save(context.Background(), &entity.Session{AccessToken: "token-without-profile"})
	assert.Error(t, err)
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx))

	require.NoError(t, repo.Save(ctx, testSession()))
	require.NoError(t, repo.Delete(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestEntitlementCacheRepository_SaveAndLoad(t *testing.T) {
	repo := NewEntitlementCacheRepository(newTestDB(t))
	ctx := context.Background()

	expiry := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
	set := entity.NewEntitlementSet([]int64{3, 7}, &expiry, time.Now().Truncate(time.Second))
	require.NoError(t, repo.Save(ctx, "user-1", set))

	loaded, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, loaded.Contains(3))
	assert.True(t, loaded.Contains(7))
	assert.False(t, loaded.Contains(9))
	require.NotNil(t, loaded.Expiry)
	assert.True(t, set.Equal(loaded))
}

func TestEntitlementCacheRepository_KeyedByUser(t *testing.T) {
	repo := NewEntitlementCacheRepository(newTestDB(t))
	ctx := context.Background()

	set := entity.NewEntitlementSet([]int64{3}, nil, time.Now())
	require.NoError(t, repo.Save(ctx, "user-1", set))

	_, err := repo.Load(ctx, "user-2")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestEntitlementCacheRepository_SaveRequiresUserID(t *testing.T) {
	repo := NewEntitlementCacheRepository(newTestDB(t))

	err := repo.Save(context.Background(), "", entity.NewEntitlementSet(nil, nil, time.Now()))
	assert.Error(t, err)
}

func TestEntitlementCacheRepository_DeleteClearsAllUsers(t *testing.T) {
	repo := NewEntitlementCacheRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "user-1", entity.NewEntitlementSet([]int64{1}, nil, time.Now())))
	require.NoError(t, repo.Save(ctx, "user-2", entity.NewEntitlementSet([]int64{2}, nil, time.Now())))
	require.NoError(t, repo.Delete(ctx))

	_, err := repo.Load(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	_, err = repo.Load(ctx, "user-2")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

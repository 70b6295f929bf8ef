package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntitlementCacheRepository implements repository.EntitlementCacheRepository
// on the local SQLite database.
type EntitlementCacheRepository struct {
	db *gorm.DB
}

// NewEntitlementCacheRepository creates an entitlement cache backed by the
// local database.
func NewEntitlementCacheRepository(db *gorm.DB) repository.EntitlementCacheRepository {
	return &EntitlementCacheRepository{db: db}
}

// Save replaces the cached snapshot for the given user.
func (r *EntitlementCacheRepository) Save(ctx context.Context, userID string, set *entity.EntitlementSet) error {
	if userID == "" {
		return errors.New("refusing to cache entitlements without a user id")
	}

	toolIDs, err := json.Marshal(set.ToolIDs())
	if err != nil {
		return errors.Wrap(err, "failed to encode entitlement snapshot")
	}

	record := model.EntitlementSnapshotModel{
		UserID:    userID,
		ToolIDs:   string(toolIDs),
		Expiry:    set.Expiry,
		FetchedAt: set.FetchedAt,
		UpdatedAt: time.Now(),
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error

	return errors.Wrap(err, "failed to store entitlement snapshot")
}

// Load returns the cached snapshot for the given user.
func (r *EntitlementCacheRepository) Load(ctx context.Context, userID string) (*entity.EntitlementSet, error) {
	var record model.EntitlementSnapshotModel
	err := r.db.WithContext(ctx).
		First(&record, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load entitlement snapshot")
	}

	var toolIDs []int64
	if err := json.Unmarshal([]byte(record.ToolIDs), &toolIDs); err != nil {
		return nil, errors.Wrap(repository.ErrCorruptRecord, err.Error())
	}

	return entity.NewEntitlementSet(toolIDs, record.Expiry, record.FetchedAt), nil
}

// Delete removes all cached snapshots.
func (r *EntitlementCacheRepository) Delete(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.EntitlementSnapshotModel{}).Error

	return errors.Wrap(err, "failed to delete entitlement snapshots")
}

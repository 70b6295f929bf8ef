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

// SessionRepository implements repository.SessionRepository on the local
// SQLite database.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a session repository backed by the local database.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &SessionRepository{db: db}
}

// storedProfile is the serialized form of the user profile inside the session row.
type storedProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Verified  bool   `json:"verified"`
}

// Save replaces the stored session.
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if !session.Valid() {
		return errors.New("refusing to store an invalid session")
	}

	profile, err := json.Marshal(storedProfile{
		ID:        session.Profile.ID,
		Email:     session.Profile.Email,
		FirstName: session.Profile.FirstName,
		LastName:  session.Profile.LastName,
		Phone:     session.Profile.Phone,
		Verified:  session.Profile.Verified,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode session profile")
	}

	record := model.SessionModel{
		ID:           model.CurrentSessionID,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Profile:      string(profile),
		SignedInAt:   session.SignedInAt,
		UpdatedAt:    time.Now(),
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error

	return errors.Wrap(err, "failed to store session")
}

// Load returns the stored session, repository.ErrSessionNotFound when absent,
// or repository.ErrCorruptRecord when the row cannot be decoded.
func (r *SessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var record model.SessionModel
	err := r.db.WithContext(ctx).
		First(&record, model.CurrentSessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var profile storedProfile
	if err := json.Unmarshal([]byte(record.Profile), &profile); err != nil {
		return nil, errors.Wrap(repository.ErrCorruptRecord, err.Error())
	}
	if record.AccessToken == "" || profile.Email == "" {
		return nil, errors.Wrap(repository.ErrCorruptRecord, "session row missing required fields")
	}

	return &entity.Session{
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		Profile: &entity.UserProfile{
			ID:        profile.ID,
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Phone:     profile.Phone,
			Verified:  profile.Verified,
		},
		SignedInAt: record.SignedInAt,
	}, nil
}

// Delete removes the stored session. Deleting an absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Delete(&model.SessionModel{}, model.CurrentSessionID).Error

	return errors.Wrap(err, "failed to delete session")
}

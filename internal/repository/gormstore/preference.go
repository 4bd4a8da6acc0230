package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

type PreferenceRepository struct {
	store recordStore[domain.UserPreference]
}

func NewPreferenceRepository(db *gorm.DB, clock utils.Clock) *PreferenceRepository {
	return &PreferenceRepository{store: recordStore[domain.UserPreference]{db: db, clock: clock}}
}

func (r *PreferenceRepository) Insert(ctx context.Context, pref *domain.UserPreference) (*domain.UserPreference, error) {
	now := r.store.clock.Now()
	pref.CreatedAt = now
	pref.UpdatedAt = now

	if err := r.store.insert(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*domain.UserPreference, error) {
	return r.store.find(ctx, r.store.db, "user_id", userID)
}

func (r *PreferenceRepository) UpdateTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error) {
	return r.store.update(ctx, "user_id", userID, map[string]any{"theme": theme})
}

// UpsertTheme runs a conditional insert and, when another row already owns the
// user_id, falls back to a locked update in the same transaction.
func (r *PreferenceRepository) UpsertTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error) {
	var stored *domain.UserPreference
	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := r.store.clock.Now()
		candidate := domain.UserPreference{
			UserID:    userID,
			Theme:     theme,
			CreatedAt: now,
			UpdatedAt: now,
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&candidate)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 {
			stored = &candidate
			return nil
		}

		pref, err := r.store.updateTx(ctx, tx, "user_id", userID, map[string]any{"theme": theme})
		if err != nil {
			return err
		}
		if pref == nil {
			return fmt.Errorf("preference for user %q conflicted on insert but was not found for update", userID)
		}
		stored = pref
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return stored, nil
}

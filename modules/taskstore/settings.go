package taskstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is a persisted key/value pair for one-shot application
// state, the replacement for the mobile app's user-defaults flags.
type Setting struct {
	Key   string `gorm:"primarykey;size:64" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

// TableName returns the table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}

// seedFlagKey marks that the task list has been seeded from the
// remote source. Absent means "not yet seeded".
const seedFlagKey = "TaskList.hasSeeded"

// SeedFlag reports whether the initial remote seed has completed.
func (s *Store) SeedFlag(ctx context.Context) (bool, error) {
	var setting Setting
	err := s.db.WithContext(ctx).First(&setting, "key = ?", seedFlagKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read seed flag: %w", err)
	}
	return setting.Value == "true", nil
}

// SetSeedFlag records that seeding completed. Called only after the
// seed batch committed, so a failed first launch retries next start.
func (s *Store) SetSeedFlag(ctx context.Context) error {
	setting := Setting{Key: seedFlagKey, Value: "true"}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to set seed flag: %w", err)
	}
	return nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// settingsService handles per-user preferences.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetByUser retrieves the user's settings row.
func (s *settingsService) GetByUser(userID string) (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// Upsert applies the set fields of the update, creating the settings row with
// defaults on first write.
func (s *settingsService) Upsert(userID string, update SettingsUpdate) (*models.Settings, error) {
	var settings models.Settings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		settings = models.Settings{
			UserID:   userID,
			Theme:    models.ThemeLight,
			Currency: "USD",
			Language: "en",
		}
	}

	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.Currency != nil {
		settings.Currency = *update.Currency
	}
	if update.EmailAlerts != nil {
		settings.EmailAlerts = *update.EmailAlerts
	}
	if update.Language != nil {
		settings.Language = *update.Language
	}

	if err := s.db.Save(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// Delete removes the user's settings row. The delete is unscoped so a later
// upsert can recreate the row without tripping the unique index on user_id.
// Deleting absent settings is not an error.
func (s *settingsService) Delete(userID string) error {
	if err := s.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Settings{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

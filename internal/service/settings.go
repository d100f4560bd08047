package service

import (
	"fmt"

	"github.com/tkramer/wayfare/backend/internal/repo"
)

// SettingsService exposes user preferences. Only one exists today: the
// dark-mode flag.
type SettingsService struct {
	settings repo.SettingsRepo
}

// NewSettingsService constructs a SettingsService backed by the provided repo.
func NewSettingsService(r repo.SettingsRepo) *SettingsService {
	return &SettingsService{settings: r}
}

// DarkMode reports whether dark mode is enabled. Defaults to off.
func (s *SettingsService) DarkMode() (bool, error) {
	on, err := s.settings.DarkMode()
	if err != nil {
		return false, fmt.Errorf("service.SettingsService.DarkMode: %w", err)
	}
	return on, nil
}

// SetDarkMode persists the dark-mode preference.
func (s *SettingsService) SetDarkMode(on bool) error {
	if err := s.settings.SetDarkMode(on); err != nil {
		return fmt.Errorf("service.SettingsService.SetDarkMode: %w", err)
	}
	return nil
}

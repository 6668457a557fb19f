package store

import (
	"fmt"

	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

// UpdateAlertStatus transitions a collection alert, optionally assigning
// the cooperative that accepted it
func (s *Store) UpdateAlertStatus(id string, status models.AlertStatus, cooperativeID string) (models.CollectionAlert, error) {
	if !models.ValidAlertStatus(status) {
		return models.CollectionAlert{}, fmt.Errorf("%w: unknown alert status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Status = status
			if cooperativeID != "" {
				s.alerts[i].CooperativeID = cooperativeID
			}
			return s.alerts[i], nil
		}
	}
	return models.CollectionAlert{}, fmt.Errorf("alert %s: %w", id, ErrNotFound)
}

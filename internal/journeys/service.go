// Package journeys owns the lifecycle of quit journeys: creation with
// validated input, the one-way intro flag, check-ins, and deletion coupled
// to reminder cancellation. Screens and commands go through this service and
// never hold a long-lived journey reference.
package journeys

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"unhook/internal/logger"
	"unhook/internal/models"
	"unhook/internal/reminders"
	"unhook/internal/storage"
	"unhook/internal/validation"
)

type Service struct {
	store     storage.Provider
	reminders *reminders.Scheduler
}

func New(store storage.Provider, sched *reminders.Scheduler) *Service {
	return &Service{
		store:     store,
		reminders: sched,
	}
}

// Start creates a new journey for the substance. The reason is trimmed and
// must be non-empty; the substance must exist in the catalog. The journey is
// persisted before it is returned.
func (s *Service) Start(substanceID, reason string) (models.Journey, error) {
	if err := validation.SubstanceID(substanceID); err != nil {
		return models.Journey{}, err
	}

	trimmed, err := validation.Reason(reason)
	if err != nil {
		return models.Journey{}, err
	}

	journey := models.Journey{
		ID:          uuid.New().String(),
		SubstanceID: substanceID,
		Reason:      trimmed,
		StartDate:   time.Now().UTC(),
	}

	if err := s.store.AddJourney(journey); err != nil {
		return models.Journey{}, fmt.Errorf("failed to save journey: %w", err)
	}

	logger.Info("Started journey", "journey", journey.ID, "substance", substanceID)
	return journey, nil
}

// MarkIntroRead flips the journey's intro flag to true. The flip is one-way
// and idempotent; a missing journey is a silent no-op, never an error
// surfaced to the UI.
func (s *Service) MarkIntroRead(journeyID string) error {
	journey, err := s.store.GetJourney(journeyID)
	if err != nil {
		logger.Debug("markIntroRead on unknown journey", "journey", journeyID)
		return nil
	}

	if journey.HasReadIntro {
		return nil
	}

	journey.HasReadIntro = true
	if err := s.store.UpdateJourney(journey); err != nil {
		return fmt.Errorf("failed to update journey: %w", err)
	}
	return nil
}

// RecordCheckIn stamps the journey's last check-in with the current instant.
// Missing journeys are a silent no-op, like MarkIntroRead.
func (s *Service) RecordCheckIn(journeyID string) error {
	journey, err := s.store.GetJourney(journeyID)
	if err != nil {
		logger.Debug("recordCheckIn on unknown journey", "journey", journeyID)
		return nil
	}

	now := time.Now().UTC()
	journey.LastCheckIn = &now
	if err := s.store.UpdateJourney(journey); err != nil {
		return fmt.Errorf("failed to update journey: %w", err)
	}
	return nil
}

// Delete removes the journey and cancels its reminders. Cancellation runs
// even when the journey was already gone, so an interrupted earlier delete
// cannot leak a live reminder.
func (s *Service) Delete(journeyID string) error {
	deleteErr := s.store.DeleteJourney(journeyID)

	if err := s.reminders.CancelForJourney(journeyID); err != nil {
		return fmt.Errorf("failed to cancel reminders: %w", err)
	}

	if deleteErr != nil {
		return deleteErr
	}

	logger.Info("Deleted journey", "journey", journeyID)
	return nil
}

// Get returns the journey by id; the boolean is false when it does not exist.
func (s *Service) Get(journeyID string) (models.Journey, bool) {
	journey, err := s.store.GetJourney(journeyID)
	if err != nil {
		return models.Journey{}, false
	}
	return journey, true
}

// List returns all journeys in insertion order.
func (s *Service) List() ([]models.Journey, error) {
	return s.store.GetAllJourneys()
}

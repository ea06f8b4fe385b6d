package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type OccurrenceService struct {
	bookingRepo ports.BookingRepo
	publisher   ports.EventPublisher
	clock       ports.Clock
	policy      Policy
	logger      logger.Logger
}

func NewOccurrenceService(
	bookingRepo ports.BookingRepo,
	publisher ports.EventPublisher,
	clock ports.Clock,
	policy Policy,
	logger logger.Logger,
) *OccurrenceService {
	return &OccurrenceService{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		clock:       clock,
		policy:      policy.withDefaults(),
		logger:      logger,
	}
}

func (s *OccurrenceService) CheckIn(ctx context.Context, id, note string) (*domain.Occurrence, error) {
	return s.apply(ctx, id, domain.ActionCheckIn, note)
}

func (s *OccurrenceService) NoShow(ctx context.Context, id, note string) (*domain.Occurrence, error) {
	return s.apply(ctx, id, domain.ActionNoShow, note)
}

func (s *OccurrenceService) Cancel(ctx context.Context, id, note string) (*domain.Occurrence, error) {
	return s.apply(ctx, id, domain.ActionCancel, note)
}

func (s *OccurrenceService) Complete(ctx context.Context, id, note string) (*domain.Occurrence, error) {
	return s.apply(ctx, id, domain.ActionComplete, note)
}

type transitionRule struct {
	from []domain.OccurrenceStatus
	to   domain.OccurrenceStatus
}

var transitionRules = map[domain.OccurrenceAction]transitionRule{
	domain.ActionCheckIn: {
		from: []domain.OccurrenceStatus{domain.OccurrenceStatusActive},
		to:   domain.OccurrenceStatusCheckedIn,
	},
	domain.ActionNoShow: {
		from: []domain.OccurrenceStatus{domain.OccurrenceStatusActive, domain.OccurrenceStatusPendingPayment},
		to:   domain.OccurrenceStatusNoShow,
	},
	domain.ActionCancel: {
		from: []domain.OccurrenceStatus{domain.OccurrenceStatusActive, domain.OccurrenceStatusPendingPayment},
		to:   domain.OccurrenceStatusCancelled,
	},
	domain.ActionComplete: {
		from: []domain.OccurrenceStatus{domain.OccurrenceStatusCheckedIn},
		to:   domain.OccurrenceStatusCompleted,
	},
}

func (s *OccurrenceService) apply(ctx context.Context, id string, action domain.OccurrenceAction, note string) (*domain.Occurrence, error) {
	rule, ok := transitionRules[action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, action)
	}

	occ, err := s.bookingRepo.GetOccurrence(ctx, id)
	if err != nil {
		return nil, err
	}

	// Repeating an action that already took effect is a no-op.
	if occ.Status == rule.to {
		return occ, nil
	}
	if !slices.Contains(rule.from, occ.Status) {
		return nil, fmt.Errorf("%w: cannot %s an occurrence in status %s", domain.ErrInvalidTransition, action, occ.Status)
	}

	now := s.clock.Now()
	if err = s.checkWindow(action, occ, now); err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.TransitionOccurrence(ctx, domain.StatusTransition{
		ID:   id,
		From: rule.from,
		To:   rule.to,
		Note: note,
		At:   now.UTC(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidTransition) {
			return nil, fmt.Errorf("%s occurrence: %w", action, err)
		}
		// Lost a race; fine if the winner did the same thing.
		current, getErr := s.bookingRepo.GetOccurrence(ctx, id)
		if getErr == nil && current.Status == rule.to {
			return current, nil
		}
		return nil, err
	}

	s.logger.Info("occurrence updated",
		logger.String("occurrence_id", id),
		logger.String("action", string(action)),
		logger.String("status", string(updated.Status)),
	)

	name := domain.EventBookingUpdated
	if rule.to == domain.OccurrenceStatusCancelled {
		name = domain.EventBookingCancelled
	}
	s.publisher.Publish(ctx, domain.Event{
		Name:          name,
		CourtID:       updated.CourtID,
		BookingIDs:    []string{updated.BookingID},
		OccurrenceIDs: []string{updated.ID},
		At:            now.UTC(),
	})

	return updated, nil
}

// checkWindow enforces the time guards. They are evaluated on every call.
func (s *OccurrenceService) checkWindow(action domain.OccurrenceAction, occ *domain.Occurrence, now time.Time) error {
	start := occ.StartsAt(s.policy.Location)
	end := occ.EndsAt(s.policy.Location)

	switch action {
	case domain.ActionCheckIn:
		opens := start.Add(-s.policy.CheckInEarlyWindow)
		if now.Before(opens) || now.After(end) {
			return fmt.Errorf("%w: check-in is open from %s to %s",
				domain.ErrOutsideWindow, opens.Format(time.RFC3339), end.Format(time.RFC3339))
		}
	case domain.ActionNoShow:
		if !now.After(end) {
			return fmt.Errorf("%w: no-show can be recorded after %s",
				domain.ErrOutsideWindow, end.Format(time.RFC3339))
		}
	}
	return nil
}

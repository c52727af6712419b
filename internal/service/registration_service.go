package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/MayuriC-eng/CampusConnect/internal/repository"
	"github.com/MayuriC-eng/CampusConnect/internal/store"
	"github.com/MayuriC-eng/CampusConnect/internal/validation"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrRegistrationNotFound = errors.New("registration not found")

const tokenLength = 9

type RegistrationService interface {
	Register(ctx context.Context, eventID string, form models.RegistrationData) (*models.Registration, *models.Confirmation, error)
	ListRegistrations(ctx context.Context) ([]models.Registration, error)
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	Unregister(ctx context.Context, id string) error
	UnregisterAt(ctx context.Context, index int) error
	ToggleReminder(ctx context.Context, id string) (bool, error)
	ToggleReminderAt(ctx context.Context, index int) (bool, error)
}

type registrationService struct {
	repo     repository.RegistrationRepository
	events   repository.EventRepository
	notifier Notifier
	now      func() time.Time
}

func NewRegistrationService(repo repository.RegistrationRepository, events repository.EventRepository, notifier Notifier) RegistrationService {
	return &registrationService{
		repo:     repo,
		events:   events,
		notifier: notifier,
		now:      time.Now,
	}
}

// Register validates the form and appends a new registration. An empty eventID or
// "general" registers through the generic form; any other id must exist in the catalog.
// Repeated submissions are not deduplicated.
func (s *registrationService) Register(ctx context.Context, eventID string, form models.RegistrationData) (*models.Registration, *models.Confirmation, error) {
	eventName := models.GeneralEventName
	if eventID == "" {
		eventID = models.GeneralEventID
	}
	if eventID != models.GeneralEventID {
		event, ok := s.events.FindByID(ctx, eventID)
		if !ok {
			return nil, nil, ErrEventNotFound
		}
		eventName = event.Title
	}

	if err := validation.Registration(form); err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	confirmation := models.Confirmation{
		ID:        newToken(),
		Name:      form.Name,
		Email:     form.Email,
		Timestamp: now,
	}
	reg := models.Registration{
		ID:               uuid.NewString(),
		EventID:          eventID,
		EventName:        eventName,
		RegistrationData: form,
		QRCode:           confirmation.Encode(),
		Date:             now,
	}

	if err := s.repo.Append(ctx, reg); err != nil {
		return nil, nil, fmt.Errorf("create registration: %w", err)
	}

	log.WithField("registration", reg.ID).WithField("event", eventID).Info("registration created")
	notify(ctx, s.notifier, TopicRegistrationCreated, confirmation)

	return &reg, &confirmation, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	return s.repo.Load(ctx), nil
}

func (s *registrationService) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	for _, r := range s.repo.Load(ctx) {
		if id != "" && r.ID == id {
			return &r, nil
		}
	}
	return nil, ErrRegistrationNotFound
}

func (s *registrationService) Unregister(ctx context.Context, id string) error {
	n, err := s.repo.RemoveWhere(ctx, byRegistrationID(id))
	if err != nil {
		return fmt.Errorf("remove registration: %w", err)
	}
	if n == 0 {
		return ErrRegistrationNotFound
	}
	notify(ctx, s.notifier, TopicRegistrationCancelled, map[string]string{"id": id})
	return nil
}

// UnregisterAt removes by position in the current snapshot. A stale index removes
// whichever record now sits there.
func (s *registrationService) UnregisterAt(ctx context.Context, index int) error {
	if err := s.repo.RemoveAt(ctx, index); err != nil {
		return positionalErr(err)
	}
	notify(ctx, s.notifier, TopicRegistrationCancelled, map[string]int{"index": index})
	return nil
}

func (s *registrationService) ToggleReminder(ctx context.Context, id string) (bool, error) {
	var reminder bool
	n, err := s.repo.UpdateWhere(ctx, byRegistrationID(id), func(r *models.Registration) {
		r.Reminder = !r.Reminder
		reminder = r.Reminder
	})
	if err != nil {
		return false, fmt.Errorf("update registration: %w", err)
	}
	if n == 0 {
		return false, ErrRegistrationNotFound
	}
	notify(ctx, s.notifier, TopicReminderUpdated, map[string]any{"id": id, "reminder": reminder})
	return reminder, nil
}

func (s *registrationService) ToggleReminderAt(ctx context.Context, index int) (bool, error) {
	var reminder bool
	err := s.repo.UpdateAt(ctx, index, func(r *models.Registration) {
		r.Reminder = !r.Reminder
		reminder = r.Reminder
	})
	if err != nil {
		return false, positionalErr(err)
	}
	notify(ctx, s.notifier, TopicReminderUpdated, map[string]any{"index": index, "reminder": reminder})
	return reminder, nil
}

func byRegistrationID(id string) func(models.Registration) bool {
	return func(r models.Registration) bool {
		return id != "" && r.ID == id
	}
}

func positionalErr(err error) error {
	if errors.Is(err, store.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %v", ErrRegistrationNotFound, err)
	}
	return fmt.Errorf("update registration: %w", err)
}

// newToken returns a short opaque display token. It is not a key: collisions are harmless.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLength]
}

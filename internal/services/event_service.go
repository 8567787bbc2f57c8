package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/ecoevent/internal/metrics"
	"github.com/joshua-takyi/ecoevent/internal/models"
)

// ThumbnailUploader stores an event thumbnail and returns its public URL.
type ThumbnailUploader interface {
	UploadThumbnail(ctx context.Context, source string) (string, error)
}

type EventService struct {
	eventsRepo models.EventRepo
	uploader   ThumbnailUploader
	logger     *slog.Logger
	now        func() time.Time
}

func NewEventService(eventsRepo models.EventRepo, uploader ThumbnailUploader, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		eventsRepo: eventsRepo,
		uploader:   uploader,
		logger:     logger,
		now:        time.Now,
	}
}

// today is the local calendar date of the process clock.
func (es *EventService) today() string {
	return es.now().Format(models.DateLayout)
}

// checkEventDate applies the date policy: an event may be dated today or
// later, compared on the YYYY-MM-DD prefix.
func (es *EventService) checkEventDate(eventDate string) error {
	day, err := models.EventDay(eventDate)
	if err != nil {
		return validationErr("%s", err.Error())
	}
	if day < es.today() {
		return validationErr("Event date must be in the future!")
	}
	return nil
}

func (es *EventService) ListUpcoming(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListUpcomingEvents(ctx, es.today())
}

func (es *EventService) Search(ctx context.Context, searchText, eventType string) ([]*models.Event, error) {
	return es.eventsRepo.SearchEvents(ctx, searchText, eventType)
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event, authenticatedEmail string) (*models.InsertAck, error) {
	event.Sanitize()
	if err := models.Validate.Struct(event); err != nil {
		return nil, validationErr("All fields are required!")
	}
	if err := es.checkEventDate(event.EventDate); err != nil {
		return nil, err
	}

	// Tokens are not bound to creatorEmail; keep a trail when they differ.
	if authenticatedEmail != "" && !strings.EqualFold(authenticatedEmail, event.CreatorEmail) {
		es.logger.Warn("event creator differs from authenticated user",
			"creator_email", event.CreatorEmail,
			"token_email", authenticatedEmail,
		)
	}

	if es.uploader != nil && !isRemoteURL(event.Thumbnail) {
		url, err := es.uploader.UploadThumbnail(ctx, event.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		event.Thumbnail = url
	}

	event.BeforeCreate(es.now())
	ack, err := es.eventsRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	metrics.EventsCreated.Inc()
	return ack, nil
}

// GetEvent returns nil, nil when the event does not exist.
func (es *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if !models.IsValidID(id) {
		return nil, validationErr("invalid event id")
	}
	return es.eventsRepo.GetEventByID(ctx, id)
}

func (es *EventService) ListByOwner(ctx context.Context, email string) ([]*models.Event, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationErr("Email is required")
	}
	return es.eventsRepo.ListEventsByCreator(ctx, email)
}

// loadOwned fetches an event and checks that email owns it.
func (es *EventService) loadOwned(ctx context.Context, id, email string) (*models.Event, error) {
	if !models.IsValidID(id) {
		return nil, validationErr("invalid event id")
	}
	existing, err := es.eventsRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.CreatorEmail != email {
		return nil, ErrForbidden
	}
	return existing, nil
}

func (es *EventService) UpdateEvent(ctx context.Context, id string, patch *models.EventPatch) (*models.UpdateAck, error) {
	fields, err := patch.Fields()
	if err != nil {
		return nil, validationErr("%s", err.Error())
	}
	if len(fields) == 0 {
		return nil, validationErr("no fields to update")
	}
	if date, ok := fields["eventDate"].(string); ok {
		if err := es.checkEventDate(date); err != nil {
			return nil, err
		}
	}

	if _, err := es.loadOwned(ctx, id, strings.TrimSpace(patch.Email)); err != nil {
		return nil, err
	}

	fields["updatedAt"] = es.now()
	return es.eventsRepo.UpdateEvent(ctx, id, fields)
}

// DeleteEvent removes the event unconditionally.
func (es *EventService) DeleteEvent(ctx context.Context, id string) (*models.DeleteAck, error) {
	if !models.IsValidID(id) {
		return nil, validationErr("invalid event id")
	}
	return es.eventsRepo.DeleteEvent(ctx, id)
}

// DeleteOwnedEvent removes the event only when email owns it.
func (es *EventService) DeleteOwnedEvent(ctx context.Context, id, email string) (*models.DeleteAck, error) {
	if _, err := es.loadOwned(ctx, id, email); err != nil {
		return nil, err
	}
	return es.eventsRepo.DeleteEvent(ctx, id)
}

func isRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

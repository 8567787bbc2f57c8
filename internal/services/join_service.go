package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/ecoevent/internal/metrics"
	"github.com/joshua-takyi/ecoevent/internal/models"
)

type JoinService struct {
	joinedRepo models.JoinedEventRepo
	logger     *slog.Logger
	now        func() time.Time
}

func NewJoinService(joinedRepo models.JoinedEventRepo, logger *slog.Logger) *JoinService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JoinService{
		joinedRepo: joinedRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (js *JoinService) HasJoined(ctx context.Context, eventID, userEmail string) (bool, error) {
	userEmail = strings.TrimSpace(userEmail)
	eventID = strings.TrimSpace(eventID)
	if userEmail == "" {
		return false, validationErr("Email is required")
	}
	if eventID == "" {
		return false, validationErr("eventId is required")
	}

	record, err := js.joinedRepo.FindJoinedEvent(ctx, eventID, userEmail)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

// ListJoined returns the user's joins ordered by eventDate.
func (js *JoinService) ListJoined(ctx context.Context, userEmail string) ([]*models.JoinRecord, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, validationErr("Email is required")
	}
	return js.joinedRepo.ListJoinedEvents(ctx, userEmail)
}

// Join records that a user attends an event. The existence check gives a
// clean answer in the common case; the unique index settles races.
func (js *JoinService) Join(ctx context.Context, record *models.JoinRecord) (*models.InsertAck, error) {
	if record.EventID == "" || record.UserEmail == "" {
		return nil, validationErr("Invalid data!")
	}
	if err := record.CheckExtra(); err != nil {
		return nil, validationErr("%s", err.Error())
	}

	existing, err := js.joinedRepo.FindJoinedEvent(ctx, record.EventID, record.UserEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.JoinConflicts.Inc()
		return nil, ErrAlreadyJoined
	}

	record.BeforeCreate(js.now())
	ack, err := js.joinedRepo.CreateJoinedEvent(ctx, record)
	if errors.Is(err, models.ErrDuplicateJoin) {
		js.logger.Info("concurrent duplicate join rejected by index",
			"event_id", record.EventID,
			"user_email", record.UserEmail,
		)
		metrics.JoinConflicts.Inc()
		return nil, ErrAlreadyJoined
	}
	if err != nil {
		return nil, err
	}
	metrics.EventsJoined.Inc()
	return ack, nil
}

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-date prefix every eventDate must start with.
const DateLayout = "2006-01-02"

var ErrInvalidID = errors.New("invalid id")

type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Description  string             `bson:"description" json:"description" validate:"required"`
	EventType    string             `bson:"eventType" json:"eventType" validate:"required"` // e.g. "Cleanup", "Plantation"
	Thumbnail    string             `bson:"thumbnail" json:"thumbnail" validate:"required"`
	Location     string             `bson:"location" json:"location" validate:"required"`
	EventDate    string             `bson:"eventDate" json:"eventDate" validate:"required"` // ISO 8601, e.g. "2025-12-01" or "2025-12-01T09:00:00.000Z"
	CreatorEmail string             `bson:"creatorEmail" json:"creatorEmail" validate:"required"`
	CreatedAt    *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (e *Event) BeforeCreate(now time.Time) {
	e.ID = primitive.NewObjectID()
	e.CreatedAt = &now
	e.UpdatedAt = &now
}

func (e *Event) Sanitize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.EventType = strings.TrimSpace(e.EventType)
	e.Thumbnail = strings.TrimSpace(e.Thumbnail)
	e.Location = strings.TrimSpace(e.Location)
	e.EventDate = strings.TrimSpace(e.EventDate)
	e.CreatorEmail = strings.TrimSpace(e.CreatorEmail)
}

// EventPatch is the body of an update request. CreatorEmail is deliberately
// absent: ownership never changes after creation. Email names the requester.
type EventPatch struct {
	Email       string  `json:"email"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	EventType   *string `json:"eventType,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	Location    *string `json:"location,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"`
}

// Fields returns the present fields keyed by their document names.
// Values are trimmed; an empty value is reported as an error.
func (p *EventPatch) Fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"eventType", p.EventType},
		{"thumbnail", p.Thumbnail},
		{"location", p.Location},
		{"eventDate", p.EventDate},
	} {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return nil, fmt.Errorf("%s cannot be empty", f.name)
		}
		fields[f.name] = v
	}
	return fields, nil
}

// EventDay returns the calendar date an eventDate refers to.
func EventDay(eventDate string) (string, error) {
	if len(eventDate) < len(DateLayout) {
		return "", fmt.Errorf("eventDate must start with a YYYY-MM-DD date")
	}
	day := eventDate[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, day); err != nil {
		return "", fmt.Errorf("eventDate must start with a YYYY-MM-DD date")
	}
	return day, nil
}

func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDuplicateJoin = errors.New("duplicate join")

// JoinRecord links a user to an event they intend to attend. Clients may
// submit extra fields (title, thumbnail, ...) which are stored verbatim
// alongside the known ones.
type JoinRecord struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	EventID   string                 `bson:"eventId"`
	UserEmail string                 `bson:"userEmail"`
	EventDate string                 `bson:"eventDate,omitempty"`
	JoinedAt  *time.Time             `bson:"joinedAt,omitempty"`
	Extra     map[string]interface{} `bson:",inline"`
}

var joinReservedKeys = map[string]bool{
	"_id":       true,
	"eventId":   true,
	"userEmail": true,
	"eventDate": true,
	"joinedAt":  true,
}

func (j JoinRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(j.Extra)+5)
	for k, v := range j.Extra {
		out[k] = v
	}
	if !j.ID.IsZero() {
		out["_id"] = j.ID
	}
	out["eventId"] = j.EventID
	out["userEmail"] = j.UserEmail
	if j.EventDate != "" {
		out["eventDate"] = j.EventDate
	}
	if j.JoinedAt != nil {
		out["joinedAt"] = j.JoinedAt
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts a client join payload. _id and joinedAt are
// server-assigned and ignored.
func (j *JoinRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if j.EventID, err = stringField(raw, "eventId"); err != nil {
		return err
	}
	if j.UserEmail, err = stringField(raw, "userEmail"); err != nil {
		return err
	}
	if j.EventDate, err = stringField(raw, "eventDate"); err != nil {
		return err
	}

	j.Extra = nil
	for k, v := range raw {
		if joinReservedKeys[k] {
			continue
		}
		if j.Extra == nil {
			j.Extra = map[string]interface{}{}
		}
		j.Extra[k] = v
	}
	return nil
}

func stringField(raw map[string]interface{}, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return strings.TrimSpace(s), nil
}

// CheckExtra rejects extra field names MongoDB treats as operators or paths.
func (j *JoinRecord) CheckExtra() error {
	for k := range j.Extra {
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			return fmt.Errorf("invalid field name %q", k)
		}
	}
	return nil
}

func (j *JoinRecord) BeforeCreate(now time.Time) {
	j.ID = primitive.NewObjectID()
	j.JoinedAt = &now
}

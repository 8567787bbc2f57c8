package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestEventValidationRequiresAllFields(t *testing.T) {
	event := Event{
		Title:        "Beach Cleanup",
		Description:  "Bring gloves",
		EventType:    "Cleanup",
		Thumbnail:    "img.png",
		Location:     "Bay Area",
		EventDate:    "2999-01-01",
		CreatorEmail: "a@x.com",
	}
	require.NoError(t, Validate.Struct(event))

	event.Location = "   "
	event.Sanitize()
	assert.Error(t, Validate.Struct(event))
}

func TestEventPatchFields(t *testing.T) {
	patch := EventPatch{
		Email:    "a@x.com",
		Title:    strPtr("  New title "),
		Location: strPtr("Oakland"),
	}

	fields, err := patch.Fields()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"title": "New title", "location": "Oakland"}, fields)
}

func TestEventPatchRejectsEmptyValue(t *testing.T) {
	patch := EventPatch{Description: strPtr(" ")}
	_, err := patch.Fields()
	assert.ErrorContains(t, err, "description")
}

func TestEventPatchHasNoCreatorEmail(t *testing.T) {
	dec := json.NewDecoder(stringsReader(`{"email":"a@x.com","creatorEmail":"b@x.com"}`))
	dec.DisallowUnknownFields()

	var patch EventPatch
	assert.Error(t, dec.Decode(&patch))
}

func TestEventDay(t *testing.T) {
	day, err := EventDay("2025-12-01T09:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", day)

	for _, bad := range []string{"", "2025-1-1", "tomorrow", "2025-13-01"} {
		_, err := EventDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := parseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)

	_, err = parseID("not-an-id")
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.False(t, IsValidID("not-an-id"))
	assert.True(t, IsValidID(oid.Hex()))
}

func TestEventJSONUsesDocumentID(t *testing.T) {
	oid := primitive.NewObjectID()
	data, err := json.Marshal(Event{ID: oid, Title: "t"})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, oid.Hex(), out["_id"])
	assert.NotContains(t, out, "createdAt")
}

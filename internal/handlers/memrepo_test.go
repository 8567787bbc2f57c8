package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/joshua-takyi/ecoevent/internal/identity"
	"github.com/joshua-takyi/ecoevent/internal/models"
)

type memEvents struct {
	mu     sync.Mutex
	events map[string]*models.Event
	err    error
}

func newMemEvents() *memEvents {
	return &memEvents{events: map[string]*models.Event{}}
}

func (m *memEvents) list(match func(*models.Event) bool) ([]*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*models.Event{}
	for _, e := range m.events {
		if match(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	return out, nil
}

func (m *memEvents) ListUpcomingEvents(ctx context.Context, today string) ([]*models.Event, error) {
	return m.list(func(e *models.Event) bool { return e.EventDate >= today })
}

func (m *memEvents) SearchEvents(ctx context.Context, searchText, eventType string) ([]*models.Event, error) {
	return m.list(func(e *models.Event) bool {
		return (searchText == "" || e.Title == searchText) &&
			(eventType == "" || eventType == models.AllTypes || e.EventType == eventType)
	})
}

func (m *memEvents) ListEventsByCreator(ctx context.Context, email string) ([]*models.Event, error) {
	return m.list(func(e *models.Event) bool { return e.CreatorEmail == email })
}

func (m *memEvents) CreateEvent(ctx context.Context, event *models.Event) (*models.InsertAck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *event
	m.events[event.ID.Hex()] = &cp
	return &models.InsertAck{Acknowledged: true, InsertedID: event.ID.Hex()}, nil
}

func (m *memEvents) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEvents) UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*models.UpdateAck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return &models.UpdateAck{Acknowledged: true}, nil
	}
	if v, ok := fields["title"].(string); ok {
		e.Title = v
	}
	if v, ok := fields["eventDate"].(string); ok {
		e.EventDate = v
	}
	return &models.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memEvents) DeleteEvent(ctx context.Context, id string) (*models.DeleteAck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return &models.DeleteAck{Acknowledged: true}, nil
	}
	delete(m.events, id)
	return &models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

type memJoins struct {
	mu      sync.Mutex
	records []*models.JoinRecord
}

func (m *memJoins) FindJoinedEvent(ctx context.Context, eventID, userEmail string) (*models.JoinRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.EventID == eventID && r.UserEmail == userEmail {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memJoins) ListJoinedEvents(ctx context.Context, userEmail string) ([]*models.JoinRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.JoinRecord{}
	for _, r := range m.records {
		if r.UserEmail == userEmail {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	return out, nil
}

func (m *memJoins) CreateJoinedEvent(ctx context.Context, record *models.JoinRecord) (*models.InsertAck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.EventID == record.EventID && r.UserEmail == record.UserEmail {
			return nil, models.ErrDuplicateJoin
		}
	}
	m.records = append(m.records, record)
	return &models.InsertAck{Acknowledged: true, InsertedID: record.ID.Hex()}, nil
}

// tokenVerifier accepts tokens of the form "token-for:<email>".
type tokenVerifier struct{}

func (tokenVerifier) Verify(ctx context.Context, token string) (*identity.Principal, error) {
	const prefix = "token-for:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return nil, identity.ErrInvalidToken
	}
	return &identity.Principal{UID: "uid", Email: token[len(prefix):]}, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

var errStoreDown = errors.New("server selection timeout")

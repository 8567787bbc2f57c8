package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/joshua-takyi/ecoevent/internal/models"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*models.Event
	err    error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*models.Event{}}
}

func (f *fakeEventRepo) all(match func(*models.Event) bool) []*models.Event {
	out := []*models.Event{}
	for _, e := range f.events {
		if match(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

func (f *fakeEventRepo) ListUpcomingEvents(ctx context.Context, today string) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.all(func(e *models.Event) bool { return e.EventDate >= today })
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	return out, f.err
}

func (f *fakeEventRepo) SearchEvents(ctx context.Context, searchText, eventType string) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.all(func(e *models.Event) bool {
		if searchText != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(searchText)) {
			return false
		}
		if eventType != "" && eventType != models.AllTypes && !strings.EqualFold(e.EventType, eventType) {
			return false
		}
		return true
	}), f.err
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.InsertAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	cp := *event
	f.events[event.ID.Hex()] = &cp
	return &models.InsertAck{Acknowledged: true, InsertedID: event.ID.Hex()}, nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, f.err
	}
	cp := *e
	return &cp, f.err
}

func (f *fakeEventRepo) ListEventsByCreator(ctx context.Context, email string) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.all(func(e *models.Event) bool { return e.CreatorEmail == email }), f.err
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*models.UpdateAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return &models.UpdateAck{Acknowledged: true}, nil
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "title":
			e.Title = s
		case "description":
			e.Description = s
		case "eventType":
			e.EventType = s
		case "thumbnail":
			e.Thumbnail = s
		case "location":
			e.Location = s
		case "eventDate":
			e.EventDate = s
		}
	}
	return &models.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id string) (*models.DeleteAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return &models.DeleteAck{Acknowledged: true}, nil
	}
	delete(f.events, id)
	return &models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeJoinRepo struct {
	mu      sync.Mutex
	records []*models.JoinRecord
	// skipFind makes FindJoinedEvent miss so the insert path sees the race.
	skipFind bool
}

func (f *fakeJoinRepo) FindJoinedEvent(ctx context.Context, eventID, userEmail string) (*models.JoinRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.skipFind {
		return nil, nil
	}
	for _, r := range f.records {
		if r.EventID == eventID && r.UserEmail == userEmail {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeJoinRepo) ListJoinedEvents(ctx context.Context, userEmail string) ([]*models.JoinRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.JoinRecord{}
	for _, r := range f.records {
		if r.UserEmail == userEmail {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	return out, nil
}

func (f *fakeJoinRepo) CreateJoinedEvent(ctx context.Context, record *models.JoinRecord) (*models.InsertAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.EventID == record.EventID && r.UserEmail == record.UserEmail {
			return nil, models.ErrDuplicateJoin
		}
	}
	f.records = append(f.records, record)
	return &models.InsertAck{Acknowledged: true, InsertedID: record.ID.Hex()}, nil
}

func (f *fakeJoinRepo) count(eventID, userEmail string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.records {
		if r.EventID == eventID && r.UserEmail == userEmail {
			n++
		}
	}
	return n
}

type fakeUploader struct {
	calls []string
	url   string
}

func (f *fakeUploader) UploadThumbnail(ctx context.Context, source string) (string, error) {
	f.calls = append(f.calls, source)
	return f.url, nil
}

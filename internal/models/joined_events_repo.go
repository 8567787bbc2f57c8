package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JoinedEventRepo interface {
	FindJoinedEvent(ctx context.Context, eventID, userEmail string) (*JoinRecord, error)
	ListJoinedEvents(ctx context.Context, userEmail string) ([]*JoinRecord, error)
	CreateJoinedEvent(ctx context.Context, record *JoinRecord) (*InsertAck, error)
}

// FindJoinedEvent returns nil, nil when the user has not joined the event.
func (mdb *MongodbRepo) FindJoinedEvent(ctx context.Context, eventID, userEmail string) (*JoinRecord, error) {
	col, err := mdb.GetCollection(ctx, mdb.joinedColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var record JoinRecord
	err = col.FindOne(ctx, JoinedFilter(eventID, userEmail)).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding joined event: %w", err)
	}
	return &record, nil
}

func (mdb *MongodbRepo) ListJoinedEvents(ctx context.Context, userEmail string) ([]*JoinRecord, error) {
	col, err := mdb.GetCollection(ctx, mdb.joinedColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, JoinedFilter("", userEmail), options.Find().SetSort(ByEventDate))
	if err != nil {
		return nil, fmt.Errorf("error finding joined events: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*JoinRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding joined events: %w", err)
	}
	return records, nil
}

// CreateJoinedEvent returns ErrDuplicateJoin when the unique
// (eventId, userEmail) index rejects the insert.
func (mdb *MongodbRepo) CreateJoinedEvent(ctx context.Context, record *JoinRecord) (*InsertAck, error) {
	col, err := mdb.GetCollection(ctx, mdb.joinedColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateJoin
		}
		return nil, fmt.Errorf("error inserting joined event: %w", err)
	}
	return &InsertAck{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	ListUpcomingEvents(ctx context.Context, today string) ([]*Event, error)
	SearchEvents(ctx context.Context, searchText, eventType string) ([]*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*InsertAck, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEventsByCreator(ctx context.Context, email string) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*UpdateAck, error)
	DeleteEvent(ctx context.Context, id string) (*DeleteAck, error)
}

func (mdb *MongodbRepo) findEvents(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, mdb.eventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("error finding events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) ListUpcomingEvents(ctx context.Context, today string) ([]*Event, error) {
	return mdb.findEvents(ctx, UpcomingFilter(today), options.Find().SetSort(ByEventDate))
}

func (mdb *MongodbRepo) SearchEvents(ctx context.Context, searchText, eventType string) ([]*Event, error) {
	return mdb.findEvents(ctx, SearchFilter(searchText, eventType))
}

func (mdb *MongodbRepo) ListEventsByCreator(ctx context.Context, email string) ([]*Event, error) {
	return mdb.findEvents(ctx, CreatorFilter(email))
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*InsertAck, error) {
	col, err := mdb.GetCollection(ctx, mdb.eventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event into database: %w", err)
	}

	return &InsertAck{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

// GetEventByID returns nil, nil when no event has the id.
func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, mdb.eventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event by ID: %w", err)
	}
	return &event, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*UpdateAck, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, mdb.eventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return newUpdateAck(res), nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id string) (*DeleteAck, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, mdb.eventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("error deleting event: %w", err)
	}
	return &DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

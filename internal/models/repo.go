package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var Validate = validator.New()

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
	eventsColName string
	joinedColName string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName, eventsColName, joinedColName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
		eventsColName: eventsColName,
		joinedColName: joinedColName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

// Ping reports whether the primary is reachable.
func (mdb *MongodbRepo) Ping(ctx context.Context) error {
	if mdb.mongodbClient == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the query patterns rely on. The unique
// (eventId, userEmail) index is what guarantees one join per user and event.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	events, err := mdb.GetCollection(ctx, mdb.eventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	joined, err := mdb.GetCollection(ctx, mdb.joinedColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	eventIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "eventDate", Value: 1}},
			Options: options.Index().SetName("event_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "creatorEmail", Value: 1}},
			Options: options.Index().SetName("creator_email_idx"),
		},
	}
	if _, err := events.Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("error creating event indexes: %v", err)
	}

	joinedIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "eventId", Value: 1},
				{Key: "userEmail", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("event_user_unique"),
		},
		{
			Keys: bson.D{
				{Key: "userEmail", Value: 1},
				{Key: "eventDate", Value: 1},
			},
			Options: options.Index().SetName("user_event_date_idx"),
		},
	}
	if _, err := joined.Indexes().CreateMany(ctx, joinedIndexes); err != nil {
		return fmt.Errorf("error creating joined event indexes: %v", err)
	}

	return nil
}

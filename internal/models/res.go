package models

import "go.mongodb.org/mongo-driver/mongo"

// Store acknowledgments. Field names follow the shapes MongoDB drivers
// report so existing clients keep working.

type InsertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateAck struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type JoinResponse struct {
	Message string     `json:"message"`
	Result  *InsertAck `json:"result"`
}

type JoinStatus struct {
	AlreadyJoined bool `json:"alreadyJoined"`
}

func newUpdateAck(res *mongo.UpdateResult) *UpdateAck {
	ack := &UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		ack.UpsertedID = idString(res.UpsertedID)
	}
	return ack
}

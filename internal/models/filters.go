package models

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllTypes is the search sentinel that disables the eventType filter.
const AllTypes = "all"

// UpcomingFilter matches events dated on or after today (YYYY-MM-DD).
// eventDate values are ISO strings, so lexical order is date order.
func UpcomingFilter(today string) bson.M {
	return bson.M{"eventDate": bson.M{"$gte": today}}
}

// SearchFilter matches a case-insensitive title substring and a
// case-insensitive exact eventType. Empty inputs add no condition.
func SearchFilter(searchText, eventType string) bson.M {
	filter := bson.M{}

	if s := strings.TrimSpace(searchText); s != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
	}

	if t := strings.TrimSpace(eventType); t != "" && !strings.EqualFold(t, AllTypes) {
		filter["eventType"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(t) + "$", Options: "i"}
	}

	return filter
}

func CreatorFilter(email string) bson.M {
	return bson.M{"creatorEmail": email}
}

func JoinedFilter(eventID, userEmail string) bson.M {
	filter := bson.M{"userEmail": userEmail}
	if eventID != "" {
		filter["eventId"] = eventID
	}
	return filter
}

// ByEventDate sorts ascending on eventDate.
var ByEventDate = bson.D{{Key: "eventDate", Value: 1}}

package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// nameSearchFilter builds a case-insensitive substring match on the name
// field. The query is quoted so regex metacharacters in user input match
// literally.
func nameSearchFilter(q string) bson.M {
	return bson.M{
		"name": bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"},
	}
}

package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReplaceMongoID rewrites the internal _id of a document into a public
// string id, in place, and returns the same map. A nil document stays nil.
func ReplaceMongoID(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	if raw, ok := doc["_id"]; ok {
		if oid, ok := raw.(primitive.ObjectID); ok {
			doc["id"] = oid.Hex()
		} else {
			doc["id"] = fmt.Sprint(raw)
		}
		delete(doc, "_id")
	}
	return doc
}

package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID turns the external string form of an identifier into an ObjectID.
// Any malformed input, including surrounding whitespace, wraps ErrBadID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrBadID, s)
	}
	return id, nil
}

package utils

import (
	"dental-clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBNotObjectID(err)
	}
	return objectID, nil
}

// ToOptionalObjectID returns nil for an empty id.
func ToOptionalObjectID(id string) (*primitive.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	objectID, err := ToObjectID(id)
	if err != nil {
		return nil, err
	}
	return &objectID, nil
}

func ToObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := ToObjectID(id)
		if err != nil {
			return nil, err
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}

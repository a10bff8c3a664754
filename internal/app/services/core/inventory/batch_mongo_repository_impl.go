package inventory

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BatchMongoRepository struct {
	Collection *mongo.Collection
}

func NewBatchMongoRepository(db *mongo.Client, dbName string) contracts.BatchRepository {
	return &BatchMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBatches),
	}
}

func (repo *BatchMongoRepository) Create(ctx context.Context, batch *models.Batch) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, batch)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *BatchMongoRepository) FindAvailable(ctx context.Context, productID, branchID primitive.ObjectID) ([]models.Batch, error) {
	return repo.find(ctx, bson.M{
		"productId": productID,
		"branchId":  branchID,
		"remaining": bson.M{"$gt": 0},
	})
}

func (repo *BatchMongoRepository) FindAll(ctx context.Context, productID, branchID string) ([]models.Batch, error) {
	filter := bson.M{}
	if productID != "" {
		objectID, err := primitive.ObjectIDFromHex(productID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["productId"] = objectID
	}
	if branchID != "" {
		objectID, err := primitive.ObjectIDFromHex(branchID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["branchId"] = objectID
	}
	return repo.find(ctx, filter)
}

func (repo *BatchMongoRepository) FindExpiring(ctx context.Context, before time.Time) ([]models.Batch, error) {
	return repo.find(ctx, bson.M{
		"expiryDate": bson.M{"$lte": before},
		"remaining":  bson.M{"$gt": 0},
	})
}

func (repo *BatchMongoRepository) Consume(ctx context.Context, batchID primitive.ObjectID, quantity int) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": batchID, "remaining": bson.M{"$gte": quantity}},
		bson.M{"$inc": bson.M{"remaining": -quantity}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConflictRule(nil, constvars.ErrClientNegativeStock)
	}
	return nil
}

func (repo *BatchMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Batch, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "expiryDate", Value: 1},
		{Key: "receivedAt", Value: 1},
	})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	batches := make([]models.Batch, 0)
	err = cursor.All(ctx, &batches)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return batches, nil
}

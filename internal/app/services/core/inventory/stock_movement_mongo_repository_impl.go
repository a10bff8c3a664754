package inventory

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StockMovementMongoRepository struct {
	Collection *mongo.Collection
}

func NewStockMovementMongoRepository(db *mongo.Client, dbName string) contracts.StockMovementRepository {
	return &StockMovementMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStockMovements),
	}
}

func (repo *StockMovementMongoRepository) Create(ctx context.Context, movement *models.StockMovement) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, movement)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *StockMovementMongoRepository) FindAll(ctx context.Context, request *requests.FindAllStockMovements) ([]models.StockMovement, int, error) {
	filter := bson.M{}
	if request.ProductID != "" {
		objectID, err := primitive.ObjectIDFromHex(request.ProductID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["productId"] = objectID
	}
	if request.BranchID != "" {
		objectID, err := primitive.ObjectIDFromHex(request.BranchID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["branchId"] = objectID
	}
	createdAt := bson.M{}
	if request.From != nil {
		createdAt["$gte"] = *request.From
	}
	if request.To != nil {
		createdAt["$lte"] = *request.To
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((request.Page - 1) * request.PageSize)).
		SetLimit(int64(request.PageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	movements := make([]models.StockMovement, 0)
	err = cursor.All(ctx, &movements)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return movements, int(total), nil
}

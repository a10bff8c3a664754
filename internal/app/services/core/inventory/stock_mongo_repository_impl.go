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

type StockMongoRepository struct {
	Collection *mongo.Collection
}

func NewStockMongoRepository(db *mongo.Client, dbName string) contracts.StockRepository {
	return &StockMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStocks),
	}
}

// Increment upserts the stock row on receipts. Decrements only match rows
// holding at least the requested quantity.
func (repo *StockMongoRepository) Increment(ctx context.Context, productID, branchID primitive.ObjectID, delta int) (int, error) {
	filter := bson.M{"productId": productID, "branchId": branchID}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	} else {
		updateOptions.SetUpsert(true)
	}

	var stock models.Stock
	err := repo.Collection.FindOneAndUpdate(ctx, filter, bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}, updateOptions).Decode(&stock)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, exceptions.ErrConflictRule(nil, constvars.ErrClientNegativeStock)
		}
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return stock.Quantity, nil
}

func (repo *StockMongoRepository) FindOne(ctx context.Context, productID, branchID primitive.ObjectID) (*models.Stock, error) {
	var stock models.Stock
	err := repo.Collection.FindOne(ctx, bson.M{"productId": productID, "branchId": branchID}).Decode(&stock)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &stock, nil
}

func (repo *StockMongoRepository) FindAll(ctx context.Context, branchID string) ([]models.Stock, error) {
	filter := bson.M{}
	if branchID != "" {
		objectID, err := primitive.ObjectIDFromHex(branchID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["branchId"] = objectID
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	stocks := make([]models.Stock, 0)
	err = cursor.All(ctx, &stocks)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return stocks, nil
}

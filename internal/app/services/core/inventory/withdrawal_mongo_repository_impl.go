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

type WithdrawalMongoRepository struct {
	Collection *mongo.Collection
}

func NewWithdrawalMongoRepository(db *mongo.Client, dbName string) contracts.WithdrawalRepository {
	return &WithdrawalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWithdrawalRequests),
	}
}

func (repo *WithdrawalMongoRepository) Create(ctx context.Context, withdrawal *models.WithdrawalRequest) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, withdrawal)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *WithdrawalMongoRepository) FindByID(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error) {
	var withdrawal models.WithdrawalRequest
	objectID, err := primitive.ObjectIDFromHex(withdrawalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&withdrawal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &withdrawal, nil
}

func (repo *WithdrawalMongoRepository) FindAll(ctx context.Context, request *requests.FindAllWithdrawals) ([]models.WithdrawalRequest, int, error) {
	filter := bson.M{}
	if request.BranchID != "" {
		objectID, err := primitive.ObjectIDFromHex(request.BranchID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["branchId"] = objectID
	}
	if request.Status != "" {
		filter["status"] = request.Status
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

	withdrawals := make([]models.WithdrawalRequest, 0)
	err = cursor.All(ctx, &withdrawals)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return withdrawals, int(total), nil
}

func (repo *WithdrawalMongoRepository) Update(ctx context.Context, withdrawal *models.WithdrawalRequest, expectedStatus string) error {
	withdrawal.SetUpdatedAt()
	filter := bson.M{"_id": withdrawal.ID, "status": expectedStatus}
	result, err := repo.Collection.ReplaceOne(ctx, filter, withdrawal)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentChanged(nil, "withdrawal request")
	}
	return nil
}

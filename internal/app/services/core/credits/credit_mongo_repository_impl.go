package credits

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

type CreditMongoRepository struct {
	Collection *mongo.Collection
}

func NewCreditMongoRepository(db *mongo.Client, dbName string) contracts.CreditRepository {
	return &CreditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCreditEntries),
	}
}

func (repo *CreditMongoRepository) Create(ctx context.Context, entry *models.CreditEntry) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CreditMongoRepository) FindAllByPatient(ctx context.Context, patientID string, pagination requests.Pagination) ([]models.CreditEntry, int, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"patientId": objectID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	entries := make([]models.CreditEntry, 0)
	err = cursor.All(ctx, &entries)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, int(total), nil
}

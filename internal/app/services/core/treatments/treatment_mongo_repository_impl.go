package treatments

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TreatmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentMongoRepository(db *mongo.Client, dbName string) contracts.TreatmentRepository {
	return &TreatmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTreatments),
	}
}

func (repo *TreatmentMongoRepository) Create(ctx context.Context, treatment *models.Treatment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, treatment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDocumentAlreadyExists(err, "treatment")
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TreatmentMongoRepository) FindByID(ctx context.Context, treatmentID string) (*models.Treatment, error) {
	var treatment models.Treatment
	objectID, err := primitive.ObjectIDFromHex(treatmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&treatment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &treatment, nil
}

func (repo *TreatmentMongoRepository) FindByCode(ctx context.Context, code string) (*models.Treatment, error) {
	var treatment models.Treatment
	err := repo.Collection.FindOne(ctx, bson.M{"code": code}).Decode(&treatment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &treatment, nil
}

func (repo *TreatmentMongoRepository) FindAll(ctx context.Context) ([]models.Treatment, error) {
	treatments := make([]models.Treatment, 0)
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &treatments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatments, nil
}

func (repo *TreatmentMongoRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	treatment.SetUpdatedAt()
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": treatment.ID}, bson.M{"$set": treatment})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrDocumentAlreadyExists(err, "treatment")
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *TreatmentMongoRepository) Delete(ctx context.Context, treatmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(treatmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

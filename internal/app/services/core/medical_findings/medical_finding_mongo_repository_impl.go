package medical_findings

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

type MedicalFindingMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalFindingMongoRepository(db *mongo.Client, dbName string) contracts.MedicalFindingRepository {
	return &MedicalFindingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalFindings),
	}
}

func (repo *MedicalFindingMongoRepository) Create(ctx context.Context, finding *models.MedicalFinding) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, finding)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *MedicalFindingMongoRepository) FindByID(ctx context.Context, findingID string) (*models.MedicalFinding, error) {
	var finding models.MedicalFinding
	objectID, err := primitive.ObjectIDFromHex(findingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&finding)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &finding, nil
}

// FindAllByPatient returns the findings newest first.
func (repo *MedicalFindingMongoRepository) FindAllByPatient(ctx context.Context, patientID string) ([]models.MedicalFinding, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": objectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	findings := make([]models.MedicalFinding, 0)
	err = cursor.All(ctx, &findings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return findings, nil
}

func (repo *MedicalFindingMongoRepository) Update(ctx context.Context, finding *models.MedicalFinding) error {
	finding.SetUpdatedAt()
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": finding.ID}, bson.M{"$set": finding})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MedicalFindingMongoRepository) Delete(ctx context.Context, findingID string) error {
	objectID, err := primitive.ObjectIDFromHex(findingID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

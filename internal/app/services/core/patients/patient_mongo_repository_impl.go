package patients

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

// notDeleted excludes soft deleted patients.
var notDeleted = bson.M{"$exists": false}

func (repo *PatientMongoRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDocumentAlreadyExists(err, "patient")
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": notDeleted}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context, request *requests.FindAllPatients) ([]models.Patient, int, error) {
	filter := bson.M{"deletedAt": notDeleted}
	if request.BranchID != "" {
		branchID, err := primitive.ObjectIDFromHex(request.BranchID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["branchId"] = branchID
	}
	if request.Search != "" {
		pattern := primitive.Regex{Pattern: utils.EscapeSearchTerm(request.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
			{"phone": pattern},
			{"fileNumber": pattern},
		}
	}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetSkip(int64((request.Page - 1) * request.PageSize)).
		SetLimit(int64(request.PageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	patients := make([]models.Patient, 0)
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, int(total), nil
}

// Update writes the demographic fields only. Credit balance and attachments
// have their own atomic updates.
func (repo *PatientMongoRepository) Update(ctx context.Context, patient *models.Patient) error {
	patient.SetUpdatedAt()
	update := bson.M{
		"$set": bson.M{
			"firstName":      patient.FirstName,
			"lastName":       patient.LastName,
			"birthDate":      patient.BirthDate,
			"gender":         patient.Gender,
			"phone":          patient.Phone,
			"email":          patient.Email,
			"address":        patient.Address,
			"branchId":       patient.BranchID,
			"allergies":      patient.Allergies,
			"medicalHistory": patient.MedicalHistory,
			"notes":          patient.Notes,
			"updatedAt":      patient.UpdatedAt,
		},
	}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": patient.ID, "deletedAt": notDeleted}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) SoftDelete(ctx context.Context, patientID string) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	now := time.Now()
	_, err = repo.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "deletedAt": notDeleted},
		bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) AddAttachment(ctx context.Context, patientID string, attachment *models.Attachment) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "deletedAt": notDeleted},
		bson.M{
			"$push": bson.M{"attachments": attachment},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) IncrementCredit(ctx context.Context, patientID primitive.ObjectID, amount int64) (int64, error) {
	filter := bson.M{"_id": patientID, "deletedAt": notDeleted}
	if amount < 0 {
		filter["creditBalance"] = bson.M{"$gte": -amount}
	}
	update := bson.M{
		"$inc": bson.M{"creditBalance": amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	var patient models.Patient
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if amount < 0 {
				return 0, exceptions.ErrInsufficientCredit(nil)
			}
			return 0, exceptions.ErrDocumentNotFound(nil, "patient")
		}
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return patient.CreditBalance, nil
}

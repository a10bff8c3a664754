package appointments

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, request *requests.FindAllAppointments) ([]models.Appointment, int, error) {
	filter := bson.M{}
	for field, value := range map[string]string{
		"branchId":  request.BranchID,
		"dentistId": request.DentistID,
		"patientId": request.PatientID,
	} {
		if value == "" {
			continue
		}
		objectID, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter[field] = objectID
	}
	if request.Status != "" {
		filter["status"] = request.Status
	}
	if dateFilter := buildDateFilter(request.DateRange); len(dateFilter) > 0 {
		filter["startAt"] = dateFilter
	}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "startAt", Value: 1}}).
		SetSkip(int64((request.Page - 1) * request.PageSize)).
		SetLimit(int64(request.PageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, int(total), nil
}

func (repo *AppointmentMongoRepository) Update(ctx context.Context, appointment *models.Appointment, expectedStatus string) error {
	appointment.SetUpdatedAt()
	filter := bson.M{"_id": appointment.ID, "status": expectedStatus}
	result, err := repo.Collection.ReplaceOne(ctx, filter, appointment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentChanged(nil, "appointment")
	}
	return nil
}

func (repo *AppointmentMongoRepository) Delete(ctx context.Context, appointmentID, expectedStatus string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "status": expectedStatus})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDocumentChanged(nil, "appointment")
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindOverlapping(ctx context.Context, dentistID primitive.ObjectID, startAt, endAt time.Time, excludeID primitive.ObjectID) (*models.Appointment, error) {
	filter := bson.M{
		"dentistId": dentistID,
		"status":    bson.M{"$ne": constvars.AppointmentStatusCancelled},
		"startAt":   bson.M{"$lt": endAt},
		"endAt":     bson.M{"$gt": startAt},
	}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindDueForReminder(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusScheduled,
			constvars.AppointmentStatusConfirmed,
		}},
		"startAt":        bson.M{"$gte": from, "$lte": to},
		"reminderSentAt": bson.M{"$exists": false},
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) MarkReminderSent(ctx context.Context, appointmentID primitive.ObjectID, sentAt time.Time) error {
	_, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": appointmentID},
		bson.M{"$set": bson.M{"reminderSentAt": sentAt, "updatedAt": time.Now()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func buildDateFilter(dateRange requests.DateRange) bson.M {
	filter := bson.M{}
	if dateRange.From != nil {
		filter["$gte"] = *dateRange.From
	}
	if dateRange.To != nil {
		filter["$lte"] = *dateRange.To
	}
	return filter
}

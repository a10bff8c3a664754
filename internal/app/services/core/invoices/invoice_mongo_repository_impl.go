package invoices

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

type InvoiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewInvoiceMongoRepository(db *mongo.Client, dbName string) contracts.InvoiceRepository {
	return &InvoiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInvoices),
	}
}

func (repo *InvoiceMongoRepository) Create(ctx context.Context, invoice *models.Invoice) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, invoice)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDocumentAlreadyExists(err, "invoice")
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *InvoiceMongoRepository) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	objectID, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &invoice, nil
}

func (repo *InvoiceMongoRepository) FindAll(ctx context.Context, request *requests.FindAllInvoices) ([]models.Invoice, int, error) {
	filter := bson.M{}
	if request.PatientID != "" {
		objectID, err := primitive.ObjectIDFromHex(request.PatientID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["patientId"] = objectID
	}
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

	invoices := make([]models.Invoice, 0)
	err = cursor.All(ctx, &invoices)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return invoices, int(total), nil
}

func (repo *InvoiceMongoRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	invoice.SetUpdatedAt()
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": invoice.ID}, invoice)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

package database

import (
	"context"
	"dental-clinic-service/internal/pkg/constvars"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var collectionIndexes = map[string][]mongo.IndexModel{
	constvars.MongoCollectionUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionBranches: {
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionPatients: {
		{Keys: bson.D{{Key: "fileNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}},
		{Keys: bson.D{{Key: "branchId", Value: 1}}},
	},
	constvars.MongoCollectionAppointments: {
		{Keys: bson.D{{Key: "dentistId", Value: 1}, {Key: "startAt", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "startAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "startAt", Value: 1}}},
	},
	constvars.MongoCollectionMedicalFindings: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "toothNumber", Value: 1}, {Key: "recordedAt", Value: -1}}},
	},
	constvars.MongoCollectionTreatments: {
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionInvoices: {
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "payments.paidAt", Value: 1}}},
	},
	constvars.MongoCollectionCreditEntries: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	constvars.MongoCollectionProducts: {
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionBatches: {
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "branchId", Value: 1}, {Key: "expiryDate", Value: 1}}},
	},
	constvars.MongoCollectionStocks: {
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "branchId", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionStockMovements: {
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "branchId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	constvars.MongoCollectionWithdrawalRequests: {
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
}

// EnsureIndexes creates the indexes every collection relies on. Existing
// indexes with the same definition are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range collectionIndexes {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

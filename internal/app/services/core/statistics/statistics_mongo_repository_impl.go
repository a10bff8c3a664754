package statistics

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatisticsMongoRepository struct {
	Database *mongo.Database
}

func NewStatisticsMongoRepository(db *mongo.Client, dbName string) contracts.StatisticsRepository {
	return &StatisticsMongoRepository{
		Database: db.Database(dbName),
	}
}

type sumResult struct {
	ID    string `bson:"_id"`
	Total int64  `bson:"total"`
}

func (repo *StatisticsMongoRepository) Revenue(ctx context.Context, request *requests.StatisticsSummary) (int64, map[string]int64, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return 0, nil, err
	}
	match["status"] = bson.M{"$ne": constvars.InvoiceStatusCancelled}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$unwind", Value: "$payments"}},
		{{Key: "$match", Value: bson.M{"payments.paidAt": bson.M{"$gte": request.From, "$lte": request.To}}}},
		{{Key: "$group", Value: bson.M{"_id": "$payments.method", "total": bson.M{"$sum": "$payments.amount"}}}},
	}

	var results []sumResult
	if err := repo.aggregate(ctx, constvars.MongoCollectionInvoices, pipeline, &results); err != nil {
		return 0, nil, err
	}

	var revenue int64
	byMethod := make(map[string]int64, len(results))
	for _, result := range results {
		byMethod[result.ID] = result.Total
		revenue += result.Total
	}
	return revenue, byMethod, nil
}

func (repo *StatisticsMongoRepository) Invoiced(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return 0, err
	}
	match["status"] = bson.M{"$ne": constvars.InvoiceStatusCancelled}
	match["createdAt"] = bson.M{"$gte": request.From, "$lte": request.To}
	return repo.sum(ctx, constvars.MongoCollectionInvoices, match, "$total")
}

// Outstanding is the open balance of every unpaid invoice issued up to the end
// of the period.
func (repo *StatisticsMongoRepository) Outstanding(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return 0, err
	}
	match["status"] = bson.M{"$in": []string{constvars.InvoiceStatusUnpaid, constvars.InvoiceStatusPartiallyPaid}}
	match["createdAt"] = bson.M{"$lte": request.To}
	return repo.sum(ctx, constvars.MongoCollectionInvoices, match, "$balance")
}

func (repo *StatisticsMongoRepository) AppointmentsByStatus(ctx context.Context, request *requests.StatisticsSummary) (map[string]int64, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return nil, err
	}
	match["startAt"] = bson.M{"$gte": request.From, "$lte": request.To}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "total": bson.M{"$sum": 1}}}},
	}

	var results []sumResult
	if err := repo.aggregate(ctx, constvars.MongoCollectionAppointments, pipeline, &results); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(results))
	for _, result := range results {
		byStatus[result.ID] = result.Total
	}
	return byStatus, nil
}

func (repo *StatisticsMongoRepository) NewPatients(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	filter, err := branchMatch(request.BranchID)
	if err != nil {
		return 0, err
	}
	filter["createdAt"] = bson.M{"$gte": request.From, "$lte": request.To}
	filter["deletedAt"] = bson.M{"$exists": false}

	count, err := repo.Database.Collection(constvars.MongoCollectionPatients).CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *StatisticsMongoRepository) TopTreatments(ctx context.Context, request *requests.StatisticsSummary, limit int) ([]responses.TreatmentRevenue, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return nil, err
	}
	match["status"] = bson.M{"$ne": constvars.InvoiceStatusCancelled}
	match["createdAt"] = bson.M{"$gte": request.From, "$lte": request.To}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$match", Value: bson.M{"items.treatmentId": bson.M{"$exists": true}}}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$items.treatmentId",
			"description": bson.M{"$first": "$items.description"},
			"quantity":    bson.M{"$sum": "$items.quantity"},
			"revenue":     bson.M{"$sum": "$items.amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "revenue", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	var results []struct {
		ID          primitive.ObjectID `bson:"_id"`
		Description string             `bson:"description"`
		Quantity    int64              `bson:"quantity"`
		Revenue     int64              `bson:"revenue"`
	}
	if err := repo.aggregate(ctx, constvars.MongoCollectionInvoices, pipeline, &results); err != nil {
		return nil, err
	}

	treatments := make([]responses.TreatmentRevenue, 0, len(results))
	for _, result := range results {
		treatments = append(treatments, responses.TreatmentRevenue{
			TreatmentID: result.ID.Hex(),
			Description: result.Description,
			Quantity:    result.Quantity,
			Revenue:     result.Revenue,
		})
	}
	return treatments, nil
}

func (repo *StatisticsMongoRepository) StockValuation(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return 0, err
	}
	match["remaining"] = bson.M{"$gt": 0}
	return repo.sum(ctx, constvars.MongoCollectionBatches, match, bson.M{"$multiply": bson.A{"$remaining", "$unitCost"}})
}

// LowStockProducts counts stock rows under the minimum of an active product.
func (repo *StatisticsMongoRepository) LowStockProducts(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	match, err := branchMatch(request.BranchID)
	if err != nil {
		return 0, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionProducts,
			"localField":   "productId",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$match", Value: bson.M{
			"product.active": true,
			"$expr":          bson.M{"$lt": bson.A{"$quantity", "$product.minStock"}},
		}}},
		{{Key: "$count", Value: "total"}},
	}

	var results []sumResult
	if err := repo.aggregate(ctx, constvars.MongoCollectionStocks, pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (repo *StatisticsMongoRepository) sum(ctx context.Context, collection string, match bson.M, expression interface{}) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": expression}}}},
	}

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := repo.aggregate(ctx, collection, pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (repo *StatisticsMongoRepository) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error {
	cursor, err := repo.Database.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return exceptions.ErrMongoDBAggregate(err)
	}
	err = cursor.All(ctx, results)
	if err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nil
}

func branchMatch(branchID string) (bson.M, error) {
	match := bson.M{}
	if branchID == "" {
		return match, nil
	}
	objectID, err := primitive.ObjectIDFromHex(branchID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	match["branchId"] = objectID
	return match, nil
}

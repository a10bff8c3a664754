package inventory

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

type ProductMongoRepository struct {
	Collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Client, dbName string) contracts.ProductRepository {
	return &ProductMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProducts),
	}
}

func (repo *ProductMongoRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDocumentAlreadyExists(err, "product")
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ProductMongoRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *ProductMongoRepository) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return repo.findOne(ctx, bson.M{"sku": sku})
}

func (repo *ProductMongoRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	products := make([]models.Product, 0)
	err = cursor.All(ctx, &products)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}

func (repo *ProductMongoRepository) Update(ctx context.Context, product *models.Product) error {
	product.SetUpdatedAt()
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrDocumentAlreadyExists(err, "product")
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ProductMongoRepository) Delete(ctx context.Context, productID string) error {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *ProductMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Product, error) {
	var product models.Product
	err := repo.Collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &product, nil
}

package branches

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

type BranchMongoRepository struct {
	Collection *mongo.Collection
}

func NewBranchMongoRepository(db *mongo.Client, dbName string) contracts.BranchRepository {
	return &BranchMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBranches),
	}
}

func (repo *BranchMongoRepository) Create(ctx context.Context, branch *models.Branch) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, branch)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDocumentAlreadyExists(err, "branch")
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *BranchMongoRepository) FindByID(ctx context.Context, branchID string) (*models.Branch, error) {
	var branch models.Branch
	objectID, err := primitive.ObjectIDFromHex(branchID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&branch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &branch, nil
}

func (repo *BranchMongoRepository) FindByCode(ctx context.Context, code string) (*models.Branch, error) {
	var branch models.Branch
	err := repo.Collection.FindOne(ctx, bson.M{"code": code}).Decode(&branch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &branch, nil
}

func (repo *BranchMongoRepository) FindAll(ctx context.Context) ([]models.Branch, error) {
	branches := make([]models.Branch, 0)
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &branches)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return branches, nil
}

func (repo *BranchMongoRepository) Update(ctx context.Context, branch *models.Branch) error {
	branch.SetUpdatedAt()
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": branch.ID}, bson.M{"$set": branch})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrDocumentAlreadyExists(err, "branch")
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

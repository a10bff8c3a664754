package transactor

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactor struct {
	Client *mongo.Client
}

func NewMongoTransactor(client *mongo.Client) contracts.Transactor {
	return &mongoTransactor{
		Client: client,
	}
}

// WithTransaction retries fn on transient transaction errors. Classified
// errors returned by fn abort the transaction and are passed through.
func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.Client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBStartSession(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return err
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}

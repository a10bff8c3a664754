package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, request *requests.FindAllUsers) ([]models.User, int, error)
	Update(ctx context.Context, user *models.User) error
}

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	FindAllUsers(ctx context.Context, request *requests.FindAllUsers) ([]responses.User, int, error)
	FindUserByID(ctx context.Context, userID string) (*responses.User, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeactivateUser(ctx context.Context, userID string) error
}

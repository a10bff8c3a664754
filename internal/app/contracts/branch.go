package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
)

type BranchRepository interface {
	Create(ctx context.Context, branch *models.Branch) (string, error)
	FindByID(ctx context.Context, branchID string) (*models.Branch, error)
	FindByCode(ctx context.Context, code string) (*models.Branch, error)
	FindAll(ctx context.Context) ([]models.Branch, error)
	Update(ctx context.Context, branch *models.Branch) error
}

type BranchUsecase interface {
	CreateBranch(ctx context.Context, request *requests.Branch) (*models.Branch, error)
	FindAllBranches(ctx context.Context) ([]models.Branch, error)
	FindBranchByID(ctx context.Context, branchID string) (*models.Branch, error)
	UpdateBranch(ctx context.Context, branchID string, request *requests.Branch) (*models.Branch, error)
	DeactivateBranch(ctx context.Context, branchID string) error
}

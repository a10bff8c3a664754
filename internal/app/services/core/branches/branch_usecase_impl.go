package branches

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type branchUsecase struct {
	BranchRepository contracts.BranchRepository
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
}

func NewBranchUsecase(
	branchRepository contracts.BranchRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.BranchUsecase {
	return &branchUsecase{
		BranchRepository: branchRepository,
		RedisRepository:  redisRepository,
		Log:              logger,
	}
}

func (uc *branchUsecase) CreateBranch(ctx context.Context, request *requests.Branch) (*models.Branch, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("branchUsecase.CreateBranch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	code := strings.ToUpper(request.Code)
	existing, err := uc.BranchRepository.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDocumentAlreadyExists(nil, "branch")
	}

	branch := &models.Branch{
		Name:    request.Name,
		Code:    code,
		Address: request.Address,
		Phone:   request.Phone,
		Active:  request.Active == nil || *request.Active,
	}
	branch.SetCreatedAtUpdatedAt()

	branchID, err := uc.BranchRepository.Create(ctx, branch)
	if err != nil {
		uc.Log.Error("branchUsecase.CreateBranch error calling BranchRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.invalidateCache(ctx, requestID)
	return uc.BranchRepository.FindByID(ctx, branchID)
}

func (uc *branchUsecase) FindAllBranches(ctx context.Context) ([]models.Branch, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("branchUsecase.FindAllBranches called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var branches []models.Branch

	branchRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyBranchList)
	if err != nil {
		uc.Log.Error("branchUsecase.FindAllBranches error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if branchRedisData == "" {
		uc.Log.Info("branchUsecase.FindAllBranches no data found in Redis, fetching from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		branches, err = uc.BranchRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("branchUsecase.FindAllBranches error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyBranchList, branches, 0)
		if err != nil {
			uc.Log.Error("branchUsecase.FindAllBranches error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(branchRedisData), &branches)
		if err != nil {
			uc.Log.Error("branchUsecase.FindAllBranches error unmarshalling Redis data",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return branches, nil
}

func (uc *branchUsecase) FindBranchByID(ctx context.Context, branchID string) (*models.Branch, error) {
	branch, err := uc.BranchRepository.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "branch")
	}
	return branch, nil
}

func (uc *branchUsecase) UpdateBranch(ctx context.Context, branchID string, request *requests.Branch) (*models.Branch, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("branchUsecase.UpdateBranch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBranchIDKey, branchID),
	)

	branch, err := uc.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(request.Code)
	if code != branch.Code {
		existing, err := uc.BranchRepository.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrDocumentAlreadyExists(nil, "branch")
		}
	}

	branch.Name = request.Name
	branch.Code = code
	branch.Address = request.Address
	branch.Phone = request.Phone
	if request.Active != nil {
		branch.Active = *request.Active
	}

	err = uc.BranchRepository.Update(ctx, branch)
	if err != nil {
		uc.Log.Error("branchUsecase.UpdateBranch error calling BranchRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.invalidateCache(ctx, requestID)
	return branch, nil
}

func (uc *branchUsecase) DeactivateBranch(ctx context.Context, branchID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("branchUsecase.DeactivateBranch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBranchIDKey, branchID),
	)

	branch, err := uc.FindBranchByID(ctx, branchID)
	if err != nil {
		return err
	}

	branch.Active = false
	err = uc.BranchRepository.Update(ctx, branch)
	if err != nil {
		return err
	}

	uc.invalidateCache(ctx, requestID)
	return nil
}

// invalidateCache drops the cached list. A stale cache is logged and left
// to be replaced on the next write.
func (uc *branchUsecase) invalidateCache(ctx context.Context, requestID string) {
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyBranchList)
	if err != nil {
		uc.Log.Warn("branchUsecase error invalidating branch cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

package main

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// defaultTreatments is the starter catalog. Prices are in minor units.
var defaultTreatments = []requests.Treatment{
	{Code: "CONS", Name: "Consultation", Price: 3000},
	{Code: "XRAY-PA", Name: "Periapical x-ray", Price: 1500},
	{Code: "XRAY-PAN", Name: "Panoramic x-ray", Price: 4500},
	{Code: "CLEAN", Name: "Scaling and polishing", Price: 6000},
	{Code: "FILL-1", Name: "Composite filling, one surface", Price: 7000},
	{Code: "FILL-2", Name: "Composite filling, two surfaces", Price: 9500},
	{Code: "EXT", Name: "Simple extraction", Price: 8000},
	{Code: "RCT", Name: "Root canal treatment", Price: 25000},
}

type seedOptions struct {
	AdminEmail     string
	AdminPassword  string
	AdminName      string
	BranchCode     string
	BranchName     string
	SkipTreatments bool
}

type seeder struct {
	log        *logrus.Logger
	branches   contracts.BranchUsecase
	users      contracts.UserUsecase
	treatments contracts.TreatmentUsecase
}

func (s *seeder) run(ctx context.Context, opts seedOptions) error {
	branch, err := s.seedBranch(ctx, opts)
	if err != nil {
		return err
	}

	err = s.seedAdmin(ctx, opts, branch)
	if err != nil {
		return err
	}

	if opts.SkipTreatments {
		s.log.Info("Skipping treatment catalog")
		return nil
	}
	return s.seedTreatments(ctx)
}

func (s *seeder) seedBranch(ctx context.Context, opts seedOptions) (*models.Branch, error) {
	code := strings.ToUpper(opts.BranchCode)
	request := &requests.Branch{Name: opts.BranchName, Code: code}
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, err
	}

	branch, err := s.branches.CreateBranch(ctx, request)
	if isConflict(err) {
		existing, findErr := s.findBranchByCode(ctx, code)
		if findErr != nil {
			return nil, findErr
		}
		s.log.WithField("code", code).Info("Branch already exists")
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"code": code, "id": branch.ID.Hex()}).Info("Branch created")
	return branch, nil
}

func (s *seeder) findBranchByCode(ctx context.Context, code string) (*models.Branch, error) {
	branches, err := s.branches.FindAllBranches(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].Code == code {
			return &branches[i], nil
		}
	}
	return nil, exceptions.ErrDocumentNotFound(nil, "branch")
}

func (s *seeder) seedAdmin(ctx context.Context, opts seedOptions, branch *models.Branch) error {
	request := &requests.CreateUser{
		Email:     strings.ToLower(opts.AdminEmail),
		FullName:  opts.AdminName,
		Password:  opts.AdminPassword,
		Role:      constvars.RoleAdmin,
		BranchIDs: []string{branch.ID.Hex()},
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return err
	}

	user, err := s.users.CreateUser(ctx, request)
	if isConflict(err) {
		s.log.WithField("email", request.Email).Info("Admin user already exists")
		return nil
	}
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"email": user.Email, "id": user.ID}).Info("Admin user created")
	return nil
}

func (s *seeder) seedTreatments(ctx context.Context) error {
	created := 0
	for i := range defaultTreatments {
		request := defaultTreatments[i]
		_, err := s.treatments.CreateTreatment(ctx, &request)
		if isConflict(err) {
			s.log.WithField("code", request.Code).Debug("Treatment already exists")
			continue
		}
		if err != nil {
			return err
		}
		created++
	}

	s.log.WithFields(logrus.Fields{"created": created, "catalog": len(defaultTreatments)}).Info("Treatment catalog seeded")
	return nil
}

func isConflict(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict
}

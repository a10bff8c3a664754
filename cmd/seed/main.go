package main

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/drivers/database"
	"dental-clinic-service/internal/app/drivers/logger"
	"dental-clinic-service/internal/app/services/core/branches"
	"dental-clinic-service/internal/app/services/core/treatments"
	"dental-clinic-service/internal/app/services/core/users"
	"dental-clinic-service/internal/app/services/shared/redis"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	var opts seedOptions
	pflag.StringVar(&opts.AdminEmail, "admin-email", "admin@dental.local", "email of the initial admin user")
	pflag.StringVar(&opts.AdminPassword, "admin-password", "", "password of the initial admin user")
	pflag.StringVar(&opts.AdminName, "admin-name", "Clinic Administrator", "full name of the initial admin user")
	pflag.StringVar(&opts.BranchCode, "branch-code", "MAIN", "code of the first branch")
	pflag.StringVar(&opts.BranchName, "branch-name", "Main Clinic", "name of the first branch")
	pflag.BoolVar(&opts.SkipTreatments, "skip-treatments", false, "do not seed the treatment catalog")
	pflag.Parse()

	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading driver config: %v\n", err)
		os.Exit(1)
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading internal config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogrusLogger(internalConfig)

	if opts.AdminPassword == "" {
		log.Fatal("--admin-password is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	mongoDB := database.NewMongoDB(driverConfig)
	defer mongoDB.Disconnect(context.Background())
	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	err = database.EnsureIndexes(ctx, mongoDB.Database(driverConfig.MongoDB.DbName))
	if err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}
	log.Info("Indexes are in place")

	dbName := driverConfig.MongoDB.DbName
	nop := zap.NewNop()
	s := &seeder{
		log:        log,
		branches:   branches.NewBranchUsecase(branches.NewBranchMongoRepository(mongoDB, dbName), redis.NewRedisRepository(redisClient), nop),
		users:      users.NewUserUsecase(users.NewUserMongoRepository(mongoDB, dbName), nop),
		treatments: treatments.NewTreatmentUsecase(treatments.NewTreatmentMongoRepository(mongoDB, dbName), nop),
	}

	err = s.run(ctx, opts)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Info("Seeding finished")
}

package main

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"
	"dental-clinic-service/internal/app/delivery/http/routers"
	"dental-clinic-service/internal/app/drivers/database"
	"dental-clinic-service/internal/app/drivers/logger"
	"dental-clinic-service/internal/app/drivers/mailer"
	"dental-clinic-service/internal/app/drivers/messaging"
	"dental-clinic-service/internal/app/drivers/rbac"
	"dental-clinic-service/internal/app/drivers/storage"
	"dental-clinic-service/internal/app/services/core/appointments"
	"dental-clinic-service/internal/app/services/core/auth"
	"dental-clinic-service/internal/app/services/core/branches"
	"dental-clinic-service/internal/app/services/core/credits"
	"dental-clinic-service/internal/app/services/core/inventory"
	"dental-clinic-service/internal/app/services/core/invoices"
	"dental-clinic-service/internal/app/services/core/medical_findings"
	"dental-clinic-service/internal/app/services/core/patients"
	"dental-clinic-service/internal/app/services/core/statistics"
	"dental-clinic-service/internal/app/services/core/treatments"
	"dental-clinic-service/internal/app/services/core/users"
	"dental-clinic-service/internal/app/services/shared/events"
	notifications "dental-clinic-service/internal/app/services/shared/mailer"
	"dental-clinic-service/internal/app/services/shared/locker"
	"dental-clinic-service/internal/app/services/shared/ratelimiter"
	"dental-clinic-service/internal/app/services/shared/redis"
	"dental-clinic-service/internal/app/services/shared/scheduler"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/app/services/shared/smtp"
	attachmentstorage "dental-clinic-service/internal/app/services/shared/storage"
	"dental-clinic-service/internal/app/services/shared/transactor"
	"dental-clinic-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
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

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureIndexes(indexCtx, mongoDB.Database(driverConfig.MongoDB.DbName))
	cancelIndexes()
	if err != nil {
		log.Fatal("Error creating mongo indexes", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Kafka:          messaging.NewKafkaProducer(driverConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr), zap.String("version", internalConfig.App.Version))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, time.Duration(cfg.JWT.ExpTimeInHour)*time.Hour)
	lockerService := locker.NewLockService(redisRepository, log)
	attemptLimiter := ratelimiter.NewAttemptLimiter(
		redisRepository,
		log,
		constvars.RedisKeyFailedLoginGroup,
		cfg.App.MaxFailedLogins,
		time.Duration(cfg.App.FailedLoginWindowInMinutes)*time.Minute,
	)
	mongoTransactor := transactor.NewMongoTransactor(bootstrap.MongoDB)
	eventPublisher := events.NewEventPublisher(bootstrap.Kafka, bootstrap.DriverConfig.Kafka.Topic, log)
	attachmentStorage := attachmentstorage.NewMinioStorage(storage.NewMinio(bootstrap.DriverConfig), bootstrap.DriverConfig.Minio.BucketName)

	notificationPublisher, err := notifications.NewNotificationPublisher(bootstrap.RabbitMQ, cfg.Notification.Queue, log)
	if err != nil {
		return err
	}
	if cfg.Notification.ConsumerEnabled {
		smtpService := smtp.NewSmtpService(mailer.NewSMTPClient(bootstrap.DriverConfig))
		consumer := notifications.NewNotificationConsumer(bootstrap.RabbitMQ, cfg.Notification.Queue, smtpService, log)
		err = consumer.Start()
		if err != nil {
			return err
		}
		bootstrap.WorkerStops = append(bootstrap.WorkerStops, consumer.Stop)
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	branchRepository := branches.NewBranchMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	creditRepository := credits.NewCreditMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	medicalFindingRepository := medical_findings.NewMedicalFindingMongoRepository(bootstrap.MongoDB, dbName)
	treatmentRepository := treatments.NewTreatmentMongoRepository(bootstrap.MongoDB, dbName)
	invoiceRepository := invoices.NewInvoiceMongoRepository(bootstrap.MongoDB, dbName)
	productRepository := inventory.NewProductMongoRepository(bootstrap.MongoDB, dbName)
	batchRepository := inventory.NewBatchMongoRepository(bootstrap.MongoDB, dbName)
	stockRepository := inventory.NewStockMongoRepository(bootstrap.MongoDB, dbName)
	stockMovementRepository := inventory.NewStockMovementMongoRepository(bootstrap.MongoDB, dbName)
	withdrawalRepository := inventory.NewWithdrawalMongoRepository(bootstrap.MongoDB, dbName)
	statisticsRepository := statistics.NewStatisticsMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, attemptLimiter, cfg.JWT.Secret, log)
	userUsecase := users.NewUserUsecase(userRepository, log)
	branchUsecase := branches.NewBranchUsecase(branchRepository, redisRepository, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, branchRepository, attachmentStorage, cfg, log)
	creditUsecase := credits.NewCreditUsecase(creditRepository, patientRepository, mongoTransactor, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		patientRepository,
		userRepository,
		branchRepository,
		notificationPublisher,
		eventPublisher,
		cfg,
		log,
	)
	medicalFindingUsecase := medical_findings.NewMedicalFindingUsecase(medicalFindingRepository, patientRepository, userRepository, log)
	treatmentUsecase := treatments.NewTreatmentUsecase(treatmentRepository, log)
	invoiceUsecase := invoices.NewInvoiceUsecase(
		invoiceRepository,
		patientRepository,
		branchRepository,
		treatmentRepository,
		appointmentRepository,
		creditUsecase,
		mongoTransactor,
		eventPublisher,
		log,
	)
	productUsecase := inventory.NewProductUsecase(productRepository, log)
	inventoryUsecase := inventory.NewInventoryUsecase(
		productRepository,
		batchRepository,
		stockRepository,
		stockMovementRepository,
		branchRepository,
		mongoTransactor,
		notificationPublisher,
		eventPublisher,
		cfg,
		log,
	)
	withdrawalUsecase := inventory.NewWithdrawalUsecase(
		withdrawalRepository,
		productRepository,
		batchRepository,
		stockRepository,
		stockMovementRepository,
		branchRepository,
		mongoTransactor,
		eventPublisher,
		log,
	)
	statisticsUsecase := statistics.NewStatisticsUsecase(statisticsRepository, redisRepository, cfg, log)

	// Workers
	jobScheduler := scheduler.NewScheduler(log, cfg, lockerService)
	jobScheduler.Register(scheduler.ClinicJobs(cfg, appointmentUsecase, inventoryUsecase)...)
	jobScheduler.Start(context.Background())
	bootstrap.WorkerStops = append(bootstrap.WorkerStops, jobScheduler.Stop)

	// Delivery
	authorization := auth.NewCasbinAuthorization(rbac.NewEnforcer(cfg))
	middlewares := middlewares.NewMiddlewares(log, cfg, sessionService, authorization)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, &routers.Controllers{
		Auth:           controllers.NewAuthController(log, authUsecase),
		User:           controllers.NewUserController(log, userUsecase),
		Branch:         controllers.NewBranchController(log, branchUsecase),
		Patient:        controllers.NewPatientController(log, patientUsecase, cfg),
		Credit:         controllers.NewCreditController(log, creditUsecase),
		Appointment:    controllers.NewAppointmentController(log, appointmentUsecase),
		MedicalFinding: controllers.NewMedicalFindingController(log, medicalFindingUsecase),
		Treatment:      controllers.NewTreatmentController(log, treatmentUsecase),
		Invoice:        controllers.NewInvoiceController(log, invoiceUsecase),
		Product:        controllers.NewProductController(log, productUsecase),
		Inventory:      controllers.NewInventoryController(log, inventoryUsecase),
		Withdrawal:     controllers.NewWithdrawalController(log, withdrawalUsecase),
		Statistics:     controllers.NewStatisticsController(log, statisticsUsecase),
	})

	return nil
}

package middlewares

import (
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionService contracts.SessionService
	Authorization  contracts.AuthorizationService
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, sessionService contracts.SessionService, authorization contracts.AuthorizationService) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionService: sessionService,
		Authorization:  authorization,
	}
}

package controllers

import (
	"context"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

func requestIDFromRequest(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// objectIDParam returns the named URL param or a 400 when it is not a hex object id.
func objectIDParam(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if !primitive.IsValidObjectID(id) {
		return "", exceptions.ErrURLParamIDValidation(nil, name)
	}
	return id, nil
}

// optionalObjectIDQuery returns the named query param, which may be empty.
func optionalObjectIDQuery(r *http.Request, name string) (string, error) {
	id := r.URL.Query().Get(name)
	if id != "" && !primitive.IsValidObjectID(id) {
		return "", exceptions.ErrQueryParamValidation(nil, name)
	}
	return id, nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, ctx context.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

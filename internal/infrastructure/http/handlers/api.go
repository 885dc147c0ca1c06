// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/dishcovery/v1/pkg/errors"
)

// userIDHeader identifies the caller on every authenticated route
const userIDHeader = "X-User-ID"

var validate = validator.New()

// writeJSON writes a JSON response
func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to its HTTP status and structured body
func writeError(logger *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(err),
		)
	}

	writeJSON(logger, w, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, requestID))
}

// decodeAndValidate decodes a JSON body into v and runs struct validation
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewBadRequestError("Invalid JSON body")
	}

	if err := validate.Struct(v); err != nil {
		var fieldErrors []apperrors.ValidationError
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fieldErrors = append(fieldErrors, apperrors.ValidationError{
					Field:   fe.Field(),
					Value:   fe.Value(),
					Tag:     fe.Tag(),
					Message: fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()),
				})
			}
			return apperrors.NewValidationErrors(fieldErrors)
		}
		return apperrors.NewValidationError(err.Error())
	}

	return nil
}

// requireUserID extracts the caller identity header or fails with 401
func requireUserID(r *http.Request) (string, error) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		return "", apperrors.NewUnauthorizedError(fmt.Sprintf("%s header required", userIDHeader))
	}
	return userID, nil
}

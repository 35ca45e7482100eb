package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-api/pkg/apperror"
)

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   interface{}       `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: apperror.ErrValidation.Message,
		Errors:  fields,
	})
}

// FromError renders err using its taxonomy kind. Internal detail of
// unexpected failures is only exposed when devMode is set.
func FromError(w http.ResponseWriter, err error, devMode bool) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		var detail interface{}
		if devMode {
			detail = err.Error()
		}
		Error(w, http.StatusInternalServerError, "Internal server error", detail)
		return
	}

	var appErr *apperror.Error
	errors.As(err, &appErr)
	JSON(w, kind.HTTPStatus(), Response{
		Success: false,
		Message: appErr.Message,
		Error:   kind.String(),
		Errors:  appErr.Fields,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

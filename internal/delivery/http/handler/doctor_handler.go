package handler

import (
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type DoctorHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	devMode     bool
}

func NewDoctorHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, devMode bool) *DoctorHandler {
	validator.RegisterMessage("email", "email", "Valid email is required")
	validator.RegisterMessage("password", "min", "Password must be 6 characters")
	return &DoctorHandler{
		authUsecase: authUsecase,
		validator:   validator,
		devMode:     devMode,
	}
}

// Login authenticates a doctor. The success body is the bare
// {token, redirectTo} pair the doctor portal expects.
func (h *DoctorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.DoctorLogin(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, h.devMode)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

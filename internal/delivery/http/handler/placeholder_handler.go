package handler

import (
	"net/http"

	"hospital-management-api/pkg/response"
)

// Placeholder answers for a route group whose features are not built yet.
func Placeholder(name string) http.HandlerFunc {
	message := name + " routes - Coming soon"
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, message, nil)
	}
}

// Package health serves the liveness endpoint.
package health

import (
	"net/http"

	"github.com/mediabox/service/internal/response"
)

// Status is the liveness payload.
type Status struct {
	Status  string `json:"status"  example:"healthy"`
	Message string `json:"message" example:"API is running"`
}

// Check godoc
//
//	@Summary		Health check
//	@Description	Reports that the process is up. Does not contact the storage backend.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	Status
//	@Router			/health [get]
func Check(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, Status{Status: "healthy", Message: "API is running"})
}

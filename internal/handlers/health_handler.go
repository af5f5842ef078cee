package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PersistenceStatus is the part of the store the health check reads.
type PersistenceStatus interface {
	Count() int
	LastSaveError() error
}

// HealthHandler reports service liveness and persistence state.
type HealthHandler struct {
	store PersistenceStatus
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store PersistenceStatus) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse is the body returned by Health.
type HealthResponse struct {
	Status       string `json:"status"`
	Transactions int    `json:"transactions"`
	Persistence  string `json:"persistence"`
}

// Health reports "degraded" persistence while the last save failed; the
// service keeps serving from memory either way.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	persistence := "ok"
	if h.store.LastSaveError() != nil {
		persistence = "degraded"
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		Transactions: h.store.Count(),
		Persistence:  persistence,
	})
}

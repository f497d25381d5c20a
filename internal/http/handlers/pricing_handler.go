// README: Fare estimate handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxigo/internal/modules/pricing"
	"taxigo/internal/types"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

type estimateReq struct {
	Pickup  *types.Point `json:"pickup" binding:"required"`
	Dropoff *types.Point `json:"dropoff" binding:"required"`
	// Optional; zero selects the default trip duration.
	DurationMin float64 `json:"duration_min"`
}

func (h *PricingHandler) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	est, err := h.pricing.Quote(c.Request.Context(), *req.Pickup, *req.Dropoff, req.DurationMin)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, est)
}

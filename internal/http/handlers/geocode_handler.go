// README: Location search and reverse geocode handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxigo/internal/modules/geocode"
	"taxigo/internal/types"
)

type GeocodeHandler struct {
	geocode *geocode.Service
}

func NewGeocodeHandler(svc *geocode.Service) *GeocodeHandler {
	return &GeocodeHandler{geocode: svc}
}

// Search never fails: provider errors and short queries both come back as
// an empty result set.
func (h *GeocodeHandler) Search(c *gin.Context) {
	results := h.geocode.Search(c.Request.Context(), c.Query("q"))
	writeJSON(c, http.StatusOK, gin.H{"results": results})
}

func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(c, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}
	label := h.geocode.ReverseGeocode(c.Request.Context(), types.Point{Lat: lat, Lng: lng})
	writeJSON(c, http.StatusOK, gin.H{"label": label})
}

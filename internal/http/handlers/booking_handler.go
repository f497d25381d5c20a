// README: Booking handlers for create/list.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxigo/internal/http/middleware"
	"taxigo/internal/modules/booking"
	"taxigo/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type locationReq struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type createBookingReq struct {
	Pickup      *locationReq `json:"pickup" binding:"required"`
	Dropoff     *locationReq `json:"dropoff" binding:"required"`
	PaymentMode string       `json:"payment_mode" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	d := booking.Draft{
		UserID:      types.ID(middleware.CallerUID(c)),
		UserEmail:   middleware.CallerEmail(c),
		Pickup:      toLocation(req.Pickup),
		Dropoff:     toLocation(req.Dropoff),
		PaymentMode: booking.PaymentMode(req.PaymentMode),
	}

	b, err := h.booking.Create(c.Request.Context(), d)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	out, err := h.booking.List(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": out})
}

func toLocation(l *locationReq) *booking.Location {
	if l == nil {
		return nil
	}
	return &booking.Location{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

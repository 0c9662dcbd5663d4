package handlers

import (
	"net/http"

	"bagages/internal/config"
	"bagages/internal/domain/models"
	"bagages/internal/geo"
	"bagages/internal/http/middleware"
	"bagages/internal/mailer"
	"bagages/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public booking endpoints.
type BookingHandler struct {
	Env config.Env
}

func (h BookingHandler) service(c *gin.Context) services.BookingService {
	return services.BookingService{
		Mailer:    mailer.New(h.Env),
		Geo:       geo.Client{APIKey: h.Env.GoogleMapsAPIKey},
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /booking (alias /book)
func (h BookingHandler) Create(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	b, err := h.service(c).CreateBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"message":         "Réservation enregistrée avec succès",
		"booking_id":      b.ID,
		"estimated_price": b.EstimatedPrice,
	})
}

// POST /calculate-price
func (h BookingHandler) Quote(c *gin.Context) {
	var in services.QuoteInput
	if !BindJSONOrError(c, &in) {
		return
	}

	price, distance, err := h.service(c).Quote(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"price":    price,
		"distance": distance,
		"currency": "EUR",
	})
}

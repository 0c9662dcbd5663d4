package handlers

import (
	"net/http"
	"strconv"

	"bagages/internal/config"
	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/http/middleware"
	"bagages/internal/mailer"
	"bagages/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the authenticated back-office endpoints.
type AdminHandler struct {
	Env config.Env
}

func (h AdminHandler) service(c *gin.Context) services.BookingService {
	return services.BookingService{
		Mailer:    mailer.New(h.Env),
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /admin
func (h AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.service(c).Dashboard()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"stats":           dash.Stats,
		"recent_bookings": dash.RecentBookings,
	})
}

// GET /admin/bookings?status=&search=
func (h AdminHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	bookings, err := h.service(c).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
		"count":    len(bookings),
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

// POST /admin/bookings/:id/status
func (h AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "identifiant invalide"})
		return
	}

	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := h.service(c).UpdateStatus(id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Statut mis à jour",
	})
}

// GET /admin/bookings/:id/receipt
func (h AdminHandler) Receipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "identifiant invalide"})
		return
	}

	pdf, filename, err := services.ReceiptService{}.Receipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/stats
func (h AdminHandler) Stats(c *gin.Context) {
	stats, daily, err := h.service(c).DetailedStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"stats":       stats,
		"daily_stats": daily,
	})
}

// POST /admin/maintenance/purge?days=90
func (h AdminHandler) PurgeCancelled(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "90"))
	n, err := h.service(c).PurgeCancelled(days)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": n,
	})
}

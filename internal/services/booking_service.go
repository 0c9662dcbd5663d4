package services

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/geo"
	"bagages/internal/mailer"
	"bagages/internal/pricing"
	"bagages/internal/repositories"
	"bagages/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/now"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BookingService owns the booking lifecycle: quote, create, list, status
// updates, dashboard stats and retention cleanup.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	PricingRepo repositories.PricingRepository
	Mailer      mailer.Mailer
	Geo         geo.Client
	RequestID   string
}

func (s BookingService) mail() mailer.Mailer {
	if s.Mailer != nil {
		return s.Mailer
	}
	return mailer.LogMailer{}
}

func (s BookingService) rates() pricing.RateTable {
	rates, err := s.PricingRepo.LoadRates()
	if err != nil {
		// tariff overrides are optional, the built-in grid always works
		utils.LogEvent(s.RequestID, "booking", "load_rates", fmt.Sprintf("pricing_rules indisponible: %v", err))
		return pricing.DefaultRates()
	}
	return rates
}

// QuoteInput is the /calculate-price payload.
type QuoteInput struct {
	ClientType    string `json:"client_type" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	BagCount      string `json:"bag_count" validate:"required"`
	PickupAddress string `json:"pickup_address"`
}

// Quote computes a live price. Distance is resolved from the pickup address
// when possible, otherwise the default distance applies.
func (s BookingService) Quote(in QuoteInput) (price, distance float64, err error) {
	in.ClientType = strings.ToLower(utils.TrimOrEmpty(in.ClientType))
	in.Destination = strings.ToLower(utils.TrimOrEmpty(in.Destination))
	if err := validate.Struct(in); err != nil {
		return 0, 0, asValidationError(err)
	}

	distance = geo.DefaultDistanceKm
	if in.Destination != models.DestHome {
		distance = s.Geo.DistanceKm(utils.TrimOrEmpty(in.PickupAddress), in.Destination)
	}

	calc := pricing.Calculator{Rates: s.rates()}
	price = calc.Quote(in.ClientType, in.Destination, in.BagCount, distance)
	return price, distance, nil
}

// CreateBooking validates the form payload, prices it, persists the booking
// with a pending status and fires the confirmation email. Mail failures are
// logged and never block the response.
func (s BookingService) CreateBooking(in models.BookingInput) (models.Booking, error) {
	in.ClientType = strings.ToLower(utils.TrimOrEmpty(in.ClientType))
	in.Destination = strings.ToLower(utils.TrimOrEmpty(in.Destination))
	in.ClientName = utils.NormalizeSpace(in.ClientName)
	in.ClientEmail = utils.TrimOrEmpty(in.ClientEmail)
	in.ClientPhone = utils.NormalizePhone(in.ClientPhone)
	in.PickupAddress = utils.TrimOrEmpty(in.PickupAddress)
	in.PickupDatetime = utils.TrimOrEmpty(in.PickupDatetime)
	in.BagCount = utils.TrimOrEmpty(in.BagCount)
	in.SpecialInstructions = utils.TrimOrEmpty(in.SpecialInstructions)

	if err := validate.Struct(in); err != nil {
		return models.Booking{}, asValidationError(err)
	}

	pickupAt, err := utils.ParseDateTime(in.PickupDatetime)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "pickup_datetime", Msg: "format de date invalide", Err: err}
	}
	in.PickupDatetime = utils.FormatDateTime(pickupAt)

	distance := geo.DefaultDistanceKm
	if in.Destination != models.DestHome {
		distance = s.Geo.DistanceKm(in.PickupAddress, in.Destination)
	}
	calc := pricing.Calculator{Rates: s.rates()}
	price := calc.Quote(in.ClientType, in.Destination, in.BagCount, distance)

	b := models.Booking{
		ClientType:          in.ClientType,
		ClientName:          in.ClientName,
		ClientEmail:         in.ClientEmail,
		ClientPhone:         in.ClientPhone,
		PickupAddress:       in.PickupAddress,
		Destination:         in.Destination,
		PickupDatetime:      in.PickupDatetime,
		BagCount:            in.BagCount,
		SpecialInstructions: in.SpecialInstructions,
		EstimatedPrice:      price,
		Status:              models.StatusPending,
	}

	id, err := s.BookingRepo.Create(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id

	if err := s.mail().Send(b.ClientEmail, mailer.ConfirmationSubject(b.ID), mailer.ConfirmationBody(b)); err != nil {
		utils.LogEvent(s.RequestID, "booking", "confirmation_mail", fmt.Sprintf("booking_id=%d err=%v", b.ID, err))
	}

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d price=%s", b.ID, utils.FormatMoney(price)))
	return b, nil
}

// List returns bookings for the admin panel, newest first.
func (s BookingService) List(f models.BookingFilter) ([]models.Booking, error) {
	return s.BookingRepo.List(f)
}

// UpdateStatus validates the token, updates the row and notifies the client
// when the new status warrants it.
func (s BookingService) UpdateStatus(id int64, status string) error {
	status = strings.ToLower(utils.TrimOrEmpty(status))
	if !models.IsValidStatus(status) {
		return domain.ValidationError{Field: "status", Msg: "statut invalide"}
	}

	if err := s.BookingRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		// row was just updated; a read failure only costs the notice
		utils.LogEvent(s.RequestID, "booking", "status_mail", fmt.Sprintf("booking_id=%d relecture: %v", id, err))
		return nil
	}
	if body := mailer.StatusBody(b); body != "" {
		if err := s.mail().Send(b.ClientEmail, mailer.StatusSubject(b.ID), body); err != nil {
			utils.LogEvent(s.RequestID, "booking", "status_mail", fmt.Sprintf("booking_id=%d err=%v", b.ID, err))
		}
	}

	utils.LogEvent(s.RequestID, "booking", "update_status", fmt.Sprintf("booking_id=%d status=%s", id, status))
	return nil
}

// Dashboard bundles the admin landing page data.
type Dashboard struct {
	Stats          models.BookingStats `json:"stats"`
	RecentBookings []models.Booking    `json:"recent_bookings"`
}

func (s BookingService) Dashboard() (Dashboard, error) {
	stats, err := s.BookingRepo.Stats()
	if err != nil {
		return Dashboard{}, err
	}
	recent, err := s.BookingRepo.Recent(10)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Stats: stats, RecentBookings: recent}, nil
}

// DetailedStats returns global counters plus the 7-day daily series.
func (s BookingService) DetailedStats() (models.BookingStats, []models.DailyStat, error) {
	stats, err := s.BookingRepo.Stats()
	if err != nil {
		return models.BookingStats{}, nil, err
	}
	since := now.With(time.Now()).BeginningOfDay().AddDate(0, 0, -6)
	daily, err := s.BookingRepo.DailyStats(since)
	if err != nil {
		return models.BookingStats{}, nil, err
	}
	return stats, daily, nil
}

// PurgeCancelled removes cancelled bookings older than the retention window.
func (s BookingService) PurgeCancelled(days int) (int64, error) {
	if days <= 0 {
		days = 90
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	n, err := s.BookingRepo.PurgeCancelled(cutoff)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "booking", "purge_cancelled", fmt.Sprintf("deleted=%d days=%d cutoff=%s", n, days, utils.FormatDate(cutoff)))
	return n, nil
}

func asValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		msg := "champ requis"
		switch fe.Tag() {
		case "email":
			msg = "adresse email invalide"
		case "min":
			msg = "valeur trop courte"
		}
		return domain.ValidationError{Field: fe.Field(), Msg: msg, Err: err}
	}
	return domain.ValidationError{Msg: "payload invalide", Err: err}
}

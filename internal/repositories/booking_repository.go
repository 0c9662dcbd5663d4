package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "bagages/internal/config"
	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/utils"
)

const bookingColumns = `
	id, client_type, client_name, client_email, client_phone,
	pickup_address, destination, pickup_datetime, bag_count,
	COALESCE(special_instructions,''), estimated_price, status,
	created_at, updated_at`

// BookingRepository wraps DB access to the bookings table.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a booking and returns the generated id.
// Status and price must already be set by the service layer.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (
			client_type, client_name, client_email, client_phone,
			pickup_address, destination, pickup_datetime, bag_count,
			special_instructions, estimated_price, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ClientType, b.ClientName, b.ClientEmail, b.ClientPhone,
		b.PickupAddress, b.Destination, b.PickupDatetime, b.BagCount,
		nullIfEmpty(b.SpecialInstructions), b.EstimatedPrice, b.Status, utils.NowUTC(),
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "insertion reservation", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "insertion reservation", Err: err}
	}
	return id, nil
}

// GetByID loads one booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "reservation"}
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "reservation", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "lecture reservation", Err: err}
	}
	return b, nil
}

// List returns bookings ordered by creation time descending, with optional
// exact status filter and substring search across name/email/phone.
func (r BookingRepository) List(f models.BookingFilter) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []any{}

	if s := strings.TrimSpace(f.Status); s != "" && s != "all" {
		query += ` AND status = ?`
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		query += ` AND (client_name LIKE ? OR client_email LIKE ? OR client_phone LIKE ?)`
		pattern := "%" + s + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "liste reservations", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "liste reservations", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "liste reservations", Err: err}
	}
	return out, nil
}

// Recent returns the latest bookings for the dashboard.
func (r BookingRepository) Recent(limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "reservations recentes", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "reservations recentes", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "reservations recentes", Err: err}
	}
	return out, nil
}

// UpdateStatus sets the booking status and stamps updated_at.
// The status token must already be validated by the service layer.
func (r BookingRepository) UpdateStatus(id int64, status string) error {
	if id <= 0 {
		return domain.NotFoundError{Resource: "reservation"}
	}
	res, err := r.db().Exec(`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, utils.NowUTC(), id)
	if err != nil {
		return domain.InternalError{Msg: "mise a jour statut", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Msg: "mise a jour statut", Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "reservation"}
	}
	return nil
}

// Stats aggregates counters for the admin dashboard.
func (r BookingRepository) Stats() (models.BookingStats, error) {
	var s models.BookingStats
	err := r.db().QueryRow(`
		SELECT
			COUNT(*),
			COUNT(CASE WHEN status = 'en_attente' THEN 1 END),
			COUNT(CASE WHEN status = 'confirme' THEN 1 END),
			COUNT(CASE WHEN status = 'termine' THEN 1 END),
			COUNT(CASE WHEN status = 'annule' THEN 1 END),
			COALESCE(SUM(estimated_price), 0),
			COALESCE(AVG(estimated_price), 0)
		FROM bookings`).Scan(
		&s.TotalBookings,
		&s.PendingBookings,
		&s.ConfirmedBookings,
		&s.CompletedBookings,
		&s.CancelledBookings,
		&s.TotalRevenue,
		&s.AvgPrice,
	)
	if err != nil {
		return models.BookingStats{}, domain.InternalError{Msg: "statistiques", Err: err}
	}
	return s, nil
}

// DailyStats returns per-day booking counts and revenue since the given time.
func (r BookingRepository) DailyStats(since time.Time) ([]models.DailyStat, error) {
	rows, err := r.db().Query(`
		SELECT DATE(created_at), COUNT(*), COALESCE(SUM(estimated_price), 0)
		FROM bookings
		WHERE created_at >= ?
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at) DESC
		LIMIT 7`, since)
	if err != nil {
		return nil, domain.InternalError{Msg: "statistiques journalieres", Err: err}
	}
	defer rows.Close()

	out := []models.DailyStat{}
	for rows.Next() {
		var d models.DailyStat
		if err := rows.Scan(&d.Date, &d.BookingsCount, &d.DailyRevenue); err != nil {
			return nil, domain.InternalError{Msg: "statistiques journalieres", Err: err}
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "statistiques journalieres", Err: err}
	}
	return out, nil
}

// PurgeCancelled deletes cancelled bookings created before the cutoff and
// returns how many rows were removed.
func (r BookingRepository) PurgeCancelled(before time.Time) (int64, error) {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE status = 'annule' AND created_at < ?`, before)
	if err != nil {
		return 0, domain.InternalError{Msg: "purge reservations annulees", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.InternalError{Msg: "purge reservations annulees", Err: err}
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var updatedAt sql.NullTime
	err := row.Scan(
		&b.ID, &b.ClientType, &b.ClientName, &b.ClientEmail, &b.ClientPhone,
		&b.PickupAddress, &b.Destination, &b.PickupDatetime, &b.BagCount,
		&b.SpecialInstructions, &b.EstimatedPrice, &b.Status,
		&b.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		b.UpdatedAt = &t
	}
	return b, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

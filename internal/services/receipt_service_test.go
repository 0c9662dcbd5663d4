package services

import (
	"bytes"
	"testing"
	"time"

	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReceiptBuildsPDF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "client_type", "client_name", "client_email", "client_phone",
		"pickup_address", "destination", "pickup_datetime", "bag_count",
		"special_instructions", "estimated_price", "status", "created_at", "updated_at",
	}).AddRow(
		3, "famille", "Marie Dubois", "marie@exemple.fr", "0612340000",
		"123 Rue de la Paix, Paris", "aeroport", "2026-09-01 10:00:00", "4+",
		"", 70.0, models.StatusConfirmed, time.Now(), nil,
	)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	svc := ReceiptService{BookingRepo: repositories.BookingRepository{DB: db}}
	pdf, filename, err := svc.Receipt(3)
	if err != nil {
		t.Fatalf("receipt error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "RECU_3_Marie_Dubois.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestReceiptUnknownBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := ReceiptService{BookingRepo: repositories.BookingRepository{DB: db}}
	if _, _, err := svc.Receipt(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"Marie Dubois":   "Marie_Dubois",
		"Jean-Luc  ":     "Jean_Luc",
		"   ":            "client",
		"éàç":            "client",
		"Client 42 /tmp": "Client_42_tmp",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Errorf("safeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
}

package services

import (
	"bytes"
	"fmt"
	"strings"

	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/repositories"
	"bagages/internal/utils"

	"github.com/phpdave11/gofpdf"
)

var statusLabels = map[string]string{
	models.StatusPending:   "En attente",
	models.StatusConfirmed: "Confirmee",
	models.StatusInTransit: "En cours",
	models.StatusCompleted: "Terminee",
	models.StatusCancelled: "Annulee",
}

// ReceiptService renders a booking receipt as a downloadable PDF.
type ReceiptService struct {
	BookingRepo repositories.BookingRepository
}

// Receipt loads the booking and returns the PDF bytes plus a filename.
func (s ReceiptService) Receipt(bookingID int64) ([]byte, string, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildReceiptPDF(b)
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Recu de reservation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECU DE RESERVATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Reservation : #%d", b.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Edite le    : "+utils.FormatDateTime(utils.NowUTC()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Client :")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Nom         : %s", orDash(b.ClientName)),
		fmt.Sprintf("Email       : %s", orDash(b.ClientEmail)),
		fmt.Sprintf("Telephone   : %s", orDash(b.ClientPhone)),
		fmt.Sprintf("Formule     : %s", orDash(b.ClientType)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Transport :")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines = []string{
		fmt.Sprintf("Collecte    : %s", orDash(b.PickupAddress)),
		fmt.Sprintf("Destination : %s", orDash(b.Destination)),
		fmt.Sprintf("Date/heure  : %s", orDash(b.PickupDatetime)),
		fmt.Sprintf("Bagages     : %s", orDash(b.BagCount)),
		fmt.Sprintf("Statut      : %s", statusLabel(b.Status)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total estime : "+utils.FormatMoney(b.EstimatedPrice)+" EUR")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "2AV-Bagages - Transport de bagages a Marseille. Ce recu atteste de l'enregistrement de la reservation, le reglement s'effectue a la prise en charge.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "generation du recu", Err: err}
	}

	filename := fmt.Sprintf("RECU_%d_%s.pdf", b.ID, safeFilenamePart(b.ClientName))
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func safeFilenamePart(v string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(v) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "client"
	}
	return sb.String()
}

package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"bagages/internal/config"
	"bagages/internal/domain/models"
	"bagages/internal/utils"
)

// Mailer delivers a formatted message to one recipient. Implementations must
// not retry; callers log failures and move on.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// New picks the transport: real SMTP in production with credentials,
// log-only simulation otherwise (mirrors the EMAIL_PASS/dev-mode switch).
func New(env config.Env) Mailer {
	if env.EmailPass == "" || !env.IsProduction() {
		return LogMailer{}
	}
	return SMTPMailer{
		Host: env.SMTPHost,
		Port: env.SMTPPort,
		User: env.EmailUser,
		Pass: env.EmailPass,
	}
}

// LogMailer simulates delivery by logging the message and always succeeds.
type LogMailer struct{}

func (LogMailer) Send(to, subject, htmlBody string) error {
	utils.LogEvent("", "mailer", "simulate", fmt.Sprintf("to=%s subject=%q", to, subject))
	return nil
}

// SMTPMailer sends over SMTP with STARTTLS. No retry, no queue.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
}

func (m SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := strings.Join([]string{
		"From: " + m.User,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.User, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("envoi email vers %s: %w", to, err)
	}
	return nil
}

// ConfirmationSubject builds the subject line for a new booking.
func ConfirmationSubject(bookingID int64) string {
	return fmt.Sprintf("Confirmation de réservation 2AV-Bagages #%d", bookingID)
}

// StatusSubject builds the subject line for a status update notice.
func StatusSubject(bookingID int64) string {
	return fmt.Sprintf("Mise à jour réservation 2AV-Bagages #%d", bookingID)
}

// ConfirmationBody renders the booking confirmation message.
func ConfirmationBody(b models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<p>Bonjour <strong>" + b.ClientName + "</strong>,</p>")
	sb.WriteString("<p>Votre réservation a été enregistrée avec succès !</p>")
	sb.WriteString("<p>Nous vous contacterons 30 minutes avant la collecte au " + b.ClientPhone + ".</p>")
	sb.WriteString(summaryList(b))
	sb.WriteString("<p>Merci de faire confiance à 2AV-Bagages !</p>")
	return sb.String()
}

var statusMessages = map[string]string{
	models.StatusConfirmed: "Votre réservation a été confirmée par notre équipe.",
	models.StatusCompleted: "Votre transport a été effectué avec succès. Merci !",
}

// StatusBody renders a status update message, or "" when the new status does
// not warrant a customer notice.
func StatusBody(b models.Booking) string {
	msg, ok := statusMessages[b.Status]
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<p>Bonjour <strong>" + b.ClientName + "</strong>,</p>")
	sb.WriteString("<p>" + msg + "</p>")
	sb.WriteString(summaryList(b))
	return sb.String()
}

func summaryList(b models.Booking) string {
	return fmt.Sprintf(`<ul>
<li><strong>Réservation :</strong> #%d</li>
<li><strong>Date :</strong> %s</li>
<li><strong>Adresse :</strong> %s</li>
<li><strong>Destination :</strong> %s</li>
<li><strong>Bagages :</strong> %s</li>
<li><strong>Prix :</strong> %s</li>
</ul>`, b.ID, b.PickupDatetime, b.PickupAddress, b.Destination, b.BagCount, utils.FormatEuro(b.EstimatedPrice))
}

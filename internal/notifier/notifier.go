package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"github.com/princeadura/leegion-party/internal/config"
	"github.com/princeadura/leegion-party/internal/models"
)

var bodyTmpl = template.Must(template.New("mail").Parse(`<h3>New Reservation</h3>
<p><b>Name:</b> {{.Reservation.Name}}</p>
<p><b>Email:</b> {{.Reservation.Email}}</p>
<p><b>Phone:</b> {{.Reservation.Phone}}</p>
<p><b>Guests:</b> {{.Reservation.Guests}}</p>
<p><b>Message:</b> {{.Reservation.Message}}</p>
<p><b>ID:</b> {{.Reservation.ID}}</p>
<p><img src="{{.QRURL}}" alt="qr"/></p>`))

// Mailer sends the admin a note about each new reservation. It is an optional
// collaborator: New returns nil when credentials are not configured, and the
// service runs without notifications.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	to        string
	eventName string
	baseURL   string
}

func New(cfg *config.Config) *Mailer {
	if !cfg.Mail.Enabled() || cfg.Admin.Email == "" {
		return nil
	}

	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Pass),
		from:      cfg.Mail.User,
		to:        cfg.Admin.Email,
		eventName: cfg.EventName,
		baseURL:   cfg.BaseURL,
	}
}

// NotifyNewReservation delivers one mail for the given reservation. Callers
// treat failures as log-only; a reservation never fails because mail did.
func (m *Mailer) NotifyNewReservation(reservation models.Reservation, qrPath string) error {
	const op = "notifier.NotifyNewReservation"

	var body bytes.Buffer
	err := bodyTmpl.Execute(&body, struct {
		Reservation models.Reservation
		QRURL       string
	}{
		Reservation: reservation,
		QRURL:       fmt.Sprintf("%s/%s", m.baseURL, qrPath),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.eventName)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New RSVP: %s", reservation.Name))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

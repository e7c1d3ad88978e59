package save

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/princeadura/leegion-party/internal/lib/logger/sl"
	"github.com/princeadura/leegion-party/internal/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!doctype html><html><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/><title>Reserved</title></head><body style="font-family:Arial,Helvetica,sans-serif;background:#0b0b0b;color:#fff;display:flex;align-items:center;justify-content:center;height:100vh;margin:0;"><div style="text-align:center;"><h2>🎶 Thank you, {{.Name}}!</h2><p>Your reservation is confirmed. Show this QR at the door.</p><img src="/{{.QRPath}}" alt="QR" style="width:220px;height:220px;margin-top:12px;"/><div style="margin-top:18px;"><a href="/" style="color:#e50914;text-decoration:none;">Make another reservation</a></div></div></body></html>`))

type ReservationRequest struct {
	Name    string
	Email   string `validate:"omitempty,email"`
	Phone   string
	Guests  int
	Message string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationSaver
type ReservationSaver interface {
	SaveReservation(name, email, phone string, guests int, message string) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtifactGenerator
type ArtifactGenerator interface {
	Generate(id int64) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminNotifier
type AdminNotifier interface {
	NotifyNewReservation(reservation models.Reservation, qrPath string) error
}

// New handles POST /reserve: insert the reservation, render its QR artifact,
// fire the admin notification and show the confirmation page. The notifier is
// optional and may be nil.
func New(log *slog.Logger, saver ReservationSaver, artifacts ArtifactGenerator, notifier AdminNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.save.New"

		log = log.With(slog.String("op", op))

		// Submissions are accepted as-is: a guest list should be
		// low-friction, so nothing short of a storage failure rejects one.
		if err := r.ParseForm(); err != nil {
			log.Warn("failed to parse form, proceeding with empty fields", sl.Err(err))
		}

		req := ReservationRequest{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Phone:   r.PostForm.Get("phone"),
			Message: r.PostForm.Get("message"),
		}

		req.Guests, _ = strconv.Atoi(r.PostForm.Get("guests"))
		if req.Guests == 0 {
			req.Guests = 1
		}

		if err := validator.New().Struct(req); err != nil {
			log.Warn("submission has suspicious fields", sl.Err(err))
		}

		log.Info("submission received", slog.String("name", req.Name), slog.Int("guests", req.Guests))

		id, err := saver.SaveReservation(req.Name, req.Email, req.Phone, req.Guests, req.Message)
		if err != nil {
			log.Error("failed to save reservation", sl.Err(err))
			renderFailure(w, r)
			return
		}

		log = log.With(slog.Int64("reservation_id", id))

		qrPath, err := artifacts.Generate(id)
		if err != nil {
			// The row is already committed; the orphan is accepted
			// rather than rolled back.
			log.Error("failed to generate qr artifact", sl.Err(err))
			renderFailure(w, r)
			return
		}

		if notifier != nil {
			reservation := models.Reservation{
				ID:        id,
				Name:      req.Name,
				Email:     req.Email,
				Phone:     req.Phone,
				Guests:    req.Guests,
				Message:   req.Message,
				CreatedAt: time.Now(),
			}

			go func() {
				if err := notifier.NotifyNewReservation(reservation, qrPath); err != nil {
					log.Error("failed to send admin notification", sl.Err(err))
				}
			}()
		}

		var page bytes.Buffer
		err = confirmationTmpl.Execute(&page, struct {
			Name   string
			QRPath string
		}{req.Name, qrPath})
		if err != nil {
			log.Error("failed to render confirmation", sl.Err(err))
			renderFailure(w, r)
			return
		}

		log.Info("reservation saved", slog.String("qr_path", qrPath))

		render.HTML(w, r, page.String())
	}
}

func renderFailure(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusInternalServerError)
	render.HTML(w, r, "Error saving reservation.")
}

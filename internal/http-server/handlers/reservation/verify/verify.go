package verify

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/princeadura/leegion-party/internal/lib/logger/sl"
	"github.com/princeadura/leegion-party/internal/models"
	"github.com/princeadura/leegion-party/internal/storage"
)

var verifiedTmpl = template.Must(template.New("verified").Parse(`<!doctype html><html><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/><title>Verified</title></head><body style="font-family:Arial,Helvetica,sans-serif;background:#0b0b0b;color:#fff;display:flex;align-items:center;justify-content:center;height:100vh;margin:0;"><div style="text-align:center;"><h2>✅ Verified: {{.Name}}</h2><p>Guests: {{.Guests}}</p><p>Reserved at: {{.CreatedAt.Format "2006-01-02 15:04:05"}}</p><p><a href="#" onclick="window.print();return false;" style="color:#e50914;">Print</a></p></div></body></html>`))

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationProvider
type ReservationProvider interface {
	Reservation(id int64) (*models.Reservation, error)
}

// New handles GET /verify/{id}, the door check-in scan. Read-only and
// idempotent: scanning the same code twice shows the same page.
func New(log *slog.Logger, provider ReservationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.verify.New"

		log = log.With(slog.String("op", op))

		// A malformed id is indistinguishable from an unknown one to the
		// person at the door, so both get the invalid view.
		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Info("malformed reservation id", slog.String("id", idStr))
			renderInvalid(w, r)
			return
		}

		log = log.With(slog.Int64("reservation_id", id))

		reservation, err := provider.Reservation(id)
		if err != nil {
			if errors.Is(err, storage.ErrReservationNotFound) {
				log.Info("reservation not found")
				renderInvalid(w, r)
				return
			}

			log.Error("failed to look up reservation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.HTML(w, r, "Error verifying reservation.")
			return
		}

		var page bytes.Buffer
		if err := verifiedTmpl.Execute(&page, reservation); err != nil {
			log.Error("failed to render verified view", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.HTML(w, r, "Error verifying reservation.")
			return
		}

		log.Info("reservation verified", slog.String("name", reservation.Name))

		render.HTML(w, r, page.String())
	}
}

func renderInvalid(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.HTML(w, r, "<h3>❌ Invalid or expired QR Code</h3>")
}

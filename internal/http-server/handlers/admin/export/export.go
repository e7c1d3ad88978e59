package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/princeadura/leegion-party/internal/lib/logger/sl"
	"github.com/princeadura/leegion-party/internal/models"
)

var csvHeader = []string{"id", "name", "email", "phone", "guests", "message", "created_at"}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsLister
type ReservationsLister interface {
	Reservations() ([]models.Reservation, error)
}

// New handles GET /export: gate on the shared secret carried in the query,
// then stream the guest list as a CSV attachment.
func New(log *slog.Logger, lister ReservationsLister, adminPassword, filename string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.export.New"

		log = log.With(slog.String("op", op))

		if r.URL.Query().Get("password") != adminPassword {
			log.Info("export rejected", slog.String("remote_addr", r.RemoteAddr))
			render.Status(r, http.StatusForbidden)
			render.PlainText(w, r, "Unauthorized")
			return
		}

		reservations, err := lister.Reservations()
		if err != nil {
			log.Error("failed to load guest list", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "Error exporting guest list.")
			return
		}

		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)

		if err := cw.Write(csvHeader); err != nil {
			log.Error("failed to encode csv", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "Error exporting guest list.")
			return
		}

		for _, res := range reservations {
			record := []string{
				strconv.FormatInt(res.ID, 10),
				res.Name,
				res.Email,
				res.Phone,
				strconv.Itoa(res.Guests),
				res.Message,
				res.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if err := cw.Write(record); err != nil {
				log.Error("failed to encode csv", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.PlainText(w, r, "Error exporting guest list.")
				return
			}
		}

		cw.Flush()
		if err := cw.Error(); err != nil {
			log.Error("failed to encode csv", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "Error exporting guest list.")
			return
		}

		log.Info("guest list exported", slog.Int("count", len(reservations)))

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

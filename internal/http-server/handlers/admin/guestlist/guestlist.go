package guestlist

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/princeadura/leegion-party/internal/lib/logger/sl"
	"github.com/princeadura/leegion-party/internal/models"
)

var tablePage = template.Must(template.New("guestlist").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width,initial-scale=1"/>
    <title>Admin - Guests</title>
  </head>
  <body style="font-family:Arial,Helvetica,sans-serif;background:#f4f4f4;color:#111;padding:20px;">
    <h2>Guest List</h2>
    <p><a href="/export?password={{.Password}}">⬇ Export as CSV</a></p>
    <table border="1" cellpadding="8" cellspacing="0">
      {{if .Reservations}}<tr style="background:#222;color:#fff;"><th>ID</th><th>Name</th><th>Email</th><th>Phone</th><th>Guests</th><th>Reserved At</th><th>QR</th></tr>{{end}}
      {{range .Reservations}}<tr>
        <td>{{.ID}}</td>
        <td>{{.Name}}</td>
        <td>{{.Email}}</td>
        <td>{{.Phone}}</td>
        <td>{{.Guests}}</td>
        <td>{{.CreatedAt.Format "2006-01-02 15:04:05"}}</td>
        <td><a href="/qr-codes/reservation_{{.ID}}.png" target="_blank">View QR</a></td>
      </tr>
      {{end}}
    </table>
    <p><a href="/admin">Back</a></p>
  </body>
</html>`))

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsLister
type ReservationsLister interface {
	Reservations() ([]models.Reservation, error)
}

// New handles POST /admin: gate on the shared secret, then show the guest
// table newest-first. The secret travels with every request; there is no
// session to remember it.
func New(log *slog.Logger, lister ReservationsLister, adminPassword string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.guestlist.New"

		log = log.With(slog.String("op", op))

		password := r.PostFormValue("password")
		if password != adminPassword {
			log.Info("admin login rejected", slog.String("remote_addr", r.RemoteAddr))
			render.Status(r, http.StatusUnauthorized)
			render.HTML(w, r, "<h3>❌ Invalid password</h3><p><a href='/admin'>Back</a></p>")
			return
		}

		reservations, err := lister.Reservations()
		if err != nil {
			log.Error("failed to load guest list", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.HTML(w, r, "Error loading guest list.")
			return
		}

		var page bytes.Buffer
		err = tablePage.Execute(&page, struct {
			Password     string
			Reservations []models.Reservation
		}{password, reservations})
		if err != nil {
			log.Error("failed to render guest list", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.HTML(w, r, "Error loading guest list.")
			return
		}

		log.Info("guest list rendered", slog.Int("count", len(reservations)))

		render.HTML(w, r, page.String())
	}
}

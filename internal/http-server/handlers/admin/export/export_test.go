package export_test

import (
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeadura/leegion-party/internal/http-server/handlers/admin/export"
	"github.com/princeadura/leegion-party/internal/http-server/handlers/admin/export/mocks"
	"github.com/princeadura/leegion-party/internal/lib/logger/handlers/slogdiscard"
	"github.com/princeadura/leegion-party/internal/models"
)

const (
	adminPassword = "s3cret"
	filename      = "leegion_guest_list.csv"
)

func getExport(t *testing.T, handler http.HandlerFunc, password string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, "/export?password="+password, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}

func TestExportHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	guests := []models.Reservation{
		{
			ID:        2,
			Name:      "Bea, the second",
			Email:     "b@x.com",
			Phone:     "556",
			Guests:    2,
			Message:   `she said "hi"`,
			CreatedAt: time.Date(2025, 8, 30, 22, 0, 0, 0, time.UTC),
		},
		{
			ID:        1,
			Name:      "Ana",
			Email:     "a@x.com",
			Phone:     "555",
			Guests:    3,
			Message:   "",
			CreatedAt: time.Date(2025, 8, 30, 21, 0, 0, 0, time.UTC),
		},
	}

	t.Run("Wrong password exposes no data", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewReservationsLister(t)
		handler := export.New(logger, lister, adminPassword, filename)

		rr := getExport(t, handler, "wrong")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "Unauthorized")
		assert.NotContains(t, rr.Body.String(), "Ana")
	})

	t.Run("CSV round-trips the list, commas and quotes included", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewReservationsLister(t)
		lister.On("Reservations").Return(guests, nil)

		handler := export.New(logger, lister, adminPassword, filename)

		rr := getExport(t, handler, adminPassword)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), filename)

		records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, []string{"id", "name", "email", "phone", "guests", "message", "created_at"}, records[0])
		assert.Equal(t, []string{"2", "Bea, the second", "b@x.com", "556", "2", `she said "hi"`, "2025-08-30 22:00:00"}, records[1])
		assert.Equal(t, []string{"1", "Ana", "a@x.com", "555", "3", "", "2025-08-30 21:00:00"}, records[2])
	})

	t.Run("Empty list exports header only", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewReservationsLister(t)
		lister.On("Reservations").Return([]models.Reservation{}, nil)

		handler := export.New(logger, lister, adminPassword, filename)

		rr := getExport(t, handler, adminPassword)

		assert.Equal(t, http.StatusOK, rr.Code)

		records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("Storage error", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewReservationsLister(t)
		lister.On("Reservations").Return(nil, errors.New("database error"))

		handler := export.New(logger, lister, adminPassword, filename)

		rr := getExport(t, handler, adminPassword)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Ana")
	})
}

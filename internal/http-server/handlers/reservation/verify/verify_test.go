package verify_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeadura/leegion-party/internal/http-server/handlers/reservation/verify"
	"github.com/princeadura/leegion-party/internal/http-server/handlers/reservation/verify/mocks"
	"github.com/princeadura/leegion-party/internal/lib/logger/handlers/slogdiscard"
	"github.com/princeadura/leegion-party/internal/models"
	"github.com/princeadura/leegion-party/internal/storage"
)

func TestVerifyHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	ana := &models.Reservation{
		ID:        7,
		Name:      "Ana",
		Email:     "a@x.com",
		Phone:     "555",
		Guests:    3,
		CreatedAt: time.Date(2025, 8, 30, 21, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(provider *mocks.ReservationProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Found",
			path: "/verify/7",
			mockSetup: func(provider *mocks.ReservationProvider) {
				provider.On("Reservation", int64(7)).Return(ana, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Ana")
				assert.Contains(t, body, "Guests: 3")
				assert.Contains(t, body, "2025-08-30 21:00:00")
			},
		},
		{
			name: "Not found",
			path: "/verify/8",
			mockSetup: func(provider *mocks.ReservationProvider) {
				provider.On("Reservation", int64(8)).Return(nil, storage.ErrReservationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Invalid or expired QR Code")
			},
		},
		{
			name:           "Malformed id",
			path:           "/verify/not-a-number",
			mockSetup:      func(provider *mocks.ReservationProvider) {},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Invalid or expired QR Code")
			},
		},
		{
			name: "Storage error",
			path: "/verify/7",
			mockSetup: func(provider *mocks.ReservationProvider) {
				provider.On("Reservation", int64(7)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "Verified")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewReservationProvider(t)
			tc.mockSetup(provider)

			router := chi.NewRouter()
			router.Get("/verify/{id}", verify.New(logger, provider))

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}

// Scanning the same code twice must show the same page both times.
func TestVerifyHandler_Idempotent(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	provider := mocks.NewReservationProvider(t)
	provider.On("Reservation", int64(7)).Return(&models.Reservation{
		ID:        7,
		Name:      "Ana",
		Guests:    3,
		CreatedAt: time.Date(2025, 8, 30, 21, 0, 0, 0, time.UTC),
	}, nil).Twice()

	router := chi.NewRouter()
	router.Get("/verify/{id}", verify.New(logger, provider))

	var bodies []string
	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodGet, "/verify/7", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}

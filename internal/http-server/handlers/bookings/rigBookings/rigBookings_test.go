package rigBookings

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saharaweb/internal/http-server/handlers/bookings/rigBookings/mocks"
	"saharaweb/internal/lib/logger/handlers/slogdiscard"
	"saharaweb/internal/models"
	"saharaweb/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRigBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	rigID := int64(1)
	typeID := int64(10)
	resolved := []models.Booking{
		{
			ID:           1,
			StartTime:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
			ResourceType: models.ResourceRig,
			RigID:        &rigID,
			User: models.User{
				ID: 5, Name: "mdiponio", FirstName: "Michael", LastName: "Diponio",
				Persona: "ADMIN", Email: "m@example.com",
			},
			Active: true,
		},
		{
			ID:           3,
			StartTime:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
			ResourceType: models.ResourceRigType,
			RigTypeID:    &typeID,
			User:         models.User{ID: 6, Name: "tmachet", Persona: "USER"},
			Active:       true,
		},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.BookingsResolver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Resolved bookings for a day",
			url:  "/bookings/rigs/R1?start=2024-01-01&end=2024-01-02",
			mockSetup: func(m *mocks.BookingsResolver) {
				m.On("RigBookings", mock.Anything, "R1", date(2024, 1, 1), date(2024, 1, 2)).
					Return(resolved, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[
				{"id":1,"start_time":"2024-01-01T10:00:00Z","end_time":"2024-01-01T11:00:00Z","type":"RIG",
				 "user":{"id":5,"name":"mdiponio","first_name":"Michael","last_name":"Diponio","persona":"ADMIN","email":"m@example.com"}},
				{"id":3,"start_time":"2024-01-01T12:00:00Z","end_time":"2024-01-01T13:00:00Z","type":"TYPE",
				 "user":{"id":6,"name":"tmachet","first_name":"","last_name":"","persona":"USER","email":""}}
			]`,
		},
		{
			name: "Unknown rig",
			url:  "/bookings/rigs/nope",
			mockSetup: func(m *mocks.BookingsResolver) {
				m.On("RigBookings", mock.Anything, "nope", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("bookings.Resolver.RigBookings: %w", storage.ErrRigNotFound))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "No bookings",
			url:  "/bookings/rigs/R1?start=2024-01-01",
			mockSetup: func(m *mocks.BookingsResolver) {
				m.On("RigBookings", mock.Anything, "R1", date(2024, 1, 1), date(2024, 1, 8)).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Default range starts today",
			url:  "/bookings/rigs/R1",
			mockSetup: func(m *mocks.BookingsResolver) {
				m.On("RigBookings", mock.Anything, "R1",
					mock.MatchedBy(func(from time.Time) bool {
						now := time.Now().UTC()
						return from.Equal(date(now.Year(), now.Month(), now.Day()))
					}),
					mock.MatchedBy(func(to time.Time) bool {
						now := time.Now().UTC()
						return to.Equal(date(now.Year(), now.Month(), now.Day()).AddDate(0, 0, 7))
					}),
				).Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Invalid start date",
			url:            "/bookings/rigs/R1?start=2024-13-01",
			mockSetup:      func(m *mocks.BookingsResolver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Start")
			},
		},
		{
			name:           "Invalid end date",
			url:            "/bookings/rigs/R1?end=tomorrow",
			mockSetup:      func(m *mocks.BookingsResolver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "End")
			},
		},
		{
			name:           "End before start",
			url:            "/bookings/rigs/R1?start=2024-01-02&end=2024-01-01",
			mockSetup:      func(m *mocks.BookingsResolver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"end date must be after start date"}`,
		},
		{
			name:           "Empty range",
			url:            "/bookings/rigs/R1?start=2024-01-02&end=2024-01-02",
			mockSetup:      func(m *mocks.BookingsResolver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"end date must be after start date"}`,
		},
		{
			name: "Service failure",
			url:  "/bookings/rigs/R1?start=2024-01-01&end=2024-01-02",
			mockSetup: func(m *mocks.BookingsResolver) {
				m.On("RigBookings", mock.Anything, "R1", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resolver := mocks.NewBookingsResolver(t)
			tc.mockSetup(resolver)

			router := chi.NewRouter()
			router.Get("/bookings/rigs/{name}", New(logger, resolver, time.UTC, 7))

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestHandlerWithoutRigName(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewBookingsResolver(t)
	handler := New(slogdiscard.NewDiscardLogger(), resolver, time.UTC, 7)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"rig name is required"}`, rr.Body.String())
}

func TestWindowUsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("AEST", 10*60*60)

	from, to := window(Request{Start: "2024-01-01", End: "2024-01-03"}, loc, 7)

	assert.True(t, from.Equal(time.Date(2023, 12, 31, 14, 0, 0, 0, time.UTC)))
	assert.True(t, to.Equal(time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)))
}

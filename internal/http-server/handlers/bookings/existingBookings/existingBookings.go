package existingBookings

import (
	"context"
	"log/slog"
	"net/http"

	"saharaweb/internal/http-server/middleware/mwauth"
	"saharaweb/internal/lib/api/response"
	"saharaweb/internal/lib/logger/sl"
	"saharaweb/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserBookingsGetter
type UserBookingsGetter interface {
	UserBookings(ctx context.Context, identity models.Identity) ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter UserBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookings.existingBookings.New"

		log := log.With(
			slog.String("op", op),
		)

		identity, ok := mwauth.IdentityFrom(r.Context())
		if !ok {
			log.Error("request is not authenticated")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("user", identity.String()))

		bookings, err := bookingsGetter.UserBookings(r.Context(), identity)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if bookings == nil {
			bookings = []models.Booking{}
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}

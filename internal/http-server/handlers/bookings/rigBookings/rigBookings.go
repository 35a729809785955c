package rigBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"saharaweb/internal/lib/api/response"
	"saharaweb/internal/lib/logger/sl"
	"saharaweb/internal/models"
	"saharaweb/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type Request struct {
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsResolver
type BookingsResolver interface {
	RigBookings(ctx context.Context, rigName string, from, to time.Time) ([]models.Booking, error)
}

// New serves the resolved bookings of a rig as a JSON array. Dates are read in loc
// and the window defaults to rangeDays days starting today.
func New(log *slog.Logger, resolver BookingsResolver, loc *time.Location, rangeDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookings.rigBookings.New"

		log := log.With(
			slog.String("op", op),
		)

		rigName := chi.URLParam(r, "name")
		if rigName == "" {
			log.Error("rig name is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("rig name is required"))
			return
		}

		log = log.With(slog.String("rig", rigName))

		req := Request{
			Start: r.URL.Query().Get("start"),
			End:   r.URL.Query().Get("end"),
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		from, to := window(req, loc, rangeDays)
		if !to.After(from) {
			log.Error("invalid date range", slog.Time("from", from), slog.Time("to", to))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("end date must be after start date"))
			return
		}

		bookings, err := resolver.RigBookings(r.Context(), rigName, from, to)
		if err != nil {
			if errors.Is(err, storage.ErrRigNotFound) {
				log.Info("rig not found")
				render.JSON(w, r, []models.Booking{})
				return
			}

			log.Error("failed to get rig bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if bookings == nil {
			bookings = []models.Booking{}
		}

		log.Info("rig bookings resolved", slog.Int("count", len(bookings)))

		render.JSON(w, r, bookings)
	}
}

// window converts the validated request dates to [from, to). A missing end is
// rangeDays after the start.
func window(req Request, loc *time.Location, rangeDays int) (time.Time, time.Time) {
	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if req.Start != "" {
		from, _ = time.ParseInLocation(dateLayout, req.Start, loc)
	}

	to := from.AddDate(0, 0, rangeDays)
	if req.End != "" {
		to, _ = time.ParseInLocation(dateLayout, req.End, loc)
	}

	return from, to
}

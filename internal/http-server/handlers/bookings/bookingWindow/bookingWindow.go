package bookingWindow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"saharaweb/internal/bookings"
	"saharaweb/internal/http-server/middleware/mwauth"
	"saharaweb/internal/lib/api/response"
	"saharaweb/internal/lib/logger/sl"
	"saharaweb/internal/models"
	"saharaweb/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

const (
	msgNotFound    = "The permission you selected was not found."
	msgNotBookable = "The permission you selected does not allow bookings."
	msgExpired     = "The permission you selected has expired."
)

type WindowResponse struct {
	response.Response
	CanBook         bool              `json:"can_book"`
	Permission      models.Permission `json:"permission"`
	WindowStart     string            `json:"window_start"`
	WindowEnd       string            `json:"window_end"`
	CurrentBookings int               `json:"current_bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGuard
type BookingGuard interface {
	Check(ctx context.Context, identity models.Identity, permissionID int64) (*bookings.Decision, error)
}

// New answers whether the caller may book against a permission. Rule failures
// redirect to fallbackPath with an error message for the user.
func New(log *slog.Logger, guard BookingGuard, fallbackPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookings.bookingWindow.New"

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

		permIDStr := chi.URLParam(r, "id")
		if permIDStr == "" {
			log.Error("permission id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("permission id is required"))
			return
		}

		permID, err := strconv.ParseInt(permIDStr, 10, 64)
		if err != nil {
			log.Error("invalid permission id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid permission id format"))
			return
		}

		log = log.With(
			slog.Int64("permission_id", permID),
			slog.String("user", identity.String()),
		)

		decision, err := guard.Check(r.Context(), identity, permID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrPermissionNotFound):
				log.Info("permission not found")
				redirect(w, r, fallbackPath, msgNotFound)
			case errors.Is(err, bookings.ErrNotBookable):
				log.Info("permission does not allow bookings")
				redirect(w, r, fallbackPath, msgNotBookable)
			case errors.Is(err, bookings.ErrPermissionExpired):
				log.Info("permission expired")
				redirect(w, r, fallbackPath, msgExpired)
			default:
				log.Error("failed to check permission", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to check permission"))
			}
			return
		}

		log.Info("booking window computed",
			slog.Bool("can_book", decision.CanBook),
			slog.Int("current_bookings", decision.CurrentBookings),
		)

		responseOK(w, r, decision)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, fallbackPath, msg string) {
	target := fallbackPath + "?" + url.Values{"error": {msg}}.Encode()
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func responseOK(w http.ResponseWriter, r *http.Request, decision *bookings.Decision) {
	render.JSON(w, r, WindowResponse{
		Response:        response.OK(),
		CanBook:         decision.CanBook,
		Permission:      decision.Permission,
		WindowStart:     decision.WindowStart.Format(dateLayout),
		WindowEnd:       decision.WindowEnd.Format(dateLayout),
		CurrentBookings: decision.CurrentBookings,
	})
}

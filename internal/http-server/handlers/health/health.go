package health

import (
	"context"
	"log/slog"
	"net/http"

	"saharaweb/internal/lib/api/response"
	"saharaweb/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		if err := db.Ping(r.Context()); err != nil {
			log.Error("database is unavailable", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("database unavailable"))
			return
		}

		render.JSON(w, r, response.OK())
	}
}

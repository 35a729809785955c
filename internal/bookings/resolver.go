package bookings

import (
	"context"
	"fmt"
	"time"

	"saharaweb/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RigFinder
type RigFinder interface {
	FindRigByName(ctx context.Context, name string) (*models.Rig, error)
}

// BookingsQuerier returns active bookings of a rig or its rig type that intersect
// [from, to). Results must be ordered by start time ascending.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsQuerier
type BookingsQuerier interface {
	QueryBookings(ctx context.Context, rig *models.Rig, from, to time.Time) ([]models.Booking, error)
}

type Resolver struct {
	rigs     RigFinder
	bookings BookingsQuerier
}

func NewResolver(rigs RigFinder, bookings BookingsQuerier) *Resolver {
	return &Resolver{
		rigs:     rigs,
		bookings: bookings,
	}
}

// RigBookings returns the bookings visible for the named rig within [from, to)
// with conflicting rig type bookings removed.
func (r *Resolver) RigBookings(ctx context.Context, rigName string, from, to time.Time) ([]models.Booking, error) {
	const op = "bookings.Resolver.RigBookings"

	rig, err := r.rigs.FindRigByName(ctx, rigName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	found, err := r.bookings.QueryBookings(ctx, rig, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return Resolve(found), nil
}

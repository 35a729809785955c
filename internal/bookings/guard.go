package bookings

import (
	"context"
	"fmt"
	"time"

	"saharaweb/internal/models"
	"saharaweb/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PermissionGetter
type PermissionGetter interface {
	GetPermission(ctx context.Context, identity models.Identity, permissionID int64) (*models.Permission, error)
}

// BookingCounter counts a user's bookings under a permission that are neither
// cancelled nor finished.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCounter
type BookingCounter interface {
	CountUserBookings(ctx context.Context, identity models.Identity, permissionID int64) (int, error)
}

// Decision is the outcome of a successful guard check. CanBook is false when the
// user has used up the permission's booking quota.
type Decision struct {
	CanBook         bool
	Permission      models.Permission
	WindowStart     time.Time
	WindowEnd       time.Time
	CurrentBookings int
}

// Guard decides whether a user may enter the booking workflow for a permission.
type Guard struct {
	permissions PermissionGetter
	counter     BookingCounter
	loc         *time.Location
	now         func() time.Time
}

// NewGuard creates a guard. Window dates are truncated to midnight in loc;
// nil loc means UTC and nil now means time.Now.
func NewGuard(permissions PermissionGetter, counter BookingCounter, loc *time.Location, now func() time.Time) *Guard {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}

	return &Guard{
		permissions: permissions,
		counter:     counter,
		loc:         loc,
		now:         now,
	}
}

func (g *Guard) Check(ctx context.Context, identity models.Identity, permissionID int64) (*Decision, error) {
	const op = "bookings.Guard.Check"

	perm, err := g.permissions.GetPermission(ctx, identity, permissionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if perm == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPermissionNotFound)
	}

	if !perm.CanBook {
		return nil, fmt.Errorf("%s: %w", op, ErrNotBookable)
	}

	now := g.now()

	// A permission expiring exactly now is already unusable.
	if !perm.Expiry.After(now) {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionExpired)
	}

	count, err := g.counter.CountUserBookings(ctx, identity, permissionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := now.Add(time.Duration(perm.TimeHorizon) * time.Second)
	if perm.Start.After(start) {
		start = perm.Start
	}

	return &Decision{
		CanBook:         count < perm.MaxBookings,
		Permission:      *perm,
		WindowStart:     g.midnight(start),
		WindowEnd:       g.midnight(perm.Expiry),
		CurrentBookings: count,
	}, nil
}

func (g *Guard) midnight(t time.Time) time.Time {
	y, m, d := t.In(g.loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}

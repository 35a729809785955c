package bookings

import (
	"slices"
	"time"

	"saharaweb/internal/models"
)

type interval struct {
	start time.Time
	end   time.Time
}

// overlaps reports whether [start, end) touches iv. The start bound is tested
// against [iv.start, iv.end) and the end bound against (iv.start, iv.end], so a
// booking that fully encloses iv is not counted.
func (iv interval) overlaps(start, end time.Time) bool {
	startWithin := !start.Before(iv.start) && start.Before(iv.end)
	endWithin := end.After(iv.start) && !end.After(iv.end)

	return startWithin || endWithin
}

// Resolve removes rig type bookings that would appear double booked against a
// rig booking or an earlier accepted rig type booking. Rig bookings are always
// kept and capability bookings pass through untouched. The input is not modified.
func Resolve(bookings []models.Booking) []models.Booking {
	ordered := slices.Clone(bookings)
	slices.SortStableFunc(ordered, func(a, b models.Booking) int {
		return a.StartTime.Compare(b.StartTime)
	})

	committed := make([]interval, 0, len(ordered))
	for _, b := range ordered {
		if b.ResourceType == models.ResourceRig {
			committed = append(committed, interval{start: b.StartTime, end: b.EndTime})
		}
	}

	resolved := make([]models.Booking, 0, len(ordered))
	for _, b := range ordered {
		if b.ResourceType == models.ResourceRigType {
			if conflicts(committed, b.StartTime, b.EndTime) {
				continue
			}
			committed = append(committed, interval{start: b.StartTime, end: b.EndTime})
		}

		resolved = append(resolved, b)
	}

	return resolved
}

func conflicts(committed []interval, start, end time.Time) bool {
	for _, iv := range committed {
		if iv.overlaps(start, end) {
			return true
		}
	}

	return false
}

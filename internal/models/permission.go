package models

import "time"

type Permission struct {
	ID            int64        `json:"permission_id"`
	UserClass     string       `json:"user_class"`
	ResourceClass ResourceType `json:"resource_class"`
	ResourceName  string       `json:"resource_name"`
	Start         time.Time    `json:"start"`
	Expiry        time.Time    `json:"expiry"`
	CanBook       bool         `json:"can_book"`
	MaxBookings   int          `json:"max_bookings"`
	// TimeHorizon is how far ahead of now, in seconds, the earliest bookable slot lies.
	TimeHorizon int  `json:"time_horizon"`
	IsLocked    bool `json:"is_locked"`
}

package models

import "time"

// ResourceType is the class of resource a booking or permission refers to.
type ResourceType string

const (
	ResourceRig        ResourceType = "RIG"
	ResourceRigType    ResourceType = "TYPE"
	ResourceCapability ResourceType = "CAPABILITY"
)

type Booking struct {
	ID           int64        `json:"id"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	ResourceType ResourceType `json:"type"`
	RigID        *int64       `json:"-"`
	RigTypeID    *int64       `json:"-"`
	PermissionID int64        `json:"-"`
	User         User         `json:"user"`
	Active       bool         `json:"-"`
}

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Persona   string `json:"persona"`
	Email     string `json:"email"`
}

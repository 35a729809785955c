package models

import (
	"fmt"
	"strings"
)

type RigType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Rig struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Type RigType `json:"type"`
}

// Identity is a user as known to the external identity service.
type Identity struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

func (i Identity) String() string {
	return i.Namespace + ":" + i.Name
}

// ParseIdentity parses the "namespace:name" form.
func ParseIdentity(s string) (Identity, error) {
	ns, name, ok := strings.Cut(s, ":")
	if !ok || ns == "" || name == "" {
		return Identity{}, fmt.Errorf("invalid identity %q", s)
	}

	return Identity{Namespace: ns, Name: name}, nil
}

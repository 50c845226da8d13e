package workflow

import (
	"github.com/google/uuid"

	"campusreach_backend/internals/constants"
)

// Actor is the authenticated caller as seen by the report services: the
// role plus at most one of a zone or fellowship assignment.
type Actor struct {
	ID           uuid.UUID
	Role         string
	FellowshipID *uuid.UUID
	ZoneID       *uuid.UUID
}

func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

func (a Actor) IsZoneCoordinator() bool {
	return a.Role == constants.RoleZoneCoordinator
}

// HasRole checks exact membership in a capability slice.
func (a Actor) HasRole(allowed []string) bool {
	for _, r := range allowed {
		if a.Role == r {
			return true
		}
	}
	return false
}

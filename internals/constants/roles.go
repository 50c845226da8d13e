package constants

import "fmt"

// Closed set of roles. Authorization everywhere checks exact membership in
// one of the grouped slices below, never substring matching on the role
// string.
const (
	RoleAdmin               = "admin"
	RoleZoneCoordinator     = "zone_coordinator"
	RoleFellowshipPresident = "fellowship_president"
	RoleMember              = "member"
)

// Error message templates for role gates
const (
	ErrOnlyAdminsCanAccess       = "❌ Only admins may access %s."
	ErrOnlyCoordinatorsCanAccess = "❌ Only zone coordinators or admins may access %s."
	ErrOnlyLeadersCanAccess      = "❌ Only fellowship presidents, zone coordinators or admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleZoneCoordinator,
		RoleFellowshipPresident,
		RoleMember,
	}

	// Elevated: unrestricted read/write on every scope
	ElevatedRoles = []string{
		RoleAdmin,
	}

	// May decide (approve/reject) reports: admins anywhere, coordinators
	// only inside their own zone (the zone check lives in the workflow)
	ApproverRoles = []string{
		RoleAdmin,
		RoleZoneCoordinator,
	}

	// May submit fellowship-scoped reports (financial, activity,
	// fellowship outreach)
	FellowshipSubmitterRoles = []string{
		RoleAdmin,
		RoleFellowshipPresident,
	}

	// May submit personal outreach reports
	OutreachSubmitterRoles = []string{
		RoleAdmin,
		RoleFellowshipPresident,
		RoleMember,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CoordinatorAndAbove = []string{
		RoleAdmin,
		RoleZoneCoordinator,
	}
)

// IsValidRole reports whether r belongs to the closed role set.
func IsValidRole(r string) bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

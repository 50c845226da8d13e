// internals/features/reports/workflow/workflow.go
//
// The approval workflow shared by all four report families: who may submit
// for which scope, who may decide, who sees what. Every family service goes
// through these functions so the authorization matrix lives in one place.
package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/constants"
)

// Directory is the read-only organizational lookup the workflow needs:
// which zone a fellowship belongs to, and which fellowships a zone holds.
type Directory interface {
	ZoneIDOfFellowship(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error)
	FellowshipIDsInZone(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error)
}

/* =======================================================
   SUBMISSION
   ======================================================= */

// ResolveFellowshipScope determines which fellowship a fellowship-scoped
// report belongs to. Admins may submit for any fellowship (requested is then
// required); everyone else submits only for their own assignment, and a
// requested id that disagrees with it is refused.
func ResolveFellowshipScope(actor Actor, allowedRoles []string, requested *uuid.UUID) (uuid.UUID, error) {
	if !actor.HasRole(allowedRoles) {
		return uuid.Nil, apperr.Authorization("")
	}
	if actor.IsAdmin() {
		if requested == nil {
			return uuid.Nil, apperr.Validation("fellowship_id is required when submitting as admin")
		}
		return *requested, nil
	}
	if actor.FellowshipID == nil {
		return uuid.Nil, apperr.Authorization("")
	}
	if requested != nil && *requested != *actor.FellowshipID {
		return uuid.Nil, apperr.Authorization("")
	}
	return *actor.FellowshipID, nil
}

// ResolveMemberScope determines the owning user of a personal outreach
// report. Admins may submit on behalf of any member; everyone else only for
// themselves.
func ResolveMemberScope(actor Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if !actor.HasRole(constants.OutreachSubmitterRoles) {
		return uuid.Nil, apperr.Authorization("")
	}
	if actor.IsAdmin() {
		if requested != nil {
			return *requested, nil
		}
		return actor.ID, nil
	}
	if requested != nil && *requested != actor.ID {
		return uuid.Nil, apperr.Authorization("")
	}
	return actor.ID, nil
}

/* =======================================================
   UPDATE / DELETE
   ======================================================= */

// EnsureCanModify guards report updates: admins may edit in any status
// (source behavior, kept as-is); the original submitter only while the
// report is still pending.
func EnsureCanModify(actor Actor, submittedBy uuid.UUID, status string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID != submittedBy {
		return apperr.Authorization("")
	}
	if status != StatusPending {
		return apperr.Conflict("report has already been decided and can no longer be edited")
	}
	return nil
}

// EnsureCanDelete: admins always; the submitter only while pending.
func EnsureCanDelete(actor Actor, submittedBy uuid.UUID, status string) error {
	return EnsureCanModify(actor, submittedBy, status)
}

/* =======================================================
   DECISION
   ======================================================= */

// Decidable is the slice of a report the decision transition touches.
type Decidable interface {
	CurrentStatus() string
	SetDecision(decision string, reason *string, decidedBy uuid.UUID, at time.Time)
}

// EnsureCanDecide checks the approval capability against the report's owning
// fellowship: admins unconditionally, zone coordinators only for fellowships
// inside their assigned zone.
func EnsureCanDecide(ctx context.Context, actor Actor, dir Directory, fellowshipID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if !actor.IsZoneCoordinator() {
		return apperr.Authorization("")
	}
	if actor.ZoneID == nil {
		return apperr.Authorization("")
	}
	zoneID, err := dir.ZoneIDOfFellowship(ctx, fellowshipID)
	if err != nil {
		return err
	}
	if zoneID != *actor.ZoneID {
		return apperr.Authorization("")
	}
	return nil
}

// ApplyDecision performs the single pending → approved|rejected transition.
// Rejection requires a reason; approval clears any previously stored reason.
func ApplyDecision(r Decidable, decision string, reason *string, actor Actor, now time.Time) error {
	if !IsDecision(decision) {
		return apperr.Validationf("decision must be %q or %q", StatusApproved, StatusRejected)
	}
	if r.CurrentStatus() != StatusPending {
		return apperr.Conflict("report has already been decided")
	}
	if decision == StatusRejected {
		if reason == nil || *reason == "" {
			return apperr.Validation("rejection_reason is required when rejecting a report")
		}
		r.SetDecision(StatusRejected, reason, actor.ID, now)
		return nil
	}
	r.SetDecision(StatusApproved, nil, actor.ID, now)
	return nil
}

/* =======================================================
   VISIBILITY
   ======================================================= */

// ScopeFilter is the visibility restriction derived from the actor, applied
// uniformly by every family's list/get queries.
type ScopeFilter struct {
	// All grants unrestricted visibility (elevated roles).
	All bool
	// FellowshipIDs restricts to reports owned by these fellowships
	// (zone coordinators).
	FellowshipIDs []uuid.UUID
	// SubmittedBy restricts to reports the actor personally submitted
	// (fellowship presidents and members).
	SubmittedBy *uuid.UUID
}

// Allows reports whether a single report (owning fellowship + submitter) is
// visible under the filter. Used by get-by-id.
func (f ScopeFilter) Allows(fellowshipID *uuid.UUID, submittedBy uuid.UUID) bool {
	if f.All {
		return true
	}
	if f.SubmittedBy != nil {
		return submittedBy == *f.SubmittedBy
	}
	if fellowshipID == nil {
		return false
	}
	for _, id := range f.FellowshipIDs {
		if id == *fellowshipID {
			return true
		}
	}
	return false
}

// ResolveVisibility maps the actor's role and assignment to a ScopeFilter.
// Roles with a missing assignment are refused rather than silently seeing
// nothing.
func ResolveVisibility(ctx context.Context, actor Actor, dir Directory) (ScopeFilter, error) {
	switch actor.Role {
	case constants.RoleAdmin:
		return ScopeFilter{All: true}, nil

	case constants.RoleZoneCoordinator:
		if actor.ZoneID == nil {
			return ScopeFilter{}, apperr.Authorization("")
		}
		ids, err := dir.FellowshipIDsInZone(ctx, *actor.ZoneID)
		if err != nil {
			return ScopeFilter{}, err
		}
		return ScopeFilter{FellowshipIDs: ids}, nil

	case constants.RoleFellowshipPresident, constants.RoleMember:
		if actor.FellowshipID == nil {
			return ScopeFilter{}, apperr.Authorization("")
		}
		id := actor.ID
		return ScopeFilter{SubmittedBy: &id}, nil

	default:
		return ScopeFilter{}, apperr.Authorization("")
	}
}

/* =======================================================
   LIST FILTERS
   ======================================================= */

// Filters are the optional list-query filters shared by every family.
type Filters struct {
	Month   int // 1..12, 0 = not filtered
	Year    int // 0 = not filtered
	Status  string
	ScopeID *uuid.UUID
}

func (f Filters) Validate() error {
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return apperr.Validation("month must be between 1 and 12")
	}
	if f.Month != 0 && f.Year == 0 {
		return apperr.Validation("year is required when month is given")
	}
	if f.Status != "" && !IsStatus(f.Status) {
		return apperr.Validationf("status must be one of %q, %q, %q", StatusPending, StatusApproved, StatusRejected)
	}
	return nil
}

// NormalizeMonth collapses any timestamp to the first day of its month at
// midnight UTC, the stored dedup key for every report family.
func NormalizeMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// Package authz holds the pure decision logic of the client: the closed role
// and status enums, the screen-context gating table, and the navigation
// guards. Nothing in this package performs I/O; every decision is recomputed
// from the inputs on each call.
package authz

// Role describes a user role in the job board auth model.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"

	// RoleUnknown covers missing or unrecognized role strings. Unknown roles
	// keep full navigation but are never offered a mutating action.
	RoleUnknown Role = "unknown"
)

// ParseRole maps a server role string onto the closed enum. Known roles
// round-trip exactly; anything else becomes RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Valid returns true when the role is one of the three server-defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// ApplicationStatus is the lifecycle state of a vacancy application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus maps a server status string onto the closed enum.
// The bool result is false for unrecognized values.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return ApplicationStatus(s), true
	default:
		return "", false
	}
}

// ApplicationStatuses lists every status an employer may set on an application.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}
}

func (s ApplicationStatus) String() string {
	return string(s)
}

// InterviewStatus is the lifecycle state of a scheduled interview.
type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

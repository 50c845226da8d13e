package workflow

// Report lifecycle: pending → approved | rejected. Approved and rejected are
// terminal; the only way past a decision is a brand-new report.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// IsDecision reports whether s is a valid terminal decision.
func IsDecision(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// IsStatus reports whether s is any known report status.
func IsStatus(s string) bool {
	return s == StatusPending || IsDecision(s)
}

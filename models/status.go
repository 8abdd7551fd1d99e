package models

// Report status values, ordered by the typical lifecycle. The order is
// informational only: any transition between members is allowed, the
// column constraint just rejects values outside this set.
const (
	StatusSubmitted  = "SUBMITTED"
	StatusTriaged    = "TRIAGED"
	StatusInProgress = "IN_PROGRESS"
	StatusOnHold     = "ON_HOLD"
	StatusResolved   = "RESOLVED"
	StatusClosed     = "CLOSED"
	StatusMerged     = "MERGED"
)

// ReportStatuses is the full enumeration, served by GET /statuses and used
// to build the 422 message when the store rejects a value.
var ReportStatuses = []string{
	StatusSubmitted,
	StatusTriaged,
	StatusInProgress,
	StatusOnHold,
	StatusResolved,
	StatusClosed,
	StatusMerged,
}

// Package quota enforces per-user daily caps on rate-limited outreach
// actions (recruiter searches and email inferences).
//
// Dates are compared as UTC YYYY-MM-DD strings: any mismatch between
// the stored reset date and "today" means a new day has started and
// the effective count is zero. Both counters of a user reset together
// on rollover, not only the one being checked.
package quota

import "time"

// Kind selects which counter a consume call charges.
type Kind string

const (
	KindSearches Kind = "searches"
	KindEmails   Kind = "emails"
)

// Result is the outcome of a consume decision.
type Result struct {
	Allowed   bool   `json:"allowed"`
	NewCount  int    `json:"newCount"`
	NewDate   string `json:"newDate"`
	Remaining int    `json:"remaining"`
}

// Today returns the current UTC date in YYYY-MM-DD form.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Decide applies the cap to a stored counter value.
//
// If storedDate differs from today the effective count is zero
// (logical day rollover). At or above the cap the call is denied and
// nothing changes; otherwise it is allowed and the count advances.
func Decide(storedCount int, storedDate, today string, maxPerDay int) Result {
	effective := storedCount
	if storedDate != today {
		effective = 0
	}

	if effective >= maxPerDay {
		return Result{
			Allowed:   false,
			NewCount:  effective,
			NewDate:   storedDate,
			Remaining: 0,
		}
	}

	return Result{
		Allowed:   true,
		NewCount:  effective + 1,
		NewDate:   today,
		Remaining: maxPerDay - effective - 1,
	}
}

// FailOpen is the result reported when the stored state cannot be
// read: the user is allowed with full remaining quota. Blocking real
// users on a transient storage error is worse than occasionally
// under-counting, so this is deliberate policy, not a fallback bug.
func FailOpen(today string, maxPerDay int) Result {
	return Result{
		Allowed:   true,
		NewCount:  maxPerDay,
		NewDate:   today,
		Remaining: maxPerDay,
	}
}

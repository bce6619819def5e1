package quota_test

import (
	"testing"

	"scope/swipe-service/internal/quota"
)

const (
	today     = "2026-09-01"
	yesterday = "2026-08-31"
)

// ── Decide — same-day counting ────────────────────────────────────────────

func TestDecide_AllowsUnderCap(t *testing.T) {
	res := quota.Decide(0, today, today, 3)
	if !res.Allowed {
		t.Fatal("first call of the day must be allowed")
	}
	if res.NewCount != 1 || res.NewDate != today || res.Remaining != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDecide_LastUnitThenDeny(t *testing.T) {
	// storedCount=2, cap=3: one more allowed, then denied.
	first := quota.Decide(2, today, today, 3)
	if !first.Allowed || first.NewCount != 3 {
		t.Fatalf("call at count 2 of 3 must allow with newCount=3, got %+v", first)
	}

	second := quota.Decide(first.NewCount, first.NewDate, today, 3)
	if second.Allowed {
		t.Fatal("call at cap must be denied")
	}
	if second.NewCount != 3 {
		t.Errorf("denial must not change the count, got %d", second.NewCount)
	}
	if second.NewDate != today {
		t.Errorf("denial must not change the date, got %q", second.NewDate)
	}
}

func TestDecide_DenyAboveCap(t *testing.T) {
	res := quota.Decide(5, today, today, 3)
	if res.Allowed {
		t.Fatal("count above cap must be denied")
	}
	if res.NewCount != 5 {
		t.Errorf("denial must leave the stored count untouched, got %d", res.NewCount)
	}
}

// ── Decide — day rollover ─────────────────────────────────────────────────

func TestDecide_RolloverResetsCount(t *testing.T) {
	// At cap yesterday: a new day resets the effective count to 0
	// before incrementing.
	res := quota.Decide(3, yesterday, today, 3)
	if !res.Allowed {
		t.Fatal("rollover must allow the request")
	}
	if res.NewCount != 1 {
		t.Errorf("rollover newCount = %d, want 1", res.NewCount)
	}
	if res.NewDate != today {
		t.Errorf("rollover newDate = %q, want %q", res.NewDate, today)
	}
}

func TestDecide_DateComparisonIsPlainStringInequality(t *testing.T) {
	// Any mismatch counts as a new day, even a "future" stored date.
	res := quota.Decide(3, "2026-09-02", today, 3)
	if !res.Allowed || res.NewCount != 1 {
		t.Errorf("mismatched stored date must reset, got %+v", res)
	}
}

// ── FailOpen ──────────────────────────────────────────────────────────────

func TestFailOpen_FullQuota(t *testing.T) {
	res := quota.FailOpen(today, 3)
	if !res.Allowed {
		t.Fatal("fail-open must allow")
	}
	if res.Remaining != 3 {
		t.Errorf("fail-open remaining = %d, want full quota 3", res.Remaining)
	}
	if res.NewDate != today {
		t.Errorf("fail-open newDate = %q, want %q", res.NewDate, today)
	}
}

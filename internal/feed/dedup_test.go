package feed_test

import (
	"testing"

	"scope/swipe-service/internal/feed"
	"scope/swipe-service/internal/model"
)

func listing(source, id string) model.Listing {
	return model.Listing{Source: source, SourceJobID: id}
}

// ── FreshListings — exclusion ─────────────────────────────────────────────

func TestFreshListings_ExcludesSwiped(t *testing.T) {
	primary := []model.Listing{listing("curated", "1")}
	secondary := []model.Listing{listing("jsearch", "2")}
	prior := []feed.Key{{Source: "curated", SourceJobID: "1"}}

	got := feed.FreshListings(primary, secondary, prior)

	if len(got) != 1 {
		t.Fatalf("expected 1 fresh listing, got %d", len(got))
	}
	if got[0].Source != "jsearch" || got[0].SourceJobID != "2" {
		t.Errorf("unexpected survivor: %+v", got[0])
	}
}

func TestFreshListings_ExactPairOnly(t *testing.T) {
	// Same id under a different source must not be excluded.
	primary := []model.Listing{listing("curated", "1"), listing("jsearch", "1")}
	prior := []feed.Key{{Source: "curated", SourceJobID: "1"}}

	got := feed.FreshListings(primary, nil, prior)

	if len(got) != 1 || got[0].Source != "jsearch" {
		t.Fatalf("expected only jsearch:1 to survive, got %+v", got)
	}
}

func TestFreshListings_ColonInComponents(t *testing.T) {
	// (a:b, c) and (a, b:c) are distinct identities even though the old
	// string-key encoding would have collided them at "a:b:c".
	primary := []model.Listing{listing("a:b", "c"), listing("a", "b:c")}
	prior := []feed.Key{{Source: "a:b", SourceJobID: "c"}}

	got := feed.FreshListings(primary, nil, prior)

	if len(got) != 1 || got[0].Source != "a" || got[0].SourceJobID != "b:c" {
		t.Fatalf("colon-bearing identities conflated, got %+v", got)
	}
}

// ── FreshListings — ordering ──────────────────────────────────────────────

func TestFreshListings_OrderPreserved(t *testing.T) {
	primary := []model.Listing{listing("curated", "1"), listing("curated", "2")}
	secondary := []model.Listing{listing("jsearch", "3"), listing("jsearch", "4")}

	got := feed.FreshListings(primary, secondary, nil)

	wantIDs := []string{"1", "2", "3", "4"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d listings, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].SourceJobID != id {
			t.Errorf("position %d: got id %q, want %q", i, got[i].SourceJobID, id)
		}
	}
}

func TestFreshListings_PrimaryPrecedesSecondaryAfterFiltering(t *testing.T) {
	primary := []model.Listing{listing("curated", "1"), listing("curated", "2")}
	secondary := []model.Listing{listing("jsearch", "3")}
	prior := []feed.Key{{Source: "curated", SourceJobID: "1"}}

	got := feed.FreshListings(primary, secondary, prior)

	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].Source != "curated" || got[1].Source != "jsearch" {
		t.Errorf("primary must precede secondary: %+v", got)
	}
}

// ── FreshListings — empty identity ────────────────────────────────────────

func TestFreshListings_EmptySourceJobIDNeverDeduped(t *testing.T) {
	primary := []model.Listing{listing("curated", ""), listing("curated", "")}
	prior := []feed.Key{{Source: "curated", SourceJobID: ""}}

	got := feed.FreshListings(primary, nil, prior)

	if len(got) != 2 {
		t.Fatalf("listings without ids must always be fresh, got %d of 2", len(got))
	}
}

func TestFreshListings_EmptyInputs(t *testing.T) {
	got := feed.FreshListings(nil, nil, nil)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d listings", len(got))
	}
}

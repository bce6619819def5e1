// Package feed assembles the swipe deck: curated and scraped listings
// from Postgres, live aggregator results, deduplicated against the
// caller's swipe history.
package feed

import "scope/swipe-service/internal/model"

// Key identifies a listing across heterogeneous providers. A value
// type with structural equality is used instead of a "source:id"
// string so that a literal ':' inside either component can never make
// two distinct identities collide.
type Key struct {
	Source      string
	SourceJobID string
}

// KeyOf returns the identity key for a listing.
func KeyOf(l model.Listing) Key {
	return Key{Source: l.Source, SourceJobID: l.SourceJobID}
}

// FreshListings returns every listing the user has not swiped yet.
//
// The two collections are concatenated primary-first with each one's
// internal order preserved; no ranking happens here. A listing is
// excluded iff its exact (source, source_job_id) pair appears in
// prior. Listings with an empty SourceJobID carry no usable identity
// and are never dedupable: every occurrence is treated as fresh.
func FreshListings(primary, secondary []model.Listing, prior []Key) []model.Listing {
	seen := make(map[Key]struct{}, len(prior))
	for _, k := range prior {
		seen[k] = struct{}{}
	}

	fresh := make([]model.Listing, 0, len(primary)+len(secondary))
	for _, l := range primary {
		if isFresh(l, seen) {
			fresh = append(fresh, l)
		}
	}
	for _, l := range secondary {
		if isFresh(l, seen) {
			fresh = append(fresh, l)
		}
	}
	return fresh
}

func isFresh(l model.Listing, seen map[Key]struct{}) bool {
	if l.SourceJobID == "" {
		return true
	}
	_, swiped := seen[KeyOf(l)]
	return !swiped
}

package transform

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// indexedCustomer pairs a raw customer with its input position for the
// deterministic dedup tie-break.
type indexedCustomer struct {
	raw types.RawCustomer
	pos int
}

// Customers deduplicates raw customers to one survivor per business id and
// normalizes the survivor. Records without a business id are dropped.
//
// Survivor selection within a business id group: latest created_at wins; a
// missing created_at sorts earliest. Ties are broken by the lexicographically
// greatest raw key, then by the latest input position, so the result is
// deterministic for any input ordering.
func (e *Engine) Customers(raws []types.RawCustomer) []types.CanonicalCustomer {
	groups := make(map[int64][]indexedCustomer)
	for i, raw := range raws {
		if raw.BusinessID == nil {
			continue
		}
		id := *raw.BusinessID
		groups[id] = append(groups[id], indexedCustomer{raw: raw, pos: i})
	}

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]types.CanonicalCustomer, 0, len(ids))
	for _, id := range ids {
		survivor := pickSurvivor(groups[id])
		out = append(out, e.normalizeCustomer(id, survivor))
	}
	return out
}

// pickSurvivor returns the winning record of a duplicate group.
func pickSurvivor(group []indexedCustomer) types.RawCustomer {
	best := group[0]
	for _, cand := range group[1:] {
		if customerLess(best, cand) {
			best = cand
		}
	}
	return best.raw
}

// customerLess reports whether b should survive over a: later created_at,
// then greater key, then later input position.
func customerLess(a, b indexedCustomer) bool {
	at, bt := a.raw.CreatedAt, b.raw.CreatedAt
	switch {
	case at == nil && bt != nil:
		return true
	case at != nil && bt == nil:
		return false
	case at != nil && bt != nil && !at.Equal(*bt):
		return at.Before(*bt)
	}
	ak, bk := derefString(a.raw.Key), derefString(b.raw.Key)
	if ak != bk {
		return ak < bk
	}
	return a.pos < b.pos
}

func (e *Engine) normalizeCustomer(id int64, raw types.RawCustomer) types.CanonicalCustomer {
	return types.CanonicalCustomer{
		BusinessID:    id,
		Key:           strings.TrimSpace(derefString(raw.Key)),
		FirstName:     strings.TrimSpace(derefString(raw.FirstName)),
		LastName:      strings.TrimSpace(derefString(raw.LastName)),
		MaritalStatus: types.Lookup(e.maps.MaritalStatus, raw.MaritalCode),
		Gender:        types.Lookup(e.maps.Gender, raw.GenderCode),
		CreatedAt:     raw.CreatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

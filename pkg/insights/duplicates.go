package insights

import (
	"fmt"
	"sort"
	"strings"
)

const maxDuplicateGroups = 5

// detectDuplicates groups all snapshot transactions by amount, calendar date
// and normalized description, and reports any group with two or more
// members. Groups are keyed and ordered deterministically so the same
// transaction list yields the same result regardless of input order.
func detectDuplicates(snap *Snapshot) []*DuplicateGroup {
	type group struct {
		amount float64
		date   string
		desc   string
		ids    []string
	}

	groups := make(map[string]*group)
	for _, t := range snap.Transactions {
		desc := strings.ToLower(strings.TrimSpace(t.Description))
		date := t.Date.String()
		key := fmt.Sprintf("%.2f|%s|%s", t.Amount, date, desc)

		g, ok := groups[key]
		if !ok {
			g = &group{amount: t.Amount, date: date, desc: desc}
			groups[key] = g
		}
		g.ids = append(g.ids, t.ID)
	}

	keys := make([]string, 0, len(groups))
	for key, g := range groups {
		if len(g.ids) >= 2 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var out []*DuplicateGroup
	for _, key := range keys {
		if len(out) >= maxDuplicateGroups {
			break
		}
		g := groups[key]
		out = append(out, &DuplicateGroup{
			Amount:         g.amount,
			Date:           g.date,
			Description:    g.desc,
			Count:          len(g.ids),
			TransactionIDs: g.ids,
			Reason: fmt.Sprintf("%d transactions of %.2f on %s share the description %q",
				len(g.ids), g.amount, g.date, g.desc),
		})
	}
	return out
}

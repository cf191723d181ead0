package addrindex

import (
	"regexp"
	"strconv"
	"strings"

	"dispatch/internal/domain/entity"
)

var houseRangeRe = regexp.MustCompile(`^(\d*)-(\d*)$`)

// HouseQuery is a parsed house filter: either a prefix or an inclusive range
// over the house's leading integer. Either range bound may be open.
type HouseQuery struct {
	Prefix  string
	IsRange bool
	Start   *int
	End     *int
}

// ParseHouseQuery strips all whitespace from q and recognizes "start-end",
// "-end", "start-" and "-" as ranges. Anything else is a prefix.
func ParseHouseQuery(q string) HouseQuery {
	q = strings.Join(strings.Fields(q), "")

	m := houseRangeRe.FindStringSubmatch(q)
	if m == nil {
		return HouseQuery{Prefix: q}
	}

	start, okStart := parseBound(m[1])
	end, okEnd := parseBound(m[2])
	if !okStart || !okEnd {
		return HouseQuery{Prefix: q}
	}

	return HouseQuery{IsRange: true, Start: start, End: end}
}

func parseBound(s string) (*int, bool) {
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}

	return &n, true
}

// Match reports whether house satisfies the query. An empty prefix matches
// everything. A house with no leading integer fails any range with a bound.
func (q HouseQuery) Match(house string) bool {
	if !q.IsRange {
		return q.Prefix == "" || hasPrefixFold(strings.TrimSpace(house), q.Prefix)
	}
	if q.Start == nil && q.End == nil {
		return true
	}

	n, ok := LeadingInt(house)
	if !ok {
		return false
	}
	if q.Start != nil && n < *q.Start {
		return false
	}
	if q.End != nil && n > *q.End {
		return false
	}

	return true
}

// Filter keeps the subscribers whose composed address matches addressQuery
// under MatchTokens and whose house matches houseQuery. The relative order of
// subscribers is preserved.
func Filter(subscribers []entity.Subscriber, addressQuery, houseQuery string) []entity.Subscriber {
	addressQuery = strings.TrimSpace(addressQuery)
	hq := ParseHouseQuery(houseQuery)

	result := make([]entity.Subscriber, 0)
	for i := range subscribers {
		s := &subscribers[i]
		if addressQuery != "" && !MatchTokens(addressQuery, s.AddressLine()) {
			continue
		}
		if !hq.Match(s.House) {
			continue
		}
		result = append(result, *s)
	}

	return result
}

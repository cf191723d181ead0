package addrindex

import (
	"cmp"
	"strconv"
	"strings"
	"unicode"

	"dispatch/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation used for address ordering.
var DefaultLanguage = language.Russian

// comparator orders addresses field by field: city, district, street, house.
// Case is ignored so that differently typed duplicates of one address stay
// adjacent. A collate.Collator is not safe for concurrent use, so every Build
// gets its own.
type comparator struct {
	coll *collate.Collator
}

func newComparator(tag language.Tag) *comparator {
	return &comparator{coll: collate.New(tag, collate.IgnoreCase)}
}

func (c *comparator) str(a, b string) int {
	return c.coll.CompareString(a, b)
}

// house compares two house values numerically when both start with an integer
// and the integers differ, and falls back to collation otherwise. "5" < "10",
// while "5A" and "5B" are ordered as strings.
func (c *comparator) house(a, b string) int {
	na, okA := LeadingInt(a)
	nb, okB := LeadingInt(b)
	if okA && okB && na != nb {
		return cmp.Compare(na, nb)
	}

	return c.str(a, b)
}

func (c *comparator) address(a, b Address) int {
	if r := c.str(a.City, b.City); r != 0 {
		return r
	}
	if r := c.str(a.District, b.District); r != 0 {
		return r
	}

	return c.str(a.Street, b.Street)
}

func (c *comparator) houseEntry(a, b HouseEntry) int {
	if r := c.address(a.Address, b.Address); r != 0 {
		return r
	}

	return c.house(a.House, b.House)
}

func (c *comparator) subscriber(a, b *entity.Subscriber) int {
	if r := c.str(a.City, b.City); r != 0 {
		return r
	}
	if r := c.str(a.District, b.District); r != 0 {
		return r
	}
	if r := c.str(a.Street, b.Street); r != 0 {
		return r
	}

	return c.house(a.House, b.House)
}

// LeadingInt parses the integer at the start of s, ignoring leading
// whitespace and accepting an optional sign: "12" -> 12, " 5A" -> 5,
// "A5" -> not ok.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

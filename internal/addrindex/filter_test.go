package addrindex

import (
	"testing"

	"dispatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func houseSubscribers(hs ...string) []entity.Subscriber {
	subs := make([]entity.Subscriber, 0, len(hs))
	for i, h := range hs {
		subs = append(subs, sub(string(rune('a'+i)), "Казань", "", "Баумана", h))
	}

	return subs
}

func filteredHouses(subs []entity.Subscriber) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.House)
	}

	return out
}

func TestFilter_House(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		houses []string
		query  string
		want   []string
	}{
		{
			name:   "closed range",
			houses: []string{"3", "5", "7", "10", "11"},
			query:  "5-10",
			want:   []string{"5", "7", "10"},
		},
		{
			name:   "open start",
			houses: []string{"3", "5", "7", "10", "11"},
			query:  "-10",
			want:   []string{"3", "5", "7", "10"},
		},
		{
			name:   "open end",
			houses: []string{"3", "5", "7", "10", "11"},
			query:  "5-",
			want:   []string{"5", "7", "10", "11"},
		},
		{
			name:   "range uses the leading integer",
			houses: []string{"5А", "7/2", "12к1"},
			query:  "5-10",
			want:   []string{"5А", "7/2"},
		},
		{
			name:   "range excludes houses without a number",
			houses: []string{"А", "5", "стр"},
			query:  "1-9",
			want:   []string{"5"},
		},
		{
			name:   "whitespace in a range is ignored",
			houses: []string{"3", "5", "7"},
			query:  " 4 - 6 ",
			want:   []string{"5"},
		},
		{
			name:   "bare hyphen matches everything",
			houses: []string{"А", "5"},
			query:  "-",
			want:   []string{"А", "5"},
		},
		{
			name:   "prefix",
			houses: []string{"5", "5A", "50", "51", "15"},
			query:  "5",
			want:   []string{"5", "5A", "50", "51"},
		},
		{
			name:   "prefix is case-insensitive",
			houses: []string{"5а", "5Б"},
			query:  "5А",
			want:   []string{"5а"},
		},
		{
			name:   "non-range with a hyphen is a prefix",
			houses: []string{"5-1", "5"},
			query:  "5-1а",
			want:   []string{},
		},
		{
			name:   "empty query",
			houses: []string{"1", "2"},
			query:  "",
			want:   []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(houseSubscribers(tt.houses...), "", tt.query)
			assert.Equal(t, tt.want, filteredHouses(got))
		})
	}
}

func TestFilter_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	subs := houseSubscribers("11", "3", "7")

	assert.Equal(t, []string{"11", "7"}, filteredHouses(Filter(subs, "бау", "5-")))
}

func TestParseHouseQuery(t *testing.T) {
	t.Parallel()

	q := ParseHouseQuery("5-10")
	assert.True(t, q.IsRange)
	assert.Equal(t, 5, *q.Start)
	assert.Equal(t, 10, *q.End)

	q = ParseHouseQuery("99999999999999999999-")
	assert.False(t, q.IsRange)
	assert.Equal(t, "99999999999999999999-", q.Prefix)

	q = ParseHouseQuery("12A")
	assert.False(t, q.IsRange)
	assert.Equal(t, "12A", q.Prefix)
}

func TestLeadingInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 5A", 5, true},
		{"-3", -3, true},
		{"A5", 0, false},
		{"", 0, false},
		{"+", 0, false},
	}

	for _, tt := range tests {
		n, ok := LeadingInt(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, n, tt.in)
	}
}

func TestMatchTokens(t *testing.T) {
	t.Parallel()

	assert.True(t, MatchTokens("", "anything"))
	assert.True(t, MatchTokens("  ", "anything"))
	assert.True(t, MatchTokens("ЛЕН 1", "Апастово Ленина 12"))
	assert.False(t, MatchTokens("ена", "Апастово Ленина"))
	assert.False(t, MatchTokens("лен", ""))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "казаньбаумана", Normalize(" Казань, Баумана. "))
	assert.Equal(t, "рностовнадону", Normalize("Р-Ностов-на-Дону"))
}

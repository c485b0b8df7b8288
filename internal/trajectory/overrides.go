package trajectory

import "strings"

// Override pins the trajectory of missions whose names match any pattern.
type Override struct {
	Name       string
	Patterns   []string // lower-case substrings
	AzimuthDeg float64
}

// Matches reports whether any of the normalized names contains a pattern.
func (o Override) Matches(names ...string) bool {
	for _, name := range names {
		if name == "" {
			continue
		}
		for _, p := range o.Patterns {
			if strings.Contains(name, p) {
				return true
			}
		}
	}
	return false
}

// Table is an ordered override list. Entries are tried in order and the
// first match wins, regardless of how specific later entries are.
type Table []Override

// Match returns the first entry matching any of the names. Names are
// normalized before matching.
func (t Table) Match(names ...string) (Override, bool) {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = Normalize(n)
	}
	for _, o := range t {
		if o.Matches(normalized...) {
			return o, true
		}
	}
	return Override{}, false
}

var defaultOverrides = Table{
	{
		Name:       "X-37B space plane",
		Patterns:   []string{"x-37b", "x37b", "otv-", "orbital test vehicle", "ussf-52"},
		AzimuthDeg: 50,
	},
	{
		Name:       "ISS crew and cargo",
		Patterns:   []string{"crew-", "crs-", "cygnus", "axiom", "ax-", "starliner"},
		AzimuthDeg: 45,
	},
	{
		Name:       "Starlink",
		Patterns:   []string{"starlink"},
		AzimuthDeg: 50,
	},
	{
		Name:       "Polar rideshare",
		Patterns:   []string{"transporter-"},
		AzimuthDeg: 175,
	},
}

// DefaultOverrides returns a copy of the built-in override table.
func DefaultOverrides() Table {
	out := make(Table, len(defaultOverrides))
	for i, o := range defaultOverrides {
		o.Patterns = append([]string(nil), o.Patterns...)
		out[i] = o
	}
	return out
}

// Normalize lower-cases a name and collapses runs of whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

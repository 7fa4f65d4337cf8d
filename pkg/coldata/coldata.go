// Package coldata provides the city cost-of-living reference data used by
// the cost-of-living calculator.
package coldata

import (
	"sort"
	"strings"
)

// Indices holds a city's composite cost indices, each relative to a US
// average of 100.
type Indices struct {
	Groceries      float64 `json:"groceries"`
	Housing        float64 `json:"housing"`
	Utilities      float64 `json:"utilities"`
	Transportation float64 `json:"transportation"`
	Overall        float64 `json:"overall"`
}

// City is one cost-of-living entry. Name carries the "City, ST" label.
type City struct {
	Name    string
	Country string
	Indices Indices
}

// Lookup returns the cost-of-living entry for a "City, ST" label.
func Lookup(name string) (City, bool) {
	city, ok := cityData[name]
	return city, ok
}

// Cities returns all known city labels in sorted order.
func Cities() []string {
	names := make([]string, 0, len(cityData))
	for name := range cityData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StateCode parses the two-letter state code out of a "City, ST" label.
// Returns "" when the label does not carry one.
func StateCode(label string) string {
	idx := strings.LastIndex(label, ", ")
	if idx == -1 {
		return ""
	}
	code := strings.TrimSpace(label[idx+2:])
	if len(code) != 2 {
		return ""
	}
	return strings.ToUpper(code)
}

// Package balance counts raw open/close tag occurrences for a fixed
// set of tag families and reports whether they match.
//
// This is a diagnostic heuristic, not a parser: counts are plain
// substring occurrences, so tag names appearing inside attribute
// values or text content are counted too. The report never feeds back
// into the transformation pipeline and never changes output content.
package balance

import "strings"

// Family identifies one counted tag family.
type Family struct {
	// Tag is the element name ("div", "a", "svg", "button").
	Tag string

	// openMarker and closeMarker are the exact substrings counted.
	openMarker  string
	closeMarker string
}

// families are the tag families the original repair tool validates.
// "<a " keeps its trailing space so "<abbr" and friends don't count.
//
//nolint:gochecknoglobals // Read-only lookup table.
var families = []Family{
	{Tag: "div", openMarker: "<div", closeMarker: "</div>"},
	{Tag: "a", openMarker: "<a ", closeMarker: "</a>"},
	{Tag: "svg", openMarker: "<svg", closeMarker: "</svg>"},
	{Tag: "button", openMarker: "<button", closeMarker: "</button>"},
}

// FamilyCount holds the open/close totals for one tag family.
type FamilyCount struct {
	Tag   string `json:"tag"`
	Open  int    `json:"open"`
	Close int    `json:"close"`
}

// Balanced reports whether open and close counts match.
func (c FamilyCount) Balanced() bool {
	return c.Open == c.Close
}

// Report is the balance diagnostic for one document.
type Report struct {
	Families []FamilyCount `json:"families"`
}

// Balanced reports whether every family has matching counts.
func (r Report) Balanced() bool {
	for _, c := range r.Families {
		if !c.Balanced() {
			return false
		}
	}
	return true
}

// Mismatched returns the families whose counts differ.
func (r Report) Mismatched() []FamilyCount {
	var out []FamilyCount
	for _, c := range r.Families {
		if !c.Balanced() {
			out = append(out, c)
		}
	}
	return out
}

// Count builds the balance report for content.
func Count(content string) Report {
	report := Report{Families: make([]FamilyCount, 0, len(families))}
	for _, f := range families {
		report.Families = append(report.Families, FamilyCount{
			Tag:   f.Tag,
			Open:  strings.Count(content, f.openMarker),
			Close: strings.Count(content, f.closeMarker),
		})
	}
	return report
}

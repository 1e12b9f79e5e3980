// Package textgradient splits titles written as "plain (highlighted) plain"
// into segments so the highlighted words can be styled independently.
package textgradient

import "regexp"

var marker = regexp.MustCompile(`\(([^)]+)\)`)

// Segment is one run of text, highlighted when it was wrapped in parentheses.
type Segment struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// Split breaks text on (word) markers. Empty plain runs between markers are
// dropped. Text without markers yields one plain segment; empty text yields none.
func Split(text string) []Segment {
	if text == "" {
		return nil
	}

	matches := marker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Text: text[last:m[0]]})
		}
		segments = append(segments, Segment{Text: text[m[2]:m[3]], Highlighted: true})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// Plain returns text with the markers removed.
func Plain(text string) string {
	return marker.ReplaceAllString(text, "$1")
}

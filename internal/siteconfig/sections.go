package siteconfig

import (
	"fmt"
	"sort"

	apperrors "psisite/internal/errors"
	"psisite/internal/ordering"
)

// Section is one top-level block of the public page.
type Section struct {
	Key     string  `json:"key"`
	Visible bool    `json:"visible"`
	Order   float64 `json:"order"`
}

var defaultSections = []Section{
	{Key: "hero", Visible: true, Order: 0},
	{Key: "about", Visible: true, Order: 1},
	{Key: "services", Visible: true, Order: 2},
	{Key: "testimonials", Visible: true, Order: 3},
	{Key: "photo-carousel", Visible: true, Order: 3.5},
	{Key: "faq", Visible: true, Order: 4},
	{Key: "contact", Visible: true, Order: 5},
	{Key: "inspirational", Visible: true, Order: 6},
}

// DefaultSections returns the built-in section list in default order.
func DefaultSections() []Section {
	out := make([]Section, len(defaultSections))
	copy(out, defaultSections)
	return out
}

// IsSection reports whether key names a known section.
func IsSection(key string) bool {
	return defaultIndex(key) >= 0
}

func defaultIndex(key string) int {
	return ordering.IndexOf(defaultSections, func(s Section) bool { return s.Key == key })
}

// Layout merges saved visibility and order onto the defaults and sorts the
// result. Sections never saved stay visible at their default order. Equal
// order values keep their default relative position.
func Layout(visibility SectionsVisibility, order SectionsOrder) []Section {
	layout := DefaultSections()
	for i := range layout {
		if v, ok := visibility[layout[i].Key]; ok {
			layout[i].Visible = v
		}
		if o, ok := order[layout[i].Key]; ok {
			layout[i].Order = o
		}
	}
	sort.SliceStable(layout, func(i, j int) bool {
		return layout[i].Order < layout[j].Order
	})
	return layout
}

// Visible filters layout down to rendered sections, preserving order.
func Visible(layout []Section) []Section {
	out := make([]Section, 0, len(layout))
	for _, s := range layout {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

// MoveSection moves key to position within layout and returns a fresh
// {key: index} map covering every section.
func MoveSection(layout []Section, key string, position int) (SectionsOrder, error) {
	from := ordering.IndexOf(layout, func(s Section) bool { return s.Key == key })
	if from < 0 {
		return nil, fmt.Errorf("section %q: %w", key, apperrors.ErrUnknownSection)
	}

	moved := ordering.Move(layout, from, position)
	out := make(SectionsOrder, len(moved))
	for i, s := range moved {
		out[s.Key] = float64(i)
	}
	return out, nil
}

// WithVisibility returns a copy of visibility with key set to visible.
func WithVisibility(visibility SectionsVisibility, key string, visible bool) (SectionsVisibility, error) {
	if !IsSection(key) {
		return nil, fmt.Errorf("section %q: %w", key, apperrors.ErrUnknownSection)
	}
	out := make(SectionsVisibility, len(visibility)+1)
	for k, v := range visibility {
		out[k] = v
	}
	out[key] = visible
	return out, nil
}

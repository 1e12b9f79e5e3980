package siteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "psisite/internal/errors"
)

func keysOf(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Key
	}
	return out
}

func TestLayout_Defaults(t *testing.T) {
	layout := Layout(nil, nil)

	assert.Equal(t, []string{"hero", "about", "services", "testimonials", "photo-carousel", "faq", "contact", "inspirational"}, keysOf(layout))
	for _, s := range layout {
		assert.True(t, s.Visible, s.Key)
	}
}

func TestLayout_MergesSavedValues(t *testing.T) {
	layout := Layout(
		SectionsVisibility{"faq": false},
		SectionsOrder{"contact": 0.5, "hero": 9},
	)

	assert.Equal(t, []string{"contact", "about", "services", "testimonials", "photo-carousel", "faq", "inspirational", "hero"}, keysOf(layout))
	assert.Equal(t, []string{"contact", "about", "services", "testimonials", "photo-carousel", "inspirational", "hero"}, keysOf(Visible(layout)))
}

func TestLayout_TiesKeepDefaultPosition(t *testing.T) {
	layout := Layout(nil, SectionsOrder{"inspirational": 0})
	assert.Equal(t, []string{"hero", "inspirational", "about"}, keysOf(layout)[:3])
}

func TestMoveSection_RenumbersEverySection(t *testing.T) {
	order, err := MoveSection(Layout(nil, nil), "faq", 0)
	require.NoError(t, err)

	assert.Len(t, order, 8)
	assert.Equal(t, 0.0, order["faq"])
	assert.Equal(t, 1.0, order["hero"])
	assert.Equal(t, 5.0, order["photo-carousel"])
	assert.Equal(t, 7.0, order["inspirational"])

	seen := map[float64]bool{}
	for _, v := range order {
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestMoveSection_Unknown(t *testing.T) {
	_, err := MoveSection(Layout(nil, nil), "blog", 1)
	assert.ErrorIs(t, err, apperrors.ErrUnknownSection)
}

func TestWithVisibility_KeepsOtherKeys(t *testing.T) {
	current := SectionsVisibility{"hero": true, "about": false}

	next, err := WithVisibility(current, "faq", false)
	require.NoError(t, err)

	assert.Equal(t, SectionsVisibility{"hero": true, "about": false, "faq": false}, next)
	assert.NotContains(t, current, "faq")

	_, err = WithVisibility(current, "blog", true)
	assert.ErrorIs(t, err, apperrors.ErrUnknownSection)
}

func TestMoveCredential(t *testing.T) {
	creds := AboutCredentials{
		{ID: 1, Title: "CRP", Order: 2},
		{ID: 2, Title: "TCC", Order: 0},
		{ID: 3, Title: "Graduação", Order: 1},
	}

	moved, err := MoveCredential(creds, 1, 0)
	require.NoError(t, err)

	require.Len(t, moved, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{moved[0].ID, moved[1].ID, moved[2].ID})
	for i, c := range moved {
		assert.Equal(t, i, c.Order)
	}

	_, err = MoveCredential(creds, 99, 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAboutCredentials_Active(t *testing.T) {
	creds := AboutCredentials{
		{ID: 1, Order: 1, IsActive: true},
		{ID: 2, Order: 0, IsActive: false},
		{ID: 3, Order: 0, IsActive: true},
	}
	active := creds.Active()
	require.Len(t, active, 2)
	assert.Equal(t, 3, active[0].ID)
	assert.Equal(t, 1, active[1].ID)
}

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	renderer := NewRenderer()

	variables := map[string]string{
		"restaurant_name": "Zingerman's",
		"special":         "reuben sandwich",
		"address":         "422 Detroit St",
	}

	got := renderer.Render(
		"Hi! {restaurant_name} here. We noticed you're nearby! Today's special: {special}. Visit us at {address}!",
		variables,
	)

	assert.Equal(t,
		"Hi! Zingerman's here. We noticed you're nearby! Today's special: reuben sandwich. Visit us at 422 Detroit St!",
		got,
	)
}

func TestRender_UnknownPlaceholderPassesThrough(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.Render("Deal of the day: {specail}", map[string]string{"special": "tacos"})
	assert.Equal(t, "Deal of the day: {specail}", got)
}

func TestRender_NoPlaceholders(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.Render("Come on in!", map[string]string{"special": "tacos"})
	assert.Equal(t, "Come on in!", got)
}

func TestRender_EmptyTemplate(t *testing.T) {
	renderer := NewRenderer()

	assert.Equal(t, "", renderer.Render("", nil))
}

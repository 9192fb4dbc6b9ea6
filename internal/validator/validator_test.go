package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mediaForm struct {
	URL string `json:"videoUrl" validate:"required,media_url"`
}

type layoutForm struct {
	Layout string `json:"layout" validate:"required,oneof=BUBBLE CAROUSEL GRID"`
}

func TestValidate_MediaURL(t *testing.T) {
	v := New()

	valid := []string{
		"https://cdn.example.com/uploads/123-clip.mp4",
		"http://videos.example.org/movie.MOV",
		"https://cdn.example.com/stream/master.m3u8?token=abc",
		"https://cdn.example.com/a.webm",
	}
	for _, u := range valid {
		assert.NoError(t, v.Validate(&mediaForm{URL: u}), u)
	}

	invalid := []string{
		"",
		"not a url",
		"ftp://cdn.example.com/clip.mp4",
		"https://cdn.example.com/page.html",
		"https://cdn.example.com/",
		"/uploads/clip.mp4", // relative
	}
	for _, u := range invalid {
		assert.Error(t, v.Validate(&mediaForm{URL: u}), u)
	}
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&mediaForm{URL: ""})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Clients see the json name they sent, not the Go field name
	_, found := verr.Errors["videoUrl"]
	assert.True(t, found)
	_, found = verr.Errors["URL"]
	assert.False(t, found)
}

func TestValidate_Oneof(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&layoutForm{Layout: "CAROUSEL"}))

	err := v.Validate(&layoutForm{Layout: "carousel"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors["layout"], "BUBBLE, CAROUSEL, GRID")
}

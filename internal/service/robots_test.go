package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobotsBody(t *testing.T) {
	assert.Equal(t, "User-agent: *\nAllow: /\n\nSitemap: https://example.com/sitemap.xml", RobotsBody(true, "https://example.com"))
	assert.Equal(t, "User-agent: *\nDisallow: /", RobotsBody(false, "https://example.com"))
}

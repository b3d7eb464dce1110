package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieMaxAge(t *testing.T) {
	prefs := NewPreferenceService()

	t.Run("remember keeps cookies for thirty days", func(t *testing.T) {
		assert.Equal(t, 30*24*60*60, prefs.CookieMaxAge(true))
	})

	t.Run("not remembering expires cookies immediately", func(t *testing.T) {
		assert.Negative(t, prefs.CookieMaxAge(false))
	})
}

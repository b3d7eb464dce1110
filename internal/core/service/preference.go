package service

import "time"

// RememberTTL is how long the browser keeps the handle and seed when the
// visitor ticks "remember me".
const RememberTTL = 30 * 24 * time.Hour

// PreferenceService decides the lifetime of the two client-held preference
// values (handle and seed). It only controls whether the next request's form
// is pre-filled; nothing gates access on these values.
type PreferenceService struct{}

func NewPreferenceService() *PreferenceService {
	return &PreferenceService{}
}

// CookieMaxAge returns the Max-Age in seconds for both preference cookies.
// When remember is false the value is negative, so the browser discards the
// cookies immediately. Cookies are rewritten on every submit either way,
// refreshing the expiry.
func (s *PreferenceService) CookieMaxAge(remember bool) int {
	if remember {
		return int(RememberTTL.Seconds())
	}
	return -1
}

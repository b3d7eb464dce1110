package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yuzu875641/phpbbs/internal/api/dto"
	"github.com/yuzu875641/phpbbs/internal/api/render"
	"github.com/yuzu875641/phpbbs/internal/core/service"
)

const (
	// CookieUsername and CookieSeed are the two soft-session preference
	// cookies. They pre-fill the form on the next visit and grant nothing.
	CookieUsername = "username"
	CookieSeed     = "seed"

	// backgroundHeader marks the fetch() submit path; its absence means the
	// no-JS form fallback.
	backgroundHeader = "X-Requested-With"
	backgroundValue  = "xmlhttprequest"
)

// storeErrorBanner is shown when a store call failed. Details stay in the
// logs; the board itself still renders whatever state was gathered.
const storeErrorBanner = "掲示板の読み書きに失敗しました。しばらくしてからもう一度お試しください。"

type BoardHandler struct {
	board *service.BoardService
	prefs *service.PreferenceService
	log   zerolog.Logger
}

func NewBoardHandler(board *service.BoardService, prefs *service.PreferenceService, logger zerolog.Logger) *BoardHandler {
	return &BoardHandler{
		board: board,
		prefs: prefs,
		log:   logger,
	}
}

// ShowBoard handles GET /: the full page render, pre-filled with whatever
// the preference cookies remember.
func (h *BoardHandler) ShowBoard(c *gin.Context) {
	username, _ := c.Cookie(CookieUsername)
	seed, _ := c.Cookie(CookieSeed)
	remembered := username != ""

	snap, err := h.board.Snapshot(c.Request.Context())
	banner := ""
	if err != nil {
		h.log.Error().Err(err).Msg("snapshot failed")
		banner = storeErrorBanner
	}

	c.HTML(http.StatusOK, render.PageTemplateName, render.NewPageData(snap, username, seed, remembered, banner))
}

// Submit handles POST / in both variants: JSON in and out for the background
// path, form fields and a redirect for the legacy path.
func (h *BoardHandler) Submit(c *gin.Context) {
	if strings.EqualFold(c.GetHeader(backgroundHeader), backgroundValue) {
		h.submitBackground(c)
		return
	}
	h.submitForm(c)
}

func (h *BoardHandler) submitBackground(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body behaves like empty fields: the action becomes a
		// soft no-op and the current board is still returned.
		h.log.Warn().Err(err).Msg("unreadable submit body")
		req = dto.SubmitRequest{}
	}

	snap, err := h.board.Submit(c.Request.Context(), service.SubmitInput{
		Username: req.Username,
		Seed:     req.Seed,
		Message:  req.Message,
	})

	h.setPreferenceCookies(c, req.Username, req.Seed, req.RememberMe)

	resp := dto.BoardResponse{
		Posts:    snap.Posts,
		Topic:    snap.Topic,
		Username: req.Username,
		Seed:     req.Seed,
	}
	if err != nil {
		h.log.Error().Err(err).Str("username", req.Username).Msg("submit failed")
		resp.Error = storeErrorBanner
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BoardHandler) submitForm(c *gin.Context) {
	in := service.SubmitInput{
		Username: c.PostForm("username"),
		Seed:     c.PostForm("seed"),
		Message:  c.PostForm("message"),
	}
	remember := c.PostForm("remember_me") == "on"

	// The redirected GET re-reads the board, so the returned snapshot is
	// dropped here. Failures are logged and the visitor lands back on the
	// page either way.
	if _, err := h.board.Submit(c.Request.Context(), in); err != nil {
		h.log.Error().Err(err).Str("username", in.Username).Msg("form submit failed")
	}

	h.setPreferenceCookies(c, in.Username, in.Seed, remember)
	c.Redirect(http.StatusSeeOther, "/")
}

// setPreferenceCookies rewrites both preference cookies on every submit,
// refreshing their expiry. With remember off the max age is negative, which
// tells the browser to drop them immediately.
func (h *BoardHandler) setPreferenceCookies(c *gin.Context, username, seed string, remember bool) {
	maxAge := h.prefs.CookieMaxAge(remember)
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieUsername, username, maxAge, "/", "", false, true)
	c.SetCookie(CookieSeed, seed, maxAge, "/", "", false, true)
}

// Package render is the boundary that turns a board snapshot into a full
// HTML page. The background submit path bypasses it and returns JSON; this
// page carries the no-JS fallback form as well.
package render

import (
	_ "embed"
	"html/template"
	"time"

	"github.com/yuzu875641/phpbbs/internal/core/service"
)

//go:embed page.html
var pageHTML string

// PageTemplateName is the name the board page is registered under.
const PageTemplateName = "board"

// Post timestamps are stored in UTC and displayed in JST, the board's home
// timezone. A fixed offset avoids a tzdata dependency.
var jst = time.FixedZone("JST", 9*60*60)

// PageTemplate parses the embedded board page. It panics on a malformed
// template, which can only happen at build time.
func PageTemplate() *template.Template {
	return template.Must(template.New(PageTemplateName).Parse(pageHTML))
}

// PostView is one rendered post. Number counts down so the newest post shows
// the highest number, matching the board's original display order.
type PostView struct {
	Number    int
	Username  string
	UserID    string
	Message   string
	CreatedAt string
}

// PageData is everything the board page needs: the snapshot, the remembered
// form values, and an optional error banner.
type PageData struct {
	Topic      string
	Username   string
	Seed       string
	Remembered bool
	Error      string
	Posts      []PostView
}

// NewPageData converts a snapshot plus the remembered handle and seed into
// template data.
func NewPageData(snap *service.Snapshot, username, seed string, remembered bool, banner string) PageData {
	posts := make([]PostView, 0, len(snap.Posts))
	number := len(snap.Posts)
	for _, p := range snap.Posts {
		posts = append(posts, PostView{
			Number:    number,
			Username:  p.Username,
			UserID:    p.UserID,
			Message:   p.Message,
			CreatedAt: p.CreatedAt.In(jst).Format("2006-01-02 15:04:05"),
		})
		number--
	}
	return PageData{
		Topic:      snap.Topic,
		Username:   username,
		Seed:       seed,
		Remembered: remembered,
		Error:      banner,
		Posts:      posts,
	}
}

package domain

// TopicID is the row key of the board's single topic. The board has exactly
// one topic; a future multi-room variant would key deletes and updates by a
// room column instead of widening this constant.
const TopicID int64 = 1

// DefaultTopic is shown until the first /topic command writes a row.
const DefaultTopic = "今の話題"

// Topic is the shared banner text above the post list. The row is only ever
// patched in place, never inserted or deleted by this service.
type Topic struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

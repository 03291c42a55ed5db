package models

// Comment kinds recognized by the extractor.
const (
	CommentKindBlock = "block"
	CommentKindLine  = "line"
)

// CommentToken is a single comment lifted verbatim from a source document,
// delimiters included.
type CommentToken struct {
	Text string `json:"text"`
	Line int    `json:"line"` // 1-based line of the opening delimiter
	Kind string `json:"kind"`
}

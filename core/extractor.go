package core

import (
	"fmt"
	"strings"

	"docguard/models"
)

// MalformedInputError reports input that could not be scanned to completion,
// e.g. a block comment opened but never closed. It is distinct from a FAIL
// verdict: the file could not be parsed at all.
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed input in %s at line %d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
}

// Scanner states. A single pass over the bytes is enough since no supported
// language nests block comments.
const (
	stateNormal = iota
	stateString
	stateLineComment
	stateBlockComment
)

// ExtractComments scans text with the given syntax and returns every comment
// verbatim, delimiters included, in source order. Comment markers inside
// string or rune literals are not recognized. An unterminated block comment
// returns a *MalformedInputError.
func ExtractComments(text string, syn Syntax) ([]models.CommentToken, error) {
	var tokens []models.CommentToken

	state := stateNormal
	line := 1
	start := 0     // byte offset of the current token's opening delimiter
	startLine := 0 // line of the opening delimiter
	var delim byte // active string delimiter

	escape := byte(0)
	if syn.Escape != "" {
		escape = syn.Escape[0]
	}

	i := 0
	n := len(text)
	for i < n {
		c := text[i]
		switch state {
		case stateNormal:
			// Block before line: "/*" and "//" share a first byte in C.
			if syn.HasBlock() && strings.HasPrefix(text[i:], syn.BlockStart) {
				state = stateBlockComment
				start = i
				startLine = line
				i += len(syn.BlockStart)
				continue
			}
			if syn.HasLine() && strings.HasPrefix(text[i:], syn.Line) {
				state = stateLineComment
				start = i
				startLine = line
				i += len(syn.Line)
				continue
			}
			if strings.IndexByte(syn.Strings, c) >= 0 {
				state = stateString
				delim = c
				i++
				continue
			}
			if c == '\n' {
				line++
			}
			i++

		case stateString:
			if escape != 0 && c == escape && i+1 < n {
				if text[i+1] == '\n' {
					line++
				}
				i += 2
				continue
			}
			if c == delim {
				state = stateNormal
				i++
				continue
			}
			if c == '\n' {
				// A raw newline ends the literal; a stray quote must not
				// swallow the rest of the file.
				line++
				state = stateNormal
			}
			i++

		case stateLineComment:
			if c == '\n' {
				tokens = append(tokens, models.CommentToken{
					Text: strings.TrimSuffix(text[start:i], "\r"),
					Line: startLine,
					Kind: models.CommentKindLine,
				})
				state = stateNormal
				line++
				i++
				continue
			}
			i++

		case stateBlockComment:
			if strings.HasPrefix(text[i:], syn.BlockEnd) {
				i += len(syn.BlockEnd)
				tokens = append(tokens, models.CommentToken{
					Text: text[start:i],
					Line: startLine,
					Kind: models.CommentKindBlock,
				})
				state = stateNormal
				continue
			}
			if c == '\n' {
				line++
			}
			i++
		}
	}

	switch state {
	case stateLineComment:
		// A line comment on the last line without a trailing newline.
		tokens = append(tokens, models.CommentToken{
			Text: strings.TrimSuffix(text[start:], "\r"),
			Line: startLine,
			Kind: models.CommentKindLine,
		})
	case stateBlockComment:
		return nil, &MalformedInputError{Line: startLine, Reason: "unterminated block comment"}
	}
	return tokens, nil
}

package subtitle

import (
	"regexp"
	"strings"
)

var (
	reCueBlock    = regexp.MustCompile(`\d+[ \t]*\n\d{2}:\d{2}:\d{2},\d{3}[ \t]*-->[ \t]*\d{2}:\d{2}:\d{2},\d{3}`)
	reNumericLine = regexp.MustCompile(`(?m)^\d+[ \t]*$`)
	reBlankRun    = regexp.MustCompile(`\n{2,}`)
)

// Normalize converts a raw SRT byte blob into plain transcript text.
// Cue indices and timestamp ranges are stripped, remaining numeric-only
// lines removed, and blank-line runs collapsed. Invalid UTF-8 sequences
// are dropped instead of failing. The transform is idempotent.
func Normalize(srt []byte) string {
	text := strings.ToValidUTF8(string(srt), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = reCueBlock.ReplaceAllString(text, "")
	text = reNumericLine.ReplaceAllString(text, "")
	text = reBlankRun.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}

package synth

import "strings"

// MaxChars is the largest text length submitted to the provider in one
// call, kept under the provider's documented input limit with some slack.
const MaxChars = 4000

// truncationMarker is appended whenever input text is cut at MaxChars.
const truncationMarker = "... Content truncated for playback."

var speechReplacer = strings.NewReplacer(
	"```", " code block ",
	"#", "",
	"*", "",
	"-", " ",
)

// CleanForSpeech rewrites markdown punctuation that reads badly when
// spoken: code fences become the words "code block", heading and emphasis
// markers disappear, list dashes become spaces.
func CleanForSpeech(text string) string {
	return speechReplacer.Replace(text)
}

// Truncate caps text at limit characters, appending the truncation marker
// when anything was cut.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + truncationMarker
}

// Prepare runs the full text pipeline: speech cleanup, then truncation to
// limit (or MaxChars when limit is zero).
func Prepare(text string, limit int) string {
	if limit == 0 {
		limit = MaxChars
	}
	return Truncate(CleanForSpeech(text), limit)
}

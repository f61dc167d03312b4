package literate

import (
	"regexp"
	"strings"
)

// Fence is the language tag attached to every emitted code block
const Fence = "haskell"

var birdTrackRegex = regexp.MustCompile(`^> (.*)$`)

// SplitLines splits content into lines. The empty element left behind by a
// trailing newline is dropped, so "" has no lines and "\n" has one.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// IsBirdTrack reports whether line starts with the "> " marker
func IsBirdTrack(line string) bool {
	return birdTrackRegex.MatchString(line)
}

// RemoveBirdTracks strips the marker from a bird-track line.
//
//	RemoveBirdTracks("> Haskell codes") // "Haskell codes"
//
// Lines without the marker come back unchanged.
func RemoveBirdTracks(line string) string {
	if matches := birdTrackRegex.FindStringSubmatch(line); matches != nil {
		return matches[1]
	}
	return line
}

// SlurpBirdTracks consumes the run of bird-track lines starting at start.
// It returns the payloads joined by newlines, each preceded by one, and the
// index of the first line it did not consume.
//
//	SlurpBirdTracks([]string{"> one", "> two", ""}, 0) // "\none\ntwo", 2
func SlurpBirdTracks(lines []string, start int) (string, int) {
	i := start
	var b strings.Builder
	for i < len(lines) && IsBirdTrack(lines[i]) {
		b.WriteString("\n")
		b.WriteString(RemoveBirdTracks(lines[i]))
		i++
	}
	return b.String(), i
}

// Transform converts literate text into Markdown. Each maximal run of
// bird-track lines becomes one fenced block; every other line is copied
// through with a trailing newline.
func Transform(content string) string {
	return TransformLines(SplitLines(content))
}

// TransformLines is Transform over an already split document
func TransformLines(lines []string) string {
	var markdown strings.Builder

	for i := 0; i < len(lines); {
		line := lines[i]

		if !IsBirdTrack(line) {
			markdown.WriteString(line)
			markdown.WriteString("\n")
			i++
			continue
		}

		code := RemoveBirdTracks(line)
		rest, next := SlurpBirdTracks(lines, i+1)
		i = next

		markdown.WriteString("```" + Fence + "\n")
		markdown.WriteString(code)
		markdown.WriteString(rest)
		markdown.WriteString("\n```\n")
	}

	return markdown.String()
}

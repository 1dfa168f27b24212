package store

import (
	"strings"
	"time"
	"unicode"
)

const (
	timestampLayout = "060102_1504"
	maxDerivedLen   = 30
	defaultSlug     = "dokument"
)

// markdownSymbols are stripped when deriving a name from document content.
var markdownSymbols = []string{"#", "*", "_", "`", ">", "-", "|", "[", "]", "(", ")"}

// buildFilename produces the timestamped output name, e.g.
// "260830_1412_Befundbericht.docx". The slug comes from the caller-supplied
// name when present, otherwise from the first non-empty line of the text.
func buildFilename(now time.Time, customName, text string) string {
	slug := slugFromCustomName(customName)
	if slug == "" {
		slug = slugFromText(text)
	}
	if slug == "" {
		slug = defaultSlug
	}
	return now.Format(timestampLayout) + "_" + slug + ".docx"
}

// slugFromCustomName cleans a caller-supplied filename.
func slugFromCustomName(name string) string {
	name = strings.ReplaceAll(name, ".docx", "")
	name = strings.ReplaceAll(name, ".doc", "")
	name = keepFilenameRunes(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.Trim(name, "_")
}

// slugFromText derives a name from the first non-empty line of the content,
// with Markdown syntax removed and length capped.
func slugFromText(text string) string {
	var first string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			first = strings.TrimSpace(line)
			break
		}
	}
	if first == "" {
		return ""
	}

	for _, sym := range markdownSymbols {
		first = strings.ReplaceAll(first, sym, "")
	}
	first = strings.TrimSpace(first)
	first = keepFilenameRunes(first)
	first = strings.ReplaceAll(first, " ", "_")

	if runes := []rune(first); len(runes) > maxDerivedLen {
		first = string(runes[:maxDerivedLen])
	}
	return first
}

// keepFilenameRunes drops everything except letters, digits, spaces,
// hyphens and underscores.
func keepFilenameRunes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package chapters

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/avhrem/novelbind/internal/providers"
)

// Chapter is one fully resolved chapter record on its way into a bound
// volume.
type Chapter struct {
	providers.Chapter
}

// Slug reduces a title to a safe lowercase file-name fragment.
func Slug(s string) string {
	s = strings.ToLower(s)

	repl := []string{
		"•", "_",
		"-", "_",
		"—", "_",
		"–", "_",
		"/", "_",
		"\\", "_",
		".", "_",
		" ", "_",
		"(", "",
		")", "",
	}
	for i := 0; i < len(repl); i += 2 {
		s = strings.ReplaceAll(s, repl[i], repl[i+1])
	}

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}
	s = string(clean)

	reUnderscore := regexp.MustCompile(`_+`)
	s = reUnderscore.ReplaceAllString(s, "_")

	return strings.Trim(s, "_")
}

// DisplayTitle prefers the title extracted from the chapter page over
// the list-derived name.
func (c Chapter) DisplayTitle() string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}

	return strings.TrimSpace(c.Name)
}

// Package titlecase computes title-cased file names using locale-aware
// word casing from golang.org/x/text/cases.
package titlecase

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Caser title-cases a single word.
type Caser interface {
	Title(word string) string
}

// LocaleCaser title-cases words following the rules of a language.
// It is not safe for concurrent use.
type LocaleCaser struct {
	tag   language.Tag
	caser cases.Caser
}

// New returns a LocaleCaser for tag. language.Und gives the root rules.
func New(tag language.Tag) *LocaleCaser {
	return &LocaleCaser{tag: tag, caser: cases.Title(tag)}
}

// Title uppercases the first letter of word and lowercases the rest.
func (l *LocaleCaser) Title(word string) string {
	return l.caser.String(word)
}

// Tag returns the language the caser was built for.
func (l *LocaleCaser) Tag() language.Tag {
	return l.tag
}

// TitleBase splits base on single spaces, title-cases each non-empty token
// and joins the tokens back. Runs of spaces are kept as they were.
func TitleBase(c Caser, base string) string {
	tokens := strings.Split(base, " ")
	for i, tok := range tokens {
		if tok != "" {
			tokens[i] = c.Title(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// TargetName returns name with its base title-cased and its extension
// appended unchanged.
func TargetName(c Caser, name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return TitleBase(c, base) + ext
}

// NeedsRename reports whether the two names differ byte for byte.
func NeedsRename(original, target string) bool {
	return original != target
}

// ParseLanguage accepts BCP 47 tags as well as POSIX locale names such as
// "tr_TR.UTF-8". "C" and "POSIX" map to language.Und.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "", "C", "POSIX":
		return language.Und, nil
	}
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}

// FromEnv picks the casing language from LC_ALL, LC_CTYPE, or LANG, in that
// order. Unparseable values fall through to the next variable.
func FromEnv() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if tag, err := ParseLanguage(v); err == nil {
			return tag
		}
	}
	return language.Und
}

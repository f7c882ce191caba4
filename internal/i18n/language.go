// Package i18n holds the UI label tables and language negotiation.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI and dataset language.
type Language string

// Supported languages.
const (
	English Language = "en"
	Chinese Language = "zh"
)

// DefaultLanguage is used when nothing else decides.
const DefaultLanguage = Chinese

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnsupportedLanguage indicates a language outside the closed set.
const ErrUnsupportedLanguage = constError("unsupported language")

//nolint:gochecknoglobals // Read-only negotiation tables.
var (
	supported = []Language{English, Chinese}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Chinese})
)

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// ParseLanguage accepts exact codes ("en", "zh") as well as BCP 47 tags such
// as "zh-Hans-CN" or "en_GB", mapping them onto the closed set.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(normalizeLocale(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return supported[idx], nil
}

// Negotiate picks the best supported language for a list of locale hints,
// typically $LC_ALL, $LC_MESSAGES and $LANG. Unparseable or unmatched hints
// are skipped; with no usable hint it returns DefaultLanguage.
func Negotiate(hints ...string) Language {
	for _, h := range hints {
		if lang, err := ParseLanguage(h); err == nil {
			return lang
		}
	}
	return DefaultLanguage
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == English {
		return Chinese
	}
	return English
}

// Tag returns the BCP 47 tag of l.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Chinese
}

// Code returns the upper-case code shown on the language toggle.
func (l Language) Code() string {
	return strings.ToUpper(string(l))
}

// normalizeLocale turns POSIX locale names ("zh_CN.UTF-8@pinyin") into
// BCP 47 form ("zh-CN").
func normalizeLocale(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return "und"
	}
	return strings.ReplaceAll(s, "_", "-")
}

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported language code.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"

	// Default is the primary language of the site.
	Default = English
)

// Supported lists every language the table carries, primary first.
var Supported = []Lang{English, French}

// StorageKey is the name the language preference is persisted under.
const StorageKey = "lang"

// Normalize maps any input onto a supported language. Only an exact
// "fr" selects French.
func Normalize(code string) Lang {
	if Lang(code) == French {
		return French
	}
	return English
}

// Other returns the language the toggle switches to.
func (l Lang) Other() Lang {
	if l == English {
		return French
	}
	return English
}

// Label is the upper-case code shown on the toggle control.
func (l Lang) Label() string {
	return strings.ToUpper(string(l))
}

// Resolve picks the starting language: a valid saved preference wins,
// then a browser locale starting with "fr", then the primary language.
func Resolve(saved, browserLocale string) Lang {
	switch Lang(saved) {
	case English, French:
		return Lang(saved)
	}
	if browserLocale == "" {
		browserLocale = string(Default)
	}
	if strings.HasPrefix(strings.ToLower(browserLocale), string(French)) {
		return French
	}
	return English
}

// AcceptLanguage returns the most preferred tag of an Accept-Language
// header, or "" when the header is empty or malformed.
func AcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

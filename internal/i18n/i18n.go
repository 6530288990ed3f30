// Package i18n provides the translated labels of the counter widget.
//
// Catalogs are embedded JSON objects, one per language. Lookups fall back to
// English and then to the key itself, so a missing translation never blanks a label.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"counterapp/internal/jsonutil"
)

// Fallback is the language used when nothing else matches.
const Fallback = "en"

//go:embed locales/*.json
var locales embed.FS

// Catalog resolves label keys for one language.
type Catalog struct {
	Lang     string
	messages map[string]string
	fallback map[string]string
}

// Load returns the catalog for lang ("es", "es_ES.UTF-8" and "es-ES" all resolve to "es").
// Unknown languages load the fallback catalog.
func Load(lang string) (*Catalog, error) {
	base, err := loadMessages(Fallback)
	if err != nil {
		return nil, err
	}
	code := Normalize(lang)
	if code == Fallback || !Supported(code) {
		return &Catalog{Lang: Fallback, messages: base, fallback: base}, nil
	}
	msgs, err := loadMessages(code)
	if err != nil {
		return nil, err
	}
	return &Catalog{Lang: code, messages: msgs, fallback: base}, nil
}

// T returns the label for key.
func (c *Catalog) T(key string) string {
	if c == nil {
		return key
	}
	if s, ok := c.messages[key]; ok && s != "" {
		return s
	}
	if s, ok := c.fallback[key]; ok && s != "" {
		return s
	}
	return key
}

// Languages lists the embedded catalogs, sorted.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out
}

// Supported reports whether a catalog exists for the normalized code.
func Supported(code string) bool {
	for _, l := range Languages() {
		if l == code {
			return true
		}
	}
	return false
}

// Detect picks the language from COUNTERAPP_LOCALE, LC_ALL, LC_MESSAGES or LANG,
// in that order. "C" and "POSIX" count as unset.
func Detect() string {
	for _, env := range []string{"COUNTERAPP_LOCALE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return Normalize(v)
	}
	return Fallback
}

// Normalize reduces a locale string to its lower-case language code.
func Normalize(locale string) string {
	s := strings.TrimSpace(locale)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexAny(s, "_-"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

func loadMessages(code string) (map[string]string, error) {
	data, err := locales.ReadFile(path.Join("locales", code+".json"))
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", code, err)
	}
	return jsonutil.UnmarshalStringMap(data, "parse catalog "+code)
}

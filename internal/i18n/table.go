package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table maps language -> key -> localized text. Values may carry inline
// markup; they are authored with the site and inserted unescaped.
type Table struct {
	entries map[Lang]map[string]string
}

// NewTable builds a table from in-memory entries.
func NewTable(entries map[Lang]map[string]string) *Table {
	return &Table{entries: entries}
}

// Load reads the embedded locale files.
func Load() (*Table, error) {
	return LoadFS(LocaleFS, "locales")
}

// LoadFS reads <dir>/<lang>.yaml for every supported language.
func LoadFS(fsys fs.FS, dir string) (*Table, error) {
	t := &Table{entries: make(map[Lang]map[string]string, len(Supported))}
	for _, lang := range Supported {
		name := path.Join(dir, string(lang)+".yaml")
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", name, err)
		}
		var m map[string]string
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", name, err)
		}
		t.entries[lang] = m
	}
	return t, nil
}

// Lookup returns the text for key. An unknown language falls back to
// the primary one; a missing key is reported as not found, never
// filled in from another language.
func (t *Table) Lookup(lang Lang, key string) (string, bool) {
	m, ok := t.entries[lang]
	if !ok {
		m = t.entries[Default]
	}
	v, ok := m[key]
	return v, ok
}

// Keys returns the sorted keys present for lang.
func (t *Table) Keys(lang Lang) []string {
	keys := make([]string, 0, len(t.entries[lang]))
	for k := range t.entries[lang] {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Missing reports, per language, the keys that some other language
// defines but this one does not.
func (t *Table) Missing() map[Lang][]string {
	all := make(map[string]struct{})
	for _, m := range t.entries {
		for k := range m {
			all[k] = struct{}{}
		}
	}
	out := make(map[Lang][]string)
	for _, lang := range Supported {
		for k := range all {
			if _, ok := t.entries[lang][k]; !ok {
				out[lang] = append(out[lang], k)
			}
		}
		slices.Sort(out[lang])
	}
	for lang, keys := range out {
		if len(keys) == 0 {
			delete(out, lang)
		}
	}
	return out
}

// MissingError formats a Missing report as an error, or nil when the
// table is consistent.
func (t *Table) MissingError() error {
	missing := t.Missing()
	if len(missing) == 0 {
		return nil
	}
	var b strings.Builder
	for _, lang := range Supported {
		if keys, ok := missing[lang]; ok {
			fmt.Fprintf(&b, " %s: %s;", lang, strings.Join(keys, ", "))
		}
	}
	return fmt.Errorf("locale keys missing:%s", strings.TrimSuffix(b.String(), ";"))
}

package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	require.NoError(t, table.MissingError(), "embedded locales must define the same keys")

	title, ok := table.Lookup(French, TitleKey)
	require.True(t, ok)
	require.Equal(t, "Portfolio de Victor", title)

	hero, ok := table.Lookup(English, "hero.title")
	require.True(t, ok)
	require.Contains(t, hero, `<span class="highlight">`)

	require.Equal(t, table.Keys(English), table.Keys(French))
}

func TestLookup(t *testing.T) {
	table := NewTable(map[Lang]map[string]string{
		English: {"a": "A", "b": "B"},
		French:  {"a": "À"},
	})

	v, ok := table.Lookup(French, "a")
	require.True(t, ok)
	require.Equal(t, "À", v)

	// No per-key fallback to English.
	_, ok = table.Lookup(French, "b")
	require.False(t, ok)

	// Unknown language falls back to the primary one.
	v, ok = table.Lookup(Lang("de"), "b")
	require.True(t, ok)
	require.Equal(t, "B", v)
}

func TestMissing(t *testing.T) {
	table := NewTable(map[Lang]map[string]string{
		English: {"a": "A", "b": "B"},
		French:  {"a": "À", "c": "C"},
	})

	require.Equal(t, map[Lang][]string{
		English: {"c"},
		French:  {"b"},
	}, table.Missing())
	require.EqualError(t, table.MissingError(), "locale keys missing: en: c; fr: b")
}

func TestLoadFS(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		fsys := fstest.MapFS{"l/en.yaml": {Data: []byte("a: A\n")}}
		_, err := LoadFS(fsys, "l")
		require.ErrorContains(t, err, "l/fr.yaml")
	})

	t.Run("Bad Yaml", func(t *testing.T) {
		fsys := fstest.MapFS{
			"l/en.yaml": {Data: []byte("a: A\n")},
			"l/fr.yaml": {Data: []byte("- not\n- a map\n")},
		}
		_, err := LoadFS(fsys, "l")
		require.ErrorContains(t, err, "parsing locale l/fr.yaml")
	})
}

package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeLinks struct {
	order  []string
	active map[string]bool
}

func newFakeLinks(ids ...string) *fakeLinks {
	return &fakeLinks{order: ids, active: make(map[string]bool)}
}

func (f *fakeLinks) IDs() []string { return f.order }

func (f *fakeLinks) SetActive(id string, active bool) {
	for _, o := range f.order {
		if o == id {
			f.active[id] = active
		}
	}
}

func (f *fakeLinks) activeIDs() []string {
	var out []string
	for _, id := range f.order {
		if f.active[id] {
			out = append(out, id)
		}
	}
	return out
}

var page = []Section{
	{ID: "home", Top: 0, Height: 700},
	{ID: "about", Top: 700, Height: 900},
	{ID: "publications", Top: 1600, Height: 800},
	{ID: "projects", Top: 2400, Height: 600},
	{ID: "contact", Top: 3000, Height: 400},
}

func TestActiveSection(t *testing.T) {
	id, ok := ActiveSection(page, 0)
	require.True(t, ok)
	require.Equal(t, "home", id)

	// 599 + 100 is still inside home; 600 + 100 is the first pixel of about.
	id, _ = ActiveSection(page, 599)
	require.Equal(t, "home", id)
	id, _ = ActiveSection(page, 600)
	require.Equal(t, "about", id)

	_, ok = ActiveSection(page, 5000)
	require.False(t, ok)

	overlap := []Section{{ID: "a", Top: 0, Height: 500}, {ID: "b", Top: 100, Height: 500}}
	id, _ = ActiveSection(overlap, 100)
	require.Equal(t, "b", id)
}

func TestController(t *testing.T) {
	t.Run("Projects In View", func(t *testing.T) {
		links := newFakeLinks("home", "about", "publications", "projects", "contact")
		links.active["home"] = true
		links.active["about"] = true
		c := NewController(links)

		id, ok := c.Update(page, 2400)
		require.True(t, ok)
		require.Equal(t, "projects", id)
		require.Equal(t, []string{"projects"}, links.activeIDs())

		// Same input, same result.
		c.Update(page, 2400)
		require.Equal(t, []string{"projects"}, links.activeIDs())
	})

	t.Run("Nothing In View Keeps State", func(t *testing.T) {
		links := newFakeLinks("home", "contact")
		c := NewController(links)
		c.Update(page, 3000)
		require.Equal(t, []string{"contact"}, links.activeIDs())

		_, ok := c.Update(page, 9000)
		require.False(t, ok)
		require.Equal(t, []string{"contact"}, links.activeIDs())
	})

	t.Run("Section Without Link", func(t *testing.T) {
		links := newFakeLinks("home", "contact")
		c := NewController(links)
		c.Update(page, 0)
		c.Update(page, 800)
		require.Empty(t, links.activeIDs())
	})
}

func TestNavbarStyleAt(t *testing.T) {
	require.Equal(t, "none", NavbarStyleAt(0).BoxShadow)
	require.Equal(t, "rgba(10, 10, 10, 0.9)", NavbarStyleAt(100).Background)
	require.Equal(t, "rgba(10, 10, 10, 0.95)", NavbarStyleAt(101).Background)
	require.Equal(t, "0 2px 10px rgba(0, 0, 0, 0.3)", NavbarStyleAt(101).BoxShadow)
}

func TestOffsets(t *testing.T) {
	require.Equal(t, 620.0, ScrollTarget(700))
	require.Equal(t, -150.0, ParallaxOffset(300))
}

func TestMobileMenu(t *testing.T) {
	var m MobileMenu
	m.Resize(375)
	require.True(t, m.Compact())
	require.Equal(t, IconClosed, m.Icon())

	require.True(t, m.Toggle())
	require.Equal(t, IconOpen, m.Icon())

	m.Resize(768)
	require.True(t, m.Open(), "still compact at the breakpoint")

	m.Resize(1024)
	require.False(t, m.Compact())
	require.False(t, m.Open())
	require.Equal(t, IconClosed, m.Icon())
}

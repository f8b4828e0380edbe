package nav

// MobileBreakpoint is the widest viewport that gets the collapsed menu.
const MobileBreakpoint = 768

const (
	IconClosed = "fas fa-bars"
	IconOpen   = "fas fa-times"
)

// MobileMenu tracks the collapsible navigation on narrow screens.
type MobileMenu struct {
	compact bool
	open    bool
}

// Resize updates the layout for a viewport width. Leaving the compact
// layout closes the menu.
func (m *MobileMenu) Resize(width float64) {
	m.compact = width <= MobileBreakpoint
	if !m.compact {
		m.open = false
	}
}

// Toggle opens or closes the menu and reports the new state.
func (m *MobileMenu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// Close collapses the menu, e.g. after a link was followed.
func (m *MobileMenu) Close() { m.open = false }

func (m *MobileMenu) Compact() bool { return m.compact }
func (m *MobileMenu) Open() bool    { return m.open }

// Icon is the Font Awesome class for the menu button.
func (m *MobileMenu) Icon() string {
	if m.open {
		return IconOpen
	}
	return IconClosed
}

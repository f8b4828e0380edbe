// Package nav holds the page navigation logic: which section is in
// view, the navbar treatment, smooth-scroll targets and the mobile menu.
package nav

const (
	// ActivationOffset is added to the scroll position before testing
	// which section contains it.
	ActivationOffset = 100
	// NavbarThreshold is the scroll offset past which the navbar turns
	// solid.
	NavbarThreshold = 100
	// NavbarHeight is subtracted from a section's top when scrolling to it.
	NavbarHeight = 80
	// ParallaxRate scales the scroll offset applied to the backdrop.
	ParallaxRate = -0.5
)

// Section is a page section's vertical extent in document coordinates.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

func (s Section) contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// ActiveSection returns the section containing scrollY+ActivationOffset.
// When sections overlap the last one in document order wins.
func ActiveSection(sections []Section, scrollY float64) (string, bool) {
	pos := scrollY + ActivationOffset
	id, found := "", false
	for _, s := range sections {
		if s.contains(pos) {
			id, found = s.ID, true
		}
	}
	return id, found
}

// Links is the set of navigation links, addressed by section id.
type Links interface {
	IDs() []string
	SetActive(id string, active bool)
}

// Controller keeps exactly one link active for the section in view.
type Controller struct {
	links Links
}

func NewController(links Links) *Controller {
	return &Controller{links: links}
}

// Update recomputes the active link for scrollY. When no section holds
// the activation point the current state is left as it is.
func (c *Controller) Update(sections []Section, scrollY float64) (string, bool) {
	id, ok := ActiveSection(sections, scrollY)
	if !ok {
		return "", false
	}
	for _, l := range c.links.IDs() {
		c.links.SetActive(l, false)
	}
	c.links.SetActive(id, true)
	return id, true
}

// NavbarStyle is the inline style applied to the navbar.
type NavbarStyle struct {
	Background string
	BoxShadow  string
}

var (
	navbarTop      = NavbarStyle{Background: "rgba(10, 10, 10, 0.9)", BoxShadow: "none"}
	navbarScrolled = NavbarStyle{Background: "rgba(10, 10, 10, 0.95)", BoxShadow: "0 2px 10px rgba(0, 0, 0, 0.3)"}
)

// NavbarStyleAt returns the navbar treatment for a scroll offset.
func NavbarStyleAt(scrollY float64) NavbarStyle {
	if scrollY > NavbarThreshold {
		return navbarScrolled
	}
	return navbarTop
}

// ScrollTarget is where to scroll so a section clears the fixed navbar.
func ScrollTarget(sectionTop float64) float64 {
	return sectionTop - NavbarHeight
}

// ParallaxOffset is the vertical translation of the animated backdrop.
func ParallaxOffset(scrollY float64) float64 {
	return scrollY * ParallaxRate
}

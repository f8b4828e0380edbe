//go:build js && wasm

package dom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/vlivernoche/portfolio/internal/i18n"
	"github.com/vlivernoche/portfolio/internal/nav"
)

const (
	navLinkSelector = `.nav-links a[href^="#"]`
	activeClass     = "active"
	menuButtonClass = "mobile-menu-btn"
)

// navLinks adapts the navbar anchors to nav.Links.
type navLinks struct {
	byID  map[string]js.Value
	order []string
}

func findNavLinks() *navLinks {
	l := &navLinks{byID: map[string]js.Value{}}
	each(document().Call("querySelectorAll", navLinkSelector), func(a js.Value) {
		id := strings.TrimPrefix(a.Call("getAttribute", "href").String(), "#")
		if id == "" {
			return
		}
		if _, dup := l.byID[id]; !dup {
			l.order = append(l.order, id)
		}
		l.byID[id] = a
	})
	return l
}

func (l *navLinks) IDs() []string { return l.order }

func (l *navLinks) SetActive(id string, active bool) {
	a, ok := l.byID[id]
	if !ok {
		return
	}
	if active {
		a.Get("classList").Call("add", activeClass)
	} else {
		a.Get("classList").Call("remove", activeClass)
	}
}

func sections() []nav.Section {
	var out []nav.Section
	each(document().Call("querySelectorAll", "section[id]"), func(s js.Value) {
		out = append(out, nav.Section{
			ID:     s.Get("id").String(),
			Top:    s.Get("offsetTop").Float(),
			Height: s.Get("offsetHeight").Float(),
		})
	})
	return out
}

func scrollY() float64 {
	return window().Get("pageYOffset").Float()
}

// Nav wires scrolling, navigation highlighting, fade-ins, the mobile
// menu and the language toggle onto the page.
type Nav struct {
	controller *nav.Controller
	menu       nav.MobileMenu
	navbar     js.Value
	backdrop   js.Value
	menuButton js.Value
	menuList   js.Value
	funcs      []js.Func
}

func BindNav(applier *i18n.Applier, initial i18n.Lang) *Nav {
	doc := document()
	n := &Nav{
		controller: nav.NewController(findNavLinks()),
		navbar:     doc.Call("querySelector", ".navbar"),
		backdrop:   doc.Call("querySelector", ".animated-background"),
		menuList:   doc.Call("querySelector", ".nav-links"),
	}

	each(doc.Call("querySelectorAll", navLinkSelector), func(a js.Value) {
		n.listen(a, "click", func(e js.Value) {
			e.Call("preventDefault")
			n.scrollTo(a.Call("getAttribute", "href").String())
		})
	})

	n.listen(window(), "scroll", func(js.Value) { n.onScroll() })

	if toggle := doc.Call("getElementById", i18n.ToggleID); exists(toggle) {
		page := NewDocument()
		n.listen(toggle, "click", func(js.Value) {
			applier.Toggle(page, initial)
		})
	}

	n.observeReveal()
	n.createMenu()
	n.onScroll()
	return n
}

func (n *Nav) listen(target js.Value, event string, fn func(js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	n.funcs = append(n.funcs, f)
	target.Call("addEventListener", event, f)
}

func (n *Nav) scrollTo(href string) {
	target := document().Call("querySelector", href)
	if !exists(target) {
		return
	}
	opts := map[string]any{
		"top":      nav.ScrollTarget(target.Get("offsetTop").Float()),
		"behavior": "smooth",
	}
	window().Call("scrollTo", opts)
	if n.menu.Open() {
		n.menu.Close()
		n.renderMenu()
	}
}

func (n *Nav) onScroll() {
	y := scrollY()
	if exists(n.navbar) {
		style := nav.NavbarStyleAt(y)
		n.navbar.Get("style").Set("background", style.Background)
		n.navbar.Get("style").Set("boxShadow", style.BoxShadow)
	}
	n.controller.Update(sections(), y)
	if exists(n.backdrop) {
		n.backdrop.Get("style").Set("transform", fmt.Sprintf("translateY(%gpx)", nav.ParallaxOffset(y)))
	}
}

func (n *Nav) observeReveal() {
	ctor := window().Get("IntersectionObserver")
	if !exists(ctor) {
		return
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		each(args[0], func(entry js.Value) {
			if entry.Get("isIntersecting").Bool() {
				style := entry.Get("target").Get("style")
				style.Set("opacity", "1")
				style.Set("transform", "translateY(0)")
			}
		})
		return nil
	})
	n.funcs = append(n.funcs, cb)
	observer := ctor.New(cb, map[string]any{
		"threshold":  nav.RevealThreshold,
		"rootMargin": nav.RevealRootMargin,
	})
	each(document().Call("querySelectorAll", nav.RevealSelector), func(el js.Value) {
		style := el.Get("style")
		style.Set("opacity", "0")
		style.Set("transform", nav.RevealOffset)
		style.Set("transition", nav.RevealTransition)
		observer.Call("observe", el)
	})
}

func (n *Nav) createMenu() {
	container := document().Call("querySelector", ".nav-container")
	if !exists(container) || !exists(n.menuList) {
		return
	}
	if existing := document().Call("querySelector", "."+menuButtonClass); exists(existing) {
		n.menuButton = existing
	} else {
		n.menuButton = document().Call("createElement", "button")
		n.menuButton.Set("className", menuButtonClass)
		n.menuButton.Set("type", "button")
		n.menuButton.Call("setAttribute", "aria-label", "Menu")
		n.menuButton.Set("innerHTML", `<i class="`+nav.IconClosed+`"></i>`)
		container.Call("appendChild", n.menuButton)
	}

	n.listen(n.menuButton, "click", func(js.Value) {
		n.menu.Toggle()
		n.renderMenu()
	})
	resize := func(js.Value) {
		n.menu.Resize(window().Get("innerWidth").Float())
		n.renderMenu()
	}
	n.listen(window(), "resize", resize)
	resize(js.Undefined())
}

func (n *Nav) renderMenu() {
	list := n.menuList.Get("classList")
	if n.menu.Compact() {
		list.Call("add", "compact")
	} else {
		list.Call("remove", "compact")
	}
	if n.menu.Open() {
		list.Call("add", activeClass)
	} else {
		list.Call("remove", activeClass)
	}
	if icon := n.menuButton.Call("querySelector", "i"); exists(icon) {
		icon.Set("className", n.menu.Icon())
	}
}

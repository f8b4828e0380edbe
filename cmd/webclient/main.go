//go:build js && wasm

// Command webclient runs the page behaviour in the browser: the particle
// background, the language toggle and the navigation.
package main

import (
	"errors"

	"github.com/vlivernoche/portfolio/internal/dom"
	"github.com/vlivernoche/portfolio/internal/i18n"
	"github.com/vlivernoche/portfolio/internal/particles"
)

func main() {
	if _, err := dom.StartBackground(particles.DefaultConfig()); err != nil && !errors.Is(err, particles.ErrNoSurface) {
		println("background:", err.Error())
	}

	table, err := i18n.Load()
	if err != nil {
		println("translations:", err.Error())
		select {}
	}
	applier := i18n.NewApplier(table, dom.LangStore{})
	initial := applier.Initial(dom.BrowserLocale())
	applier.Apply(dom.NewDocument(), initial)

	dom.BindNav(applier, initial)

	select {}
}

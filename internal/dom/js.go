//go:build js && wasm

// Package dom binds the page logic to the browser through syscall/js.
package dom

import "syscall/js"

func exists(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

// each calls fn for every node in a NodeList.
func each(list js.Value, fn func(js.Value)) {
	if !exists(list) {
		return
	}
	n := list.Length()
	for i := 0; i < n; i++ {
		fn(list.Index(i))
	}
}

func window() js.Value   { return js.Global() }
func document() js.Value { return js.Global().Get("document") }

// MatchesMedia evaluates a CSS media query.
func MatchesMedia(query string) bool {
	mm := window().Get("matchMedia")
	if !exists(mm) {
		return false
	}
	return window().Call("matchMedia", query).Get("matches").Bool()
}

// CSSVar reads a custom property from the root element's computed style.
func CSSVar(name string) string {
	style := window().Call("getComputedStyle", document().Get("documentElement"))
	return style.Call("getPropertyValue", name).String()
}

// BrowserLocale is navigator.language, or "" when unavailable.
func BrowserLocale() string {
	lang := window().Get("navigator").Get("language")
	if lang.Type() != js.TypeString {
		return ""
	}
	return lang.String()
}

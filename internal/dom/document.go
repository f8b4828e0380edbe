//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/vlivernoche/portfolio/internal/i18n"
)

// Document is the live page as an i18n.Document.
type Document struct {
	doc js.Value
}

var _ i18n.Document = (*Document)(nil)

func NewDocument() *Document {
	return &Document{doc: document()}
}

func (d *Document) SetLanguage(lang i18n.Lang) {
	d.doc.Get("documentElement").Set("lang", string(lang))
}

func (d *Document) SetTitle(title string) {
	d.doc.Set("title", title)
}

func (d *Document) Tagged() []i18n.Element {
	var out []i18n.Element
	each(d.doc.Call("querySelectorAll", "["+i18n.KeyAttr+"]"), func(v js.Value) {
		out = append(out, element{v: v, key: v.Call("getAttribute", i18n.KeyAttr).String()})
	})
	return out
}

func (d *Document) SetAlt(id, text string) bool {
	el := d.doc.Call("getElementById", id)
	if !exists(el) {
		return false
	}
	el.Set("alt", text)
	return true
}

func (d *Document) SetText(id, text string) bool {
	el := d.doc.Call("getElementById", id)
	if !exists(el) {
		return false
	}
	el.Set("textContent", text)
	return true
}

type element struct {
	v   js.Value
	key string
}

func (e element) Key() string { return e.key }

func (e element) SetInnerHTML(markup string) { e.v.Set("innerHTML", markup) }

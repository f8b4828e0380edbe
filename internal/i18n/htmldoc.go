package i18n

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLDocument is a Document over a parsed HTML tree. The server uses it
// to send the page already in the visitor's language.
type HTMLDocument struct {
	root *html.Node
}

var _ Document = (*HTMLDocument)(nil)

// ParseHTML parses a full page.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

// Render writes the document back out.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *HTMLDocument) SetLanguage(lang Lang) {
	if n := d.find(func(n *html.Node) bool { return n.DataAtom == atom.Html }); n != nil {
		setAttr(n, "lang", string(lang))
	}
}

func (d *HTMLDocument) SetTitle(title string) {
	n := d.find(func(n *html.Node) bool { return n.DataAtom == atom.Title })
	if n == nil {
		return
	}
	setText(n, title)
}

func (d *HTMLDocument) Tagged() []Element {
	var out []Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if key, ok := getAttr(n, KeyAttr); ok {
				out = append(out, &htmlElement{node: n, key: key})
			}
		}
		return false
	})
	return out
}

func (d *HTMLDocument) SetAlt(id, text string) bool {
	n := d.byID(id)
	if n == nil {
		return false
	}
	setAttr(n, "alt", text)
	return true
}

func (d *HTMLDocument) SetText(id, text string) bool {
	n := d.byID(id)
	if n == nil {
		return false
	}
	setText(n, text)
	return true
}

func (d *HTMLDocument) byID(id string) *html.Node {
	return d.find(func(n *html.Node) bool {
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
}

func (d *HTMLDocument) find(match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return true
		}
		return false
	})
	return found
}

type htmlElement struct {
	node *html.Node
	key  string
}

func (e *htmlElement) Key() string { return e.key }

func (e *htmlElement) SetInnerHTML(markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		setText(e.node, markup)
		return
	}
	removeChildren(e.node)
	for _, c := range nodes {
		e.node.AppendChild(c)
	}
}

// walk visits n depth-first until visit returns true.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if visit(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if walk(c, visit) {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func setText(n *html.Node, text string) {
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

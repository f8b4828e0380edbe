package i18n

import "sync"

// Element IDs and keys the applier touches besides tagged elements.
const (
	TitleKey       = "page.title"
	PortraitID     = "hero-portrait"
	PortraitAltKey = "hero.img_alt"
	ToggleID       = "lang-toggle"
	KeyAttr        = "data-i18n"
)

// Element is a node tagged with a localization key.
type Element interface {
	Key() string
	// SetInnerHTML replaces the element's content with markup, which is
	// parsed rather than escaped.
	SetInnerHTML(markup string)
}

// Document is the page the applier rewrites. The setters return false
// when the target element does not exist.
type Document interface {
	SetLanguage(lang Lang)
	SetTitle(title string)
	Tagged() []Element
	SetAlt(id, text string) bool
	SetText(id, text string) bool
}

// Store persists the language preference.
type Store interface {
	Load() (string, bool)
	Save(code string)
}

// Applier rewrites documents from a Table and remembers the choice.
type Applier struct {
	table *Table
	store Store
}

// NewApplier creates an applier. A nil store keeps the preference in
// memory only.
func NewApplier(table *Table, store Store) *Applier {
	if store == nil {
		store = &MemoryStore{}
	}
	return &Applier{table: table, store: store}
}

// Initial resolves the language to start with from the stored
// preference and the browser locale.
func (a *Applier) Initial(browserLocale string) Lang {
	saved, _ := a.store.Load()
	return Resolve(saved, browserLocale)
}

// Apply rewrites doc in lang. Missing elements and missing keys are
// skipped and leave the existing content in place.
func (a *Applier) Apply(doc Document, lang Lang) {
	doc.SetLanguage(lang)
	if title, ok := a.table.Lookup(lang, TitleKey); ok {
		doc.SetTitle(title)
	}
	for _, el := range doc.Tagged() {
		if v, ok := a.table.Lookup(lang, el.Key()); ok {
			el.SetInnerHTML(v)
		}
	}
	if alt, ok := a.table.Lookup(lang, PortraitAltKey); ok {
		doc.SetAlt(PortraitID, alt)
	}
	doc.SetText(ToggleID, lang.Other().Label())
}

// SetLang normalizes code, persists it and applies it to doc.
func (a *Applier) SetLang(doc Document, code string) Lang {
	lang := Normalize(code)
	a.store.Save(string(lang))
	a.Apply(doc, lang)
	return lang
}

// Toggle switches doc to the language opposite the stored one. initial
// stands in when nothing has been stored yet.
func (a *Applier) Toggle(doc Document, initial Lang) Lang {
	current := initial
	if saved, ok := a.store.Load(); ok && saved != "" {
		current = Lang(saved)
	}
	if current == English {
		return a.SetLang(doc, string(French))
	}
	return a.SetLang(doc, string(English))
}

// MemoryStore is a Store held in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

func (m *MemoryStore) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set
}

func (m *MemoryStore) Save(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = code, true
}

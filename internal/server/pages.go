package server

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vlivernoche/portfolio/internal/i18n"
)

// Page is the index page rendered in one language.
type Page struct {
	Lang i18n.Lang
	Body []byte
	ETag string
}

// Pages renders the index page once per language and keeps the result.
type Pages struct {
	source  []byte
	applier *i18n.Applier

	group singleflight.Group
	cache sync.Map // i18n.Lang -> *Page
}

// NewPages prepares a renderer for the page source.
func NewPages(source []byte, table *i18n.Table) *Pages {
	return &Pages{source: source, applier: i18n.NewApplier(table, nil)}
}

// Get returns the page in lang, rendering it on first use. Concurrent
// first requests share one render.
func (p *Pages) Get(lang i18n.Lang) (*Page, error) {
	if v, ok := p.cache.Load(lang); ok {
		return v.(*Page), nil
	}
	v, err, _ := p.group.Do(string(lang), func() (any, error) {
		if v, ok := p.cache.Load(lang); ok {
			return v, nil
		}
		page, err := p.render(lang)
		if err != nil {
			return nil, err
		}
		p.cache.Store(lang, page)
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Page), nil
}

// Warm renders every supported language up front.
func (p *Pages) Warm(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, lang := range i18n.Supported {
		g.Go(func() error {
			_, err := p.Get(lang)
			return err
		})
	}
	return g.Wait()
}

func (p *Pages) render(lang i18n.Lang) (*Page, error) {
	doc, err := i18n.ParseHTML(bytes.NewReader(p.source))
	if err != nil {
		return nil, fmt.Errorf("rendering %s page: %w", lang, err)
	}
	p.applier.Apply(doc, lang)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s page: %w", lang, err)
	}
	body := buf.Bytes()
	return &Page{
		Lang: lang,
		Body: body,
		ETag: fmt.Sprintf(`"%016x"`, xxhash.Sum64(body)),
	}, nil
}

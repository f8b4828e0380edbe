//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/vlivernoche/portfolio/internal/i18n"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// LangStore keeps the language preference in localStorage and mirrors
// it into a cookie so the server renders the next visit in the same
// language.
type LangStore struct{}

var _ i18n.Store = LangStore{}

func localStorage() (v js.Value, ok bool) {
	// Access throws when storage is disabled.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	v = window().Get("localStorage")
	return v, exists(v)
}

func (LangStore) Load() (code string, ok bool) {
	ls, ok := localStorage()
	if !ok {
		return "", false
	}
	defer func() {
		if recover() != nil {
			code, ok = "", false
		}
	}()
	v := ls.Call("getItem", i18n.StorageKey)
	if v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}

func (LangStore) Save(code string) {
	document().Set("cookie", fmt.Sprintf("%s=%s; path=/; max-age=%d; SameSite=Lax", i18n.StorageKey, code, cookieMaxAge))
	ls, ok := localStorage()
	if !ok {
		return
	}
	defer func() { recover() }()
	ls.Call("setItem", i18n.StorageKey, code)
}

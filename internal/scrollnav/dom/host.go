//go:build js && wasm

// Package dom runs a scrollnav.Controller in the browser.
package dom

import (
	"sync"
	"syscall/js"

	"astrox_site/internal/models"
	"astrox_site/internal/scrollnav"
)

// Host is the browser window as seen by the controller
type Host struct {
	window   js.Value
	document js.Value
}

func NewHost() *Host {
	return &Host{
		window:   js.Global().Get("window"),
		document: js.Global().Get("document"),
	}
}

func (h *Host) ScrollOffset() int {
	return scrollnav.OffsetFromPixels(h.window.Get("scrollY").Float())
}

func (h *Host) ScrollIntoView(id models.SectionID) bool {
	el := h.document.Call("getElementById", id.String())
	if el.IsNull() || el.IsUndefined() {
		return false
	}
	el.Call("scrollIntoView", map[string]any{"behavior": "smooth"})
	return true
}

func (h *Host) ListenScroll(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	opts := map[string]any{"passive": true}
	h.window.Call("addEventListener", "scroll", cb, opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			h.window.Call("removeEventListener", "scroll", cb, opts)
			cb.Release()
		})
	}
}

//go:build js && wasm

// Command wasm is the browser bundle that drives the page navigation.
// Build it with GOOS=js GOARCH=wasm; see the Makefile.
package main

import (
	"log"
	"syscall/js"

	"astrox_site/internal/scrollnav"
	"astrox_site/internal/scrollnav/dom"
)

func main() {
	binder := dom.NewBinder(js.Global().Get("document"))
	ctrl := scrollnav.New(dom.NewHost(), scrollnav.WithOnChange(binder.Apply))

	if err := ctrl.Mount(); err != nil {
		log.Printf("astrox: %v", err)
		return
	}
	// Pick up a scroll position restored by the browser
	ctrl.OnScroll()
	unbind := binder.Bind(ctrl)

	done := make(chan struct{})
	var teardown js.Func
	teardown = js.FuncOf(func(js.Value, []js.Value) any {
		unbind()
		ctrl.Dispose()
		teardown.Release()
		close(done)
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "pagehide", teardown, map[string]any{"once": true})

	<-done
}

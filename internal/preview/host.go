package preview

import (
	"github.com/charmbracelet/bubbles/viewport"

	"astrox_site/internal/models"
)

// viewportHost adapts a bubbles viewport to scrollnav.Host. Offsets are in
// lines and jumps are immediate.
type viewportHost struct {
	vp         *viewport.Model
	anchors    map[models.SectionID]int
	listeners  map[int]func()
	nextID     int
	lastOffset int
}

func newViewportHost(vp *viewport.Model) *viewportHost {
	return &viewportHost{
		vp:        vp,
		anchors:   make(map[models.SectionID]int),
		listeners: make(map[int]func()),
	}
}

func (h *viewportHost) ScrollOffset() int {
	return h.vp.YOffset
}

func (h *viewportHost) ScrollIntoView(id models.SectionID) bool {
	line, ok := h.anchors[id]
	if !ok {
		return false
	}
	h.vp.SetYOffset(line)
	return true
}

func (h *viewportHost) ListenScroll(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		delete(h.listeners, id)
	}
}

// sync fires the scroll listeners when the viewport moved since the last call
func (h *viewportHost) sync() {
	if h.vp.YOffset == h.lastOffset {
		return
	}
	h.lastOffset = h.vp.YOffset
	for _, fn := range h.listeners {
		fn()
	}
}

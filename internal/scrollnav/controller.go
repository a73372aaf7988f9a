// Package scrollnav tracks the scroll offset and the selected navigation
// target of a page view, and drives smooth scrolling to in-page anchors.
//
// A Controller is owned by a single view. It is created when the view
// mounts and disposed when the view is torn down. It is not safe for
// concurrent use: every method is expected to run on the host's event loop.
package scrollnav

import (
	"errors"

	"astrox_site/internal/models"
)

var (
	ErrAlreadyMounted = errors.New("scrollnav: controller already mounted")
	ErrDisposed       = errors.New("scrollnav: controller disposed")
)

// Host is the environment a controller runs in: a browser window, a
// terminal viewport or a test fake.
type Host interface {
	// ScrollOffset returns the current distance from the top of the page
	ScrollOffset() int
	// ScrollIntoView smoothly scrolls the anchor tagged with id into view.
	// It returns false when no such anchor is rendered.
	ScrollIntoView(id models.SectionID) bool
	// ListenScroll attaches fn to the host's scroll events and returns the
	// function that detaches it.
	ListenScroll(fn func()) (release func())
}

// Option configures a Controller
type Option func(*Controller)

// WithOnChange registers fn to be called with the new state after every
// state change.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller holds the navigation state of one page view
type Controller struct {
	host     Host
	state    State
	onChange func(State)

	release  func()
	mounted  bool
	disposed bool
}

// New creates a controller in the initial state. The scroll listener is not
// attached until Mount is called.
func New(host Host, opts ...Option) *Controller {
	c := &Controller{
		host:  host,
		state: InitialState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount attaches the scroll listener. It may be called only once.
func (c *Controller) Mount() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.mounted {
		return ErrAlreadyMounted
	}
	c.release = c.host.ListenScroll(c.OnScroll)
	c.mounted = true
	return nil
}

// Dispose detaches the scroll listener. Calling it more than once, or on a
// controller that was never mounted, is a no-op.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// OnScroll records the host's current scroll offset
func (c *Controller) OnScroll() {
	offset := c.host.ScrollOffset()
	if offset < 0 {
		offset = 0
	}
	c.state.ScrollOffset = offset
	c.notify()
}

// NavigateTo scrolls to the anchor of id, marks it active and closes the
// menu. A missing anchor only skips the scroll; the state is always updated.
func (c *Controller) NavigateTo(id models.SectionID) {
	c.host.ScrollIntoView(id)
	c.state.ActiveSection = id
	c.state.MenuOpen = false
	c.notify()
}

// ToggleMenu opens a closed menu and closes an open one
func (c *Controller) ToggleMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
	c.notify()
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	return c.state
}

// Mounted reports whether the scroll listener is currently attached
func (c *Controller) Mounted() bool {
	return c.mounted && !c.disposed
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

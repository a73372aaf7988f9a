// Package views exposes the page components to handlers as templ
// components, so every handler renders the same way regardless of how the
// markup was built.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"astrox_site/internal/components"
)

// FromNode wraps a gomponents node in a templ.Component
func FromNode(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}

type LandingProps = components.LandingProps

func Landing(props LandingProps) templ.Component {
	return FromNode(components.LandingPage(props))
}

// ErrorPageProps is what the error handler knows about a failure
type ErrorPageProps struct {
	ErrorTitle   string
	ErrorMessage string
}

func ErrorPage(props ErrorPageProps) templ.Component {
	return FromNode(components.ErrorPage(props.ErrorTitle, props.ErrorMessage))
}

package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Renderer defines the contract for rendering view components.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Useful for
	// HTMX fragments.
	RenderComponent(ctx context.Context, component gomponents.Node) ([]byte, error)

	// RenderPage handles full-page rendering for an Echo response.
	RenderPage(c echo.Context, status int, component gomponents.Node) error
}

// ComponentRenderer streams gomponents trees into HTTP responses. It also
// satisfies echo.Renderer so handlers can use c.Render with a component as
// the data argument.
type ComponentRenderer struct{}

// NewComponentRenderer creates a new ComponentRenderer instance.
func NewComponentRenderer() *ComponentRenderer {
	return &ComponentRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *ComponentRenderer) RenderComponent(ctx context.Context, component gomponents.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (r *ComponentRenderer) RenderPage(c echo.Context, status int, component gomponents.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return component.Render(c.Response().Writer)
}

// Render implements the echo.Renderer interface. The component is passed in
// the data parameter; the template name is unused since components are plain
// Go functions.
func (r *ComponentRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	component, ok := data.(gomponents.Node)
	if !ok {
		return fmt.Errorf("unsupported component type: %T. Component must be a gomponents.Node", data)
	}
	return component.Render(w)
}

package rendering

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewComponentRenderer()

	out, err := r.RenderComponent(context.Background(), html.Div(gomponents.Text("hello")))
	require.NoError(t, err)
	assert.Equal(t, "<div>hello</div>", string(out))
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	r := NewComponentRenderer()
	err := r.RenderPage(c, 200, html.P(gomponents.Text("page")))
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "<p>page</p>")
}

func TestRender_RejectsNonComponent(t *testing.T) {
	r := NewComponentRenderer()
	var buf bytes.Buffer

	err := r.Render(&buf, "ignored", "not a component", nil)
	assert.Error(t, err)
}

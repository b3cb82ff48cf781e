package layouts

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// autoScroll keeps the message area pinned to the latest message. It runs on
// initial load and after every htmx swap that replaces the chat body.
const autoScroll = `
function parlorScroll() {
  var el = document.getElementById('message-scroll');
  if (el) { el.scrollTop = el.scrollHeight; }
}
document.addEventListener('DOMContentLoaded', parlorScroll);
document.body.addEventListener('htmx:afterSwap', parlorScroll);
`

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Parlor"
	}
	return "Parlor"
}

// Base wraps page content in the HTML document shell: htmx, Tailwind and
// the auto-scroll hook.
func Base(title string, content gomponents.Node) gomponents.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(gomponents.Text(CalculateTitle(title))),
				html.Script(html.Src("https://unpkg.com/htmx.org@1.9.12")),
				html.Script(html.Src("https://cdn.tailwindcss.com")),
			),
			html.Body(
				html.Class("h-screen bg-slate-900 text-slate-100 antialiased"),
				content,
				html.Script(gomponents.Raw(autoScroll)),
			),
		),
	)
}

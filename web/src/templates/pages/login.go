package pages

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// LoginData is the view model for the login form.
type LoginData struct {
	Draft     string
	Error     string
	IsLoading bool
}

// Login renders the login screen. The submit button is disabled while a
// login is in flight, and the browser blocks submission of an empty draft
// via the required attribute.
func Login(data LoginData) gomponents.Node {
	return html.Div(
		html.Class("min-h-screen flex items-center justify-center bg-gradient-to-br from-slate-900 to-slate-700 p-4"),
		html.Div(
			html.Class("bg-slate-800 p-8 rounded-xl shadow-2xl w-full max-w-md"),
			html.H2(
				html.Class("text-4xl font-bold text-center text-blue-400 mb-8"),
				gomponents.Text("Welcome to Parlor"),
			),
			html.Form(
				html.Method("post"),
				html.Action("/login"),
				html.Div(
					html.Class("mb-6"),
					html.Label(
						html.For("username"),
						html.Class("block text-sm font-medium text-slate-400 mb-2"),
						gomponents.Text("Choose a Username"),
					),
					html.Input(
						html.Type("text"),
						html.ID("username"),
						html.Name("username"),
						html.Value(data.Draft),
						html.Placeholder("E.g., CoolCat123"),
						html.Required(),
						html.AutoFocus(),
						gomponents.If(data.IsLoading, html.Disabled()),
						html.Class("w-full px-4 py-3 border border-slate-600 rounded-lg bg-slate-700 text-slate-100 focus:ring-2 focus:ring-blue-400 outline-none"),
					),
				),
				gomponents.If(data.Error != "",
					html.P(
						html.Class("text-red-400 text-sm mb-4 text-center"),
						gomponents.Text(data.Error),
					),
				),
				html.Button(
					html.Type("submit"),
					gomponents.If(data.IsLoading, html.Disabled()),
					html.Class("w-full bg-blue-500 hover:bg-blue-600 text-white font-semibold py-3 px-4 rounded-lg disabled:opacity-50 disabled:cursor-not-allowed"),
					loginButtonLabel(data.IsLoading),
				),
			),
			html.P(
				html.Class("text-xs text-slate-400 mt-6 text-center"),
				gomponents.Text("Your adventure in communication starts here. Pick a cool name!"),
			),
		),
	)
}

func loginButtonLabel(loading bool) gomponents.Node {
	if loading {
		return Spinner("w-5 h-5")
	}
	return gomponents.Text("Enter Chat")
}

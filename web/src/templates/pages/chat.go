package pages

import (
	"fmt"
	"time"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"parlor/internal/app"
	"parlor/internal/domain"
)

// ChatData is the view model for the chat screen: a controller snapshot plus
// the composer's uncommitted draft (preserved when a send fails).
type ChatData struct {
	Snapshot app.Snapshot
	Draft    string
}

// ChatBody renders the full chat surface: the room list sidebar, the chat
// room shell and, when present, the transient room-error toast. It is the
// htmx swap target for room selection and message sends.
func ChatBody(data ChatData) gomponents.Node {
	return html.Div(
		html.ID("chat-body"),
		html.Class("flex flex-col md:flex-row h-screen"),
		RoomList(data.Snapshot),
		ChatShell(data),
		gomponents.If(data.Snapshot.RoomsError != "",
			html.Div(
				html.Role("alert"),
				html.Class("fixed bottom-4 right-4 bg-red-600 text-white p-3 rounded-lg shadow-xl z-50"),
				html.P(html.Class("font-semibold"), gomponents.Text("Error:")),
				html.P(gomponents.Text(data.Snapshot.RoomsError)),
			),
		),
	)
}

// RoomList renders the selectable room sidebar. The currently selected room
// is highlighted; clicking an item swaps the chat body for that room.
func RoomList(snap app.Snapshot) gomponents.Node {
	var userName string
	if snap.CurrentUser != nil {
		userName = snap.CurrentUser.Name
	}

	selectedID := ""
	if snap.SelectedRoom != nil {
		selectedID = snap.SelectedRoom.ID
	}

	return html.Div(
		html.Class("w-full md:w-1/4 bg-slate-800 p-4 flex flex-col h-full border-r border-slate-700"),
		html.Div(
			html.Class("mb-6 p-3 bg-slate-700 rounded-lg shadow"),
			html.H3(
				html.Class("text-xl font-semibold text-white truncate"),
				gomponents.Text("Hi, "),
				html.Span(html.Class("text-blue-400"), gomponents.Text(userName)),
				gomponents.Text("!"),
			),
			html.P(html.Class("text-xs text-slate-400"), gomponents.Text("Select a room to chat.")),
		),
		html.H4(html.Class("text-lg font-semibold text-white mb-3"), gomponents.Text("Available Rooms")),
		roomListBody(snap, selectedID),
	)
}

func roomListBody(snap app.Snapshot, selectedID string) gomponents.Node {
	if snap.IsLoadingRooms {
		return html.Div(
			html.Class("flex justify-center items-center h-32"),
			Spinner("w-8 h-8"),
		)
	}
	if len(snap.Rooms) == 0 {
		return html.P(
			html.Class("text-slate-400 text-sm"),
			gomponents.Text("No rooms available at the moment."),
		)
	}
	return html.Ul(
		html.Class("space-y-2 overflow-y-auto flex-grow pr-1"),
		gomponents.Map(snap.Rooms, func(room domain.Room) gomponents.Node {
			return html.Li(roomItem(room, room.ID == selectedID))
		}),
	)
}

func roomItem(room domain.Room, selected bool) gomponents.Node {
	classes := "w-full text-left px-4 py-3 rounded-md bg-slate-700 text-slate-200 hover:bg-slate-600 hover:text-white"
	if selected {
		classes = "w-full text-left px-4 py-3 rounded-md bg-blue-500 text-white shadow-md"
	}
	return html.Button(
		html.Type("button"),
		hx.Post("/chat/rooms/"+room.ID+"/select"),
		hx.Target("#chat-body"),
		hx.Swap("outerHTML"),
		html.Aria("pressed", fmt.Sprintf("%t", selected)),
		html.Aria("label", "Select room "+room.Name),
		html.Class(classes),
		html.Span(html.Class("font-medium"), gomponents.Text(room.Name)),
	)
}

// ChatShell renders the right-hand pane: a placeholder when no room is
// selected, otherwise the header, the message area and the composer. The
// message area shows exactly one of four states, in priority order:
// loading, error, empty, list.
func ChatShell(data ChatData) gomponents.Node {
	snap := data.Snapshot
	if snap.SelectedRoom == nil {
		return html.Div(
			html.Class("flex-grow flex flex-col items-center justify-center bg-slate-50 p-4 text-center text-slate-700"),
			html.H2(html.Class("text-2xl font-semibold mb-2"), gomponents.Text("Welcome to the Chat!")),
			html.P(html.Class("text-slate-500"), gomponents.Text("Select a room from the sidebar to start chatting.")),
		)
	}

	return html.Div(
		html.Class("flex-grow flex flex-col bg-slate-50 h-full text-slate-900"),
		html.Header(
			html.Class("p-4 bg-white border-b border-slate-300 shadow-sm"),
			html.H2(html.Class("text-xl font-bold text-blue-500"), gomponents.Text(snap.SelectedRoom.Name)),
			html.P(
				html.Class("text-xs text-slate-500"),
				gomponents.Text(messageCount(len(snap.Messages))),
			),
		),
		html.Div(
			html.ID("message-scroll"),
			html.Class("flex-grow p-4 overflow-y-auto space-y-2"),
			messageArea(snap),
		),
		Composer(snap, data.Draft),
	)
}

func messageCount(n int) string {
	if n == 1 {
		return "1 message"
	}
	return fmt.Sprintf("%d messages", n)
}

func messageArea(snap app.Snapshot) gomponents.Node {
	switch {
	case snap.IsLoadingMessages:
		return html.Div(
			html.Class("flex justify-center items-center h-full"),
			Spinner("w-12 h-12"),
			html.P(html.Class("ml-3 text-slate-500"), gomponents.Text("Loading messages...")),
		)
	case snap.MessagesError != "":
		return html.Div(
			html.Class("flex flex-col justify-center items-center h-full text-center"),
			html.P(html.Class("text-red-500 text-lg mb-2"), gomponents.Text("Oops! Something went wrong.")),
			html.P(html.Class("text-slate-500"), gomponents.Text(snap.MessagesError)),
			html.P(html.Class("text-xs text-slate-400 mt-2"), gomponents.Text("Try selecting the room again.")),
		)
	case len(snap.Messages) == 0:
		return html.Div(
			html.Class("flex flex-col justify-center items-center h-full text-center"),
			html.P(html.Class("text-slate-500"), gomponents.Text("No messages in this room yet.")),
			html.P(html.Class("text-sm text-slate-400"), gomponents.Text("Be the first to say something!")),
		)
	default:
		var currentUser domain.User
		if snap.CurrentUser != nil {
			currentUser = *snap.CurrentUser
		}
		return gomponents.Group(gomponents.Map(snap.Messages, func(msg domain.Message) gomponents.Node {
			return MessageItem(msg, currentUser)
		}))
	}
}

// MessageItem renders a single message bubble, aligned right for the
// current user's own messages and left for everyone else's. The sender name
// is shown only on others' messages.
func MessageItem(msg domain.Message, currentUser domain.User) gomponents.Node {
	own := msg.Sender.ID == currentUser.ID

	wrapper := "flex mb-3 justify-start"
	bubble := "max-w-xs lg:max-w-md px-4 py-3 rounded-xl shadow bg-slate-200 text-slate-900 rounded-bl-none"
	stamp := "text-xs mt-1 text-slate-500 text-left"
	if own {
		wrapper = "flex mb-3 justify-end"
		bubble = "max-w-xs lg:max-w-md px-4 py-3 rounded-xl shadow bg-blue-500 text-white rounded-br-none"
		stamp = "text-xs mt-1 text-blue-200 text-right"
	}

	return html.Div(
		html.Class(wrapper),
		html.Div(
			html.Class(bubble),
			gomponents.If(!own,
				html.P(
					html.Class("text-xs font-semibold text-indigo-500 mb-1"),
					gomponents.Text(msg.Sender.Name),
				),
			),
			html.P(html.Class("text-sm break-words"), gomponents.Text(msg.Text)),
			html.P(html.Class(stamp), gomponents.Text(FormatTimestamp(msg.Timestamp))),
		),
	)
}

// FormatTimestamp renders a message timestamp as a local hour:minute string.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format("15:04")
}

// Composer renders the message input form. The draft survives a failed
// send; it is cleared only after a successful one. Submission of an empty
// draft is blocked by the required attribute, and the button is disabled
// while a send is in flight.
func Composer(snap app.Snapshot, draft string) gomponents.Node {
	return html.Form(
		hx.Post("/chat/messages"),
		hx.Target("#chat-body"),
		hx.Swap("outerHTML"),
		html.Class("p-4 bg-slate-100 border-t border-slate-300"),
		html.Div(
			html.Class("flex items-center gap-3"),
			html.Input(
				html.Type("text"),
				html.Name("text"),
				html.Value(draft),
				html.Placeholder("Type your message..."),
				html.Required(),
				gomponents.If(snap.IsSendingMessage, html.Disabled()),
				html.Class("flex-grow px-4 py-3 border border-slate-300 rounded-full bg-white text-slate-900 outline-none"),
			),
			html.Button(
				html.Type("submit"),
				gomponents.If(snap.IsSendingMessage, html.Disabled()),
				html.Class("bg-blue-500 hover:bg-blue-600 text-white font-semibold px-5 py-3 rounded-full disabled:opacity-60 disabled:cursor-not-allowed"),
				composerButtonLabel(snap.IsSendingMessage),
			),
		),
	)
}

func composerButtonLabel(sending bool) gomponents.Node {
	if sending {
		return Spinner("w-5 h-5")
	}
	return gomponents.Text("Send")
}

// Spinner renders a minimal loading indicator sized by the given classes.
func Spinner(size string) gomponents.Node {
	return html.Div(
		html.Class("animate-spin rounded-full border-2 border-current border-t-transparent "+size),
		html.Role("status"),
		html.Aria("label", "Loading"),
	)
}

// Package nav is the navigation state machine: which screen is active
// and which entity it is focused on. It is deliberately independent of
// both the entity store and the rendering layer, and is never
// persisted; a fresh process always starts at Home.
package nav

// Screen identifies the active screen.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenPostDetail
	ScreenCreatePost
	ScreenMessages
)

// String returns a short name for logging.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenPostDetail:
		return "post"
	case ScreenCreatePost:
		return "create"
	case ScreenMessages:
		return "dm"
	default:
		return "unknown"
	}
}

// Machine tracks the active screen plus the focused post and the
// selected conversation. The conversation selection outlives the
// Messages screen: leaving and re-entering keeps it.
type Machine struct {
	screen  Screen
	postID  int64
	convoID string
}

// New returns a machine at the initial Home state.
func New() *Machine {
	return &Machine{screen: ScreenHome}
}

// Current returns the active screen.
func (m *Machine) Current() Screen {
	return m.screen
}

// PostID returns the post focused by the detail screen.
func (m *Machine) PostID() int64 {
	return m.postID
}

// ConversationID returns the selected conversation, or "" when none has
// been selected yet this session.
func (m *Machine) ConversationID() string {
	return m.convoID
}

// OpenPost focuses a post from the feed. Only valid from Home; ignored
// elsewhere.
func (m *Machine) OpenPost(id int64) {
	if m.screen != ScreenHome {
		return
	}
	m.postID = id
	m.screen = ScreenPostDetail
}

// ComposePost opens the new-post form. Only valid from Home.
func (m *Machine) ComposePost() {
	if m.screen != ScreenHome {
		return
	}
	m.screen = ScreenCreatePost
}

// FinishCompose leaves the new-post form, whether it was submitted or
// cancelled.
func (m *Machine) FinishCompose() {
	if m.screen != ScreenCreatePost {
		return
	}
	m.screen = ScreenHome
}

// Back returns to Home from the post detail or messages screen.
func (m *Machine) Back() {
	switch m.screen {
	case ScreenPostDetail, ScreenMessages:
		m.screen = ScreenHome
	}
}

// OpenMessages switches to the messages screen from any state. An empty
// id keeps whatever conversation was previously selected.
func (m *Machine) OpenMessages(id string) {
	if id != "" {
		m.convoID = id
	}
	m.screen = ScreenMessages
}

// SelectConversation changes the selected conversation in place. Only
// meaningful on the messages screen but harmless anywhere: the
// selection simply carries over to the next OpenMessages.
func (m *Machine) SelectConversation(id string) {
	if id != "" {
		m.convoID = id
	}
}

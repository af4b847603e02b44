package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bandlink/internal/app"
	"bandlink/internal/nav"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// rootModel owns the navigation machine and swaps one sub-model per
// screen. Sub-models talk to the entity store directly; only the root
// drives navigation transitions.
type rootModel struct {
	app *app.App
	nav *nav.Machine

	width  int
	height int

	feed    *feedModel
	post    *postModel
	compose *composeModel
	dm      *dmModel
}

func NewRootModel(a *app.App) tea.Model {
	m := &rootModel{app: a, nav: nav.New()}
	m.feed = newFeedModel(a)
	return m
}

func (m *rootModel) Init() tea.Cmd {
	return nil
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.feed.SetSize(msg.Width, msg.Height-2)
		if m.post != nil {
			m.post.SetSize(msg.Width, msg.Height-2)
		}
		if m.compose != nil {
			m.compose.SetSize(msg.Width, msg.Height-2)
		}
		if m.dm != nil {
			m.dm.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	switch m.nav.Current() {
	case nav.ScreenHome:
		return m.updateHome(msg)
	case nav.ScreenPostDetail:
		return m.updatePost(msg)
	case nav.ScreenCreatePost:
		return m.updateCompose(msg)
	case nav.ScreenMessages:
		return m.updateMessages(msg)
	}
	return m, nil
}

func (m *rootModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.feed.Update(msg)

	switch {
	case m.feed.Quit:
		return m, tea.Quit
	case m.feed.OpenPostID != 0:
		id := m.feed.OpenPostID
		m.feed.OpenPostID = 0
		m.nav.OpenPost(id)
		m.post = newPostModel(m.app, id)
		m.post.SetSize(m.width, m.height-2)
	case m.feed.ComposeRequested:
		m.feed.ComposeRequested = false
		m.nav.ComposePost()
		m.compose = newComposeModel()
		m.compose.SetSize(m.width, m.height-2)
	case m.feed.MessagesRequested:
		m.feed.MessagesRequested = false
		m.openMessages("")
	}
	return m, cmd
}

func (m *rootModel) updatePost(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.post == nil {
		m.nav.Back()
		return m, nil
	}
	cmd := m.post.Update(msg)

	switch {
	case m.post.Done:
		m.post = nil
		m.nav.Back()
		m.feed.Reload()
	case m.post.MessagesRequested:
		m.post.MessagesRequested = false
		m.post = nil
		m.openMessages("")
	}
	return m, cmd
}

func (m *rootModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.compose == nil {
		m.nav.FinishCompose()
		return m, nil
	}
	cmd := m.compose.Update(msg)

	if m.compose.Done {
		if m.compose.Submitted {
			m.app.Store.CreatePost(m.compose.TitleValue(), m.compose.BodyValue())
		}
		m.compose = nil
		m.nav.FinishCompose()
		m.feed.Reload()
	}
	return m, cmd
}

func (m *rootModel) updateMessages(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dm == nil {
		m.dm = newDMModel(m.app, m.nav.ConversationID())
		m.dm.SetSize(m.width, m.height-2)
	}
	cmd := m.dm.Update(msg)

	// Keep the machine's selection current so it survives leaving and
	// re-entering the messages screen.
	m.nav.SelectConversation(m.dm.SelectedID())

	if m.dm.Done {
		m.dm = nil
		m.nav.Back()
		m.feed.Reload()
	}
	return m, cmd
}

// openMessages enters the DM screen. With no explicit target and no
// prior selection this session, the most recent conversation is
// selected.
func (m *rootModel) openMessages(id string) {
	m.nav.OpenMessages(id)
	if m.nav.ConversationID() == "" {
		if convos := m.app.Store.Conversations(); len(convos) > 0 {
			m.nav.SelectConversation(convos[0].ID)
		}
	}
	m.dm = newDMModel(m.app, m.nav.ConversationID())
	m.dm.SetSize(m.width, m.height-2)
}

func (m *rootModel) View() string {
	header := titleStyle.Render("Bandlink") + subtleStyle.Render("  Find bandmates. Share posts. DM easily.")

	var body string
	switch m.nav.Current() {
	case nav.ScreenHome:
		body = m.feed.View()
	case nav.ScreenPostDetail:
		if m.post != nil {
			body = m.post.View()
		}
	case nav.ScreenCreatePost:
		if m.compose != nil {
			body = m.compose.View()
		}
	case nav.ScreenMessages:
		if m.dm != nil {
			body = m.dm.View()
		}
	}

	return header + "\n" + body
}

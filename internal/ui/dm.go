package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"bandlink/internal/app"
	"bandlink/internal/store"
)

var (
	convoSelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	localMsgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

type dmState int

const (
	dmStateChat dmState = iota
	dmStateNew
)

// dmModel is the direct-messages screen: a conversation sidebar, the
// transcript of the selected conversation, and a send box. Starting a
// new conversation opens a form; on submit the new thread becomes the
// selection.
type dmModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state      dmState
	selectedID string

	convos []store.Conversation
	vp     viewport.Model
	input  textinput.Model

	form     *huh.Form
	err      error
	newWith  string
	newText  string
	newStart bool
}

func newDMModel(a *app.App, selectedID string) *dmModel {
	input := textinput.New()
	input.Placeholder = "Write a message..."
	input.CharLimit = 500
	input.Focus()

	m := &dmModel{
		app:        a,
		selectedID: selectedID,
		input:      input,
		vp:         viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// SelectedID reports the current conversation so the root can mirror it
// into the navigation machine.
func (m *dmModel) SelectedID() string {
	return m.selectedID
}

func (m *dmModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.input.Width = m.mainWidth() - 4
	m.vp.Width = m.mainWidth()
	m.vp.Height = max(3, h-6)
	m.refresh()
}

func (m *dmModel) sidebarWidth() int {
	return max(18, m.width/4)
}

func (m *dmModel) mainWidth() int {
	return max(24, m.width-m.sidebarWidth()-2)
}

// refresh re-snapshots the conversations and rebuilds the transcript.
// An empty or stale selection falls back to the most recent thread.
func (m *dmModel) refresh() {
	m.convos = m.app.Store.Conversations()
	if len(m.convos) == 0 {
		m.selectedID = ""
		m.vp.SetContent("")
		return
	}

	if _, ok := m.current(); !ok {
		m.selectedID = m.convos[0].ID
	}

	conv, _ := m.current()
	var b strings.Builder
	user := m.app.Store.User()
	now := time.Now()
	for _, msg := range conv.Messages {
		header := fmt.Sprintf("%s, %s ago", msg.From, timeAgo(msg.At, now))
		line := subtleStyle.Render(header) + "\n" + msg.Text + "\n"
		if msg.From == user {
			line = subtleStyle.Render(header) + "\n" + localMsgStyle.Render(msg.Text) + "\n"
		}
		b.WriteString(line + "\n")
	}
	m.vp.SetContent(b.String())
	m.vp.GotoBottom()
}

func (m *dmModel) current() (store.Conversation, bool) {
	for _, c := range m.convos {
		if c.ID == m.selectedID {
			return c, true
		}
	}
	return store.Conversation{}, false
}

func (m *dmModel) Update(msg tea.Msg) tea.Cmd {
	if m.state == dmStateNew {
		return m.updateNewForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.Done = true
			return nil
		case "ctrl+n":
			m.openNewForm()
			return nil
		case "tab":
			m.cycle(1)
			return nil
		case "shift+tab":
			m.cycle(-1)
			return nil
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" && m.selectedID != "" {
				m.app.Store.SendMessage(m.selectedID, text)
				m.input.SetValue("")
				m.refresh()
			}
			return nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// cycle moves the selection through the sidebar in display order.
func (m *dmModel) cycle(dir int) {
	if len(m.convos) == 0 {
		return
	}
	idx := 0
	for i, c := range m.convos {
		if c.ID == m.selectedID {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(m.convos)) % len(m.convos)
	m.selectedID = m.convos[idx].ID
	m.refresh()
}

func (m *dmModel) openNewForm() {
	user := m.app.Store.User()
	others := lo.Filter(m.app.Config.Identity.KnownUsers, func(u string, _ int) bool {
		return u != user
	})
	if len(others) == 0 {
		return
	}

	m.newWith = others[0]
	m.newText = ""
	m.newStart = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("To").Options(huh.NewOptions(others...)...).Value(&m.newWith),
			huh.NewInput().Title("Say hi...").Value(&m.newText).Validate(nonEmpty("message")),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Start conversation?").Value(&m.newStart),
		),
	)
	m.state = dmStateNew
}

func (m *dmModel) updateNewForm(msg tea.Msg) tea.Cmd {
	if m.err != nil {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if msg.String() == "esc" || msg.String() == "q" || msg.String() == "enter" {
				m.err = nil
				m.state = dmStateChat
			}
		}
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.state = dmStateChat
		return nil
	}

	updated, cmd := m.form.Update(msg)
	f, ok := updated.(*huh.Form)
	if !ok {
		m.err = fmt.Errorf("internal error: unexpected form model type")
		return nil
	}
	m.form = f

	if m.form.State == huh.StateCompleted {
		if m.newStart {
			if c, ok := m.app.Store.StartConversation(m.newWith, m.newText); ok {
				m.selectedID = c.ID
			}
		}
		m.state = dmStateChat
		m.refresh()
		return nil
	}

	return cmd
}

func (m *dmModel) View() string {
	if m.state == dmStateNew {
		if m.err != nil {
			return fmt.Sprintf("New conversation error: %v\n\nPress Enter/Esc to go back.", m.err)
		}
		return m.form.View() + "\n" + hintStyle.Render("(esc to cancel)")
	}

	if len(m.convos) == 0 {
		return "No conversations. Start one with ctrl+n.\n\n" +
			hintStyle.Render("(ctrl+n new conversation, esc back)")
	}

	sidebar := m.viewSidebar()
	main := m.viewMain()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
	return body + "\n" + hintStyle.Render("(tab next conversation, ctrl+n new, enter send, esc back)")
}

func (m *dmModel) viewSidebar() string {
	user := m.app.Store.User()
	w := m.sidebarWidth()
	now := time.Now()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Conversations") + "\n")
	for _, c := range m.convos {
		name := c.Other(user)
		preview := ""
		if last, ok := c.LastMessage(); ok {
			preview = fmt.Sprintf("%s (%s)", last.Text, timeAgo(last.At, now))
		}
		if len(preview) > w-2 {
			preview = preview[:w-5] + "..."
		}
		line := name + "\n" + subtleStyle.Render(preview)
		if c.ID == m.selectedID {
			line = convoSelStyle.Render(name) + "\n" + subtleStyle.Render(preview)
		}
		b.WriteString(line + "\n")
	}
	return lipgloss.NewStyle().Width(w).Render(b.String())
}

func (m *dmModel) viewMain() string {
	conv, ok := m.current()
	if !ok {
		return ""
	}
	header := titleStyle.Render("Chat with " + conv.Other(m.app.Store.User()))
	return header + "\n" + m.vp.View() + "\n" + m.input.View()
}

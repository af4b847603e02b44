package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"bandlink/internal/app"
	"bandlink/internal/store"
)

// feedModel is the home screen: a searchable post feed with inline
// voting. It reports requested transitions through exported fields the
// root model consumes after each Update.
type feedModel struct {
	app *app.App

	width  int
	height int

	search    textinput.Model
	searching bool
	list      list.Model

	Quit              bool
	OpenPostID        int64
	ComposeRequested  bool
	MessagesRequested bool
}

type postItem struct {
	post store.Post
}

func (i postItem) Title() string { return i.post.Title }
func (i postItem) Description() string {
	return fmt.Sprintf("%d votes, by %s, %s ago",
		i.post.Votes, i.post.Author, timeAgo(i.post.CreatedAt, time.Now()))
}
func (i postItem) FilterValue() string { return i.post.Title }

func newFeedModel(a *app.App) *feedModel {
	search := textinput.New()
	search.Placeholder = "Search posts or tags"
	search.CharLimit = 120

	m := &feedModel{app: a, search: search}
	m.Reload()
	return m
}

func (m *feedModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.search.Width = w - 4
	m.list.SetSize(w, h-3)
}

// Reload rebuilds the list from the current store snapshot, filtered by
// the search query, keeping the cursor near its old position.
func (m *feedModel) Reload() {
	posts := m.app.Store.SearchPosts(m.search.Value())

	items := make([]list.Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, postItem{post: p})
	}

	idx := m.list.Index()
	m.list = list.New(items, list.NewDefaultDelegate(), m.width, m.height-3)
	m.list.Title = "Feed"
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowHelp(false)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx > 0 {
		m.list.Select(idx)
	}
}

func (m *feedModel) Update(msg tea.Msg) tea.Cmd {
	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			m.searching = true
			return m.search.Focus()
		case "n":
			m.ComposeRequested = true
			return nil
		case "m":
			m.MessagesRequested = true
			return nil
		case "q":
			m.Quit = true
			return nil
		case "u", "+":
			m.voteSelected(1)
			return nil
		case "d", "-":
			m.voteSelected(-1)
			return nil
		case "enter":
			if it, ok := m.list.SelectedItem().(postItem); ok {
				m.OpenPostID = it.post.ID
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *feedModel) updateSearch(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.searching = false
			m.Reload()
			return nil
		case "enter":
			m.search.Blur()
			m.searching = false
			return nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.Reload()
	return cmd
}

func (m *feedModel) View() string {
	view := m.search.View() + "\n" + m.list.View()
	if len(m.list.Items()) == 0 {
		view += "\n" + subtleStyle.Render("No posts yet. Be the first to create one.")
	}
	hints := "(/ search, enter open, u/d vote, n new post, m messages, q quit)"
	if m.searching {
		hints = "(enter apply, esc clear)"
	}
	return view + "\n" + hintStyle.Render(hints)
}

func (m *feedModel) voteSelected(delta int) {
	it, ok := m.list.SelectedItem().(postItem)
	if !ok {
		return
	}
	m.app.Store.VotePost(it.post.ID, delta)
	m.Reload()
}

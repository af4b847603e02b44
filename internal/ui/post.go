package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bandlink/internal/app"
	"bandlink/internal/store"
)

// postModel is the post detail screen.
type postModel struct {
	app *app.App

	width  int
	height int

	Done              bool
	MessagesRequested bool

	post  store.Post
	found bool
}

func newPostModel(a *app.App, id int64) *postModel {
	m := &postModel{app: a}
	m.post, m.found = a.Store.Post(id)
	return m
}

func (m *postModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

func (m *postModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			m.Done = true
		case "m":
			m.MessagesRequested = true
		case "u", "+":
			m.vote(1)
		case "d", "-":
			m.vote(-1)
		}
	}
	return nil
}

func (m *postModel) vote(delta int) {
	if !m.found {
		return
	}
	m.app.Store.VotePost(m.post.ID, delta)
	m.post, m.found = m.app.Store.Post(m.post.ID)
}

func (m *postModel) View() string {
	if !m.found {
		return "Post not found.\n\n" + hintStyle.Render("(esc back)")
	}

	body := lipgloss.NewStyle().Width(max(20, m.width-4)).Render(m.post.Body)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s",
		titleStyle.Render(m.post.Title),
		subtleStyle.Render(fmt.Sprintf("by %s, %s ago", m.post.Author, timeAgo(m.post.CreatedAt, time.Now()))),
		body,
		fmt.Sprintf("%d votes", m.post.Votes),
		hintStyle.Render("(u upvote, d downvote, m messages, esc back)"),
	)
}

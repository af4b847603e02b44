package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// composeModel is the new-post form. The store is never called with an
// empty title or body: the form refuses to complete until both
// validators pass, and cancelling sets Submitted to false.
type composeModel struct {
	width  int
	height int

	Done      bool
	Submitted bool

	form *huh.Form
	err  error

	title string
	body  string
	post  bool
}

func newComposeModel() *composeModel {
	m := &composeModel{}
	m.form = buildComposeForm(&m.title, &m.body, &m.post)
	return m
}

func buildComposeForm(title, body *string, post *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(title).Validate(nonEmpty("title")),
			huh.NewText().Title("Body").Placeholder("Write something to the community...").
				Value(body).Validate(nonEmpty("body")),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Post it?").Value(post),
		),
	)
}

func (m *composeModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

func (m *composeModel) TitleValue() string { return strings.TrimSpace(m.title) }
func (m *composeModel) BodyValue() string  { return strings.TrimSpace(m.body) }

func (m *composeModel) Update(msg tea.Msg) tea.Cmd {
	if m.err != nil {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if msg.String() == "esc" || msg.String() == "q" || msg.String() == "enter" {
				m.Done = true
			}
		}
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.Done = true
		m.Submitted = false
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
		m.Submitted = m.post && m.TitleValue() != "" && m.BodyValue() != ""
		m.Done = true
		return nil
	}

	return cmd
}

func (m *composeModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("New post error: %v\n\nPress Enter/Esc to go back.", m.err)
	}
	return m.form.View() + "\n" + hintStyle.Render("(esc to cancel)")
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

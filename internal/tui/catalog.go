package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/pinestore/pkg/client"
	"github.com/naveenspark/pinestore/pkg/domain"
)

// projectsLoadedMsg carries a catalog listing. query is empty for the full
// catalog and set for search results.
type projectsLoadedMsg struct {
	query    string
	projects []domain.Project
	err      error
}

// showDetailMsg opens the detail view for a project.
type showDetailMsg struct {
	project domain.Project
}

// projectItem adapts a project to bubbles/list.
type projectItem struct {
	project domain.Project
}

func (i projectItem) Title() string { return i.project.Name }

func (i projectItem) Description() string {
	desc := fmt.Sprintf("by %s · ↓%s · ♥%s", i.project.OwnerName,
		formatCount(i.project.Downloads), formatCount(i.project.Likes))
	if i.project.DescriptionShort != "" {
		desc += " · " + cleanLine(i.project.DescriptionShort)
	}
	return desc
}

func (i projectItem) FilterValue() string { return i.project.Name }

type catalogModel struct {
	client    *client.Client
	list      list.Model
	searching bool
	input     string // search text being typed
	active    string // query whose results are displayed
	loading   bool
	err       string
	frame     int
	width     int
	height    int
}

func newCatalogModel(c *client.Client) catalogModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Projects"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return catalogModel{client: c, list: l, loading: true}
}

func (m catalogModel) Init() tea.Cmd {
	return m.load(m.active)
}

func (m catalogModel) load(query string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		var (
			projects []domain.Project
			err      error
		)
		if query == "" {
			projects, err = c.FetchProjects(context.Background())
		} else {
			projects, err = c.SearchProjects(context.Background(), query)
		}
		return projectsLoadedMsg{query: query, projects: projects, err: err}
	}
}

func (m catalogModel) selected() (domain.Project, bool) {
	item, ok := m.list.SelectedItem().(projectItem)
	if !ok {
		return domain.Project{}, false
	}
	return item.project, true
}

func (m catalogModel) Update(msg tea.Msg) (catalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.query != m.active {
			return m, nil // stale response for an earlier query
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		items := make([]list.Item, 0, len(msg.projects))
		for _, p := range msg.projects {
			items = append(items, projectItem{project: p})
		}
		if m.active == "" {
			m.list.Title = "Projects"
		} else {
			m.list.Title = fmt.Sprintf("Search: %s", m.active)
		}
		cmd := m.list.SetItems(items)
		m.list.ResetSelected()
		return m, cmd

	case shimmerTickMsg:
		m.frame++
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// One line for the search input.
		m.list.SetSize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.active = m.input
				m.loading = true
				return m, m.load(m.active)
			case "esc":
				m.searching = false
				m.input = m.active
			default:
				m.input = editRune(m.input, msg.String())
			}
			return m, nil
		}

		switch msg.String() {
		case "/":
			m.searching = true
			return m, nil
		case "r":
			m.loading = true
			return m, m.load(m.active)
		case "esc":
			if m.active != "" {
				m.active = ""
				m.input = ""
				m.loading = true
				return m, m.load("")
			}
			return m, nil
		case "enter":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return showDetailMsg{project: p} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m catalogModel) View() string {
	search := renderSearchInput(m.input, m.searching, m.frame)
	switch {
	case m.err != "":
		return search + "\n\n " + errorStyle.Render("error: "+m.err) + "\n " + dimStyle.Render("press r to retry")
	case m.loading && len(m.list.Items()) == 0:
		return search + "\n\n " + dimStyle.Render("loading...")
	}
	return search + "\n" + m.list.View()
}

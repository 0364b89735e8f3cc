package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/pinestore/pkg/client"
	"github.com/naveenspark/pinestore/pkg/domain"
)

type peekUserMsg struct {
	discordID string
	user      *domain.User
	err       error
}

type peekProjectsMsg struct {
	discordID string
	projects  []domain.Project
	err       error
}

type peekModel struct {
	client    *client.Client
	discordID string
	user      *domain.User
	projects  []domain.Project
	closed    bool
	status    string
	err       string
	projErr   string
	width     int
}

func newPeekModel(c *client.Client, discordID string) peekModel {
	return peekModel{client: c, discordID: discordID}
}

func (m peekModel) load() tea.Cmd {
	c := m.client
	id := m.discordID
	userCmd := func() tea.Msg {
		u, err := c.FetchUser(context.Background(), id)
		return peekUserMsg{discordID: id, user: u, err: err}
	}
	projectsCmd := func() tea.Msg {
		ps, err := c.FetchUserProjects(context.Background(), id)
		return peekProjectsMsg{discordID: id, projects: ps, err: err}
	}
	return tea.Batch(userCmd, projectsCmd)
}

func (m peekModel) Update(msg tea.Msg) (peekModel, tea.Cmd) {
	switch msg := msg.(type) {
	case peekUserMsg:
		if msg.discordID != m.discordID {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.user = msg.user
		}
		return m, nil

	case peekProjectsMsg:
		if msg.discordID != m.discordID {
			return m, nil
		}
		if msg.err != nil {
			m.projErr = msg.err.Error()
		} else {
			m.projects = msg.projects
		}
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = msg.text
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "esc", "q":
			m.closed = true
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.user == nil {
				return m, nil
			}
			idx := int(key[0] - '1')
			if idx < len(m.user.Connections) {
				return m, openCmd(m.user.Connections[idx].Link)
			}
		}
	}
	return m, nil
}

func (m peekModel) View() string {
	if m.err != "" {
		return "\n " + dimStyle.Render("peek error: "+m.err)
	}
	if m.user == nil {
		return "\n " + dimStyle.Render("loading...")
	}

	cardWidth := min(60, m.width-4)
	if cardWidth < 30 {
		cardWidth = 30
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Background(surfaceColor).
		Padding(1, 2).
		Width(cardWidth)

	var sb strings.Builder
	sb.WriteString(RenderUser(*m.user, cardWidth-6))

	switch {
	case m.projErr != "":
		sb.WriteString("\n" + sectionHeaderStyle.Render("── PROJECTS ──") + "\n")
		sb.WriteString("  " + errorStyle.Render("error: "+m.projErr) + "\n")
	case len(m.projects) > 0:
		sb.WriteString("\n" + sectionHeaderStyle.Render("── PROJECTS ──") + "\n")
		for _, p := range m.projects {
			sb.WriteString("  " + normalStyle.Render(p.Name) + "  " + projectStats(p) + "\n")
		}
	}

	if m.status != "" {
		sb.WriteString("\n" + metaStyle.Render(m.status) + "\n")
	}

	sb.WriteString("\n")
	if len(m.user.Connections) > 0 {
		sb.WriteString(helpEntry("1-9", "open link") + "  ")
	}
	sb.WriteString(helpEntry("esc", "close"))

	return "\n" + border.Render(sb.String())
}

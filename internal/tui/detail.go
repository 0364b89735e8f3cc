package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/pinestore/internal/browser"
	"github.com/naveenspark/pinestore/pkg/client"
	"github.com/naveenspark/pinestore/pkg/domain"
)

// Side effects, swapped out in tests.
var (
	writeClipboard = clipboard.WriteAll
	openURL        = browser.Open
)

type changelogLoadedMsg struct {
	projectID int64
	changelog *domain.Changelog
	err       error
}

type commentsLoadedMsg struct {
	projectID int64
	comments  []domain.Comment
	err       error
}

// statusMsg reports the outcome of a copy/open action.
type statusMsg struct {
	text string
	err  error
}

// showPeekMsg triggers the owner peek overlay.
type showPeekMsg struct {
	discordID string
}

type detailModel struct {
	client        *client.Client
	project       domain.Project
	changelog     *domain.Changelog
	changelogDone bool
	changelogErr  string
	comments      []domain.Comment
	commentsDone  bool
	commentsErr   string
	status        string
	scroll        int
	closed        bool
	width         int
	height        int
}

func newDetailModel(c *client.Client, p domain.Project) detailModel {
	return detailModel{client: c, project: p}
}

func (m detailModel) load() tea.Cmd {
	c := m.client
	id := m.project.ID
	changelogCmd := func() tea.Msg {
		cl, err := c.FetchChangelog(context.Background(), id)
		return changelogLoadedMsg{projectID: id, changelog: cl, err: err}
	}
	commentsCmd := func() tea.Msg {
		cs, err := c.FetchComments(context.Background(), id)
		return commentsLoadedMsg{projectID: id, comments: cs, err: err}
	}
	return tea.Batch(changelogCmd, commentsCmd)
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: "copied install command"}
	}
}

func openCmd(target string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(target); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: "opened " + target}
	}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case changelogLoadedMsg:
		if msg.projectID != m.project.ID {
			return m, nil
		}
		m.changelogDone = true
		switch {
		case client.IsNotFound(msg.err):
			// Projects without release notes answer 404.
		case msg.err != nil:
			m.changelogErr = msg.err.Error()
		default:
			m.changelog = msg.changelog
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.projectID != m.project.ID {
			return m, nil
		}
		m.commentsDone = true
		if msg.err != nil {
			m.commentsErr = msg.err.Error()
		} else {
			m.comments = msg.comments
		}
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(msg.err.Error())
		} else {
			m.status = accentStyle.Render(msg.text)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			m.closed = true
		case "j", "down":
			m.scroll++
		case "k", "up":
			if m.scroll > 0 {
				m.scroll--
			}
		case "c":
			if m.project.InstallCommand == "" {
				m.status = dimStyle.Render("no install command")
				return m, nil
			}
			return m, copyCmd(m.project.InstallCommand)
		case "o":
			if m.project.Repository == "" {
				m.status = dimStyle.Render("no repository")
				return m, nil
			}
			return m, openCmd(m.project.Repository)
		case "u":
			id := m.project.OwnerDiscord
			return m, func() tea.Msg { return showPeekMsg{discordID: id} }
		}
	}
	return m, nil
}

func (m detailModel) content() string {
	width := min(max(m.width-2, 20), 100)

	var b strings.Builder
	b.WriteString(RenderProject(m.project, width))

	b.WriteString("\n" + sectionHeaderStyle.Render("── LATEST CHANGELOG ──") + "\n")
	switch {
	case !m.changelogDone:
		b.WriteString(dimStyle.Render("loading...") + "\n")
	case m.changelogErr != "":
		b.WriteString(errorStyle.Render("error: "+m.changelogErr) + "\n")
	case m.changelog == nil:
		b.WriteString(dimStyle.Render("no changelog") + "\n")
	default:
		b.WriteString(RenderChangelog(*m.changelog, width))
	}

	b.WriteString("\n" + sectionHeaderStyle.Render("── COMMENTS ──") + "\n")
	switch {
	case !m.commentsDone:
		b.WriteString(dimStyle.Render("loading...") + "\n")
	case m.commentsErr != "":
		b.WriteString(errorStyle.Render("error: "+m.commentsErr) + "\n")
	default:
		b.WriteString(RenderComments(m.comments, width))
	}
	return b.String()
}

func (m detailModel) View() string {
	lines := strings.Split(m.content(), "\n")
	start := min(m.scroll, max(len(lines)-1, 0))
	body := strings.Join(lines[start:], "\n")
	if m.status != "" {
		body = m.status + "\n" + body
	}
	return body
}

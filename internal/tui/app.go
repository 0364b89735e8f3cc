package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/pinestore/pkg/client"
)

type view int

const (
	viewCatalog view = iota
	viewDetail
)

// App is the root Bubbletea model for the catalog browser.
type App struct {
	client     *client.Client
	version    string
	view       view
	catalog    catalogModel
	detail     detailModel
	peek       peekModel
	peekOpen   bool
	helpOpen   bool
	helpCursor int
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates a new TUI application.
func NewApp(c *client.Client, version string) App {
	return App{
		client:  c,
		version: version,
		catalog: newCatalogModel(c),
	}
}

// Run starts the browser in the alternate screen and blocks until it quits.
func Run(c *client.Client, version string) error {
	p := tea.NewProgram(NewApp(c, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.catalog.Init(), shimmerTickCmd())
}

// bodySize is the area left for the active view after the chrome:
// header(2) + help(1).
func (a App) bodySize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(a.height-3, 1)}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		body := a.bodySize()
		a.catalog, _ = a.catalog.Update(body)
		a.detail, _ = a.detail.Update(body)
		a.peek, _ = a.peek.Update(body)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		a.catalog, _ = a.catalog.Update(msg)
		return a, shimmerTickCmd()

	case showDetailMsg:
		a.view = viewDetail
		a.detail = newDetailModel(a.client, msg.project)
		a.detail, _ = a.detail.Update(a.bodySize())
		return a, a.detail.load()

	case showPeekMsg:
		a.peekOpen = true
		a.peek = newPeekModel(a.client, msg.discordID)
		a.peek, _ = a.peek.Update(a.bodySize())
		return a, a.peek.load()

	case projectsLoadedMsg:
		var cmd tea.Cmd
		a.catalog, cmd = a.catalog.Update(msg)
		return a, cmd

	case changelogLoadedMsg, commentsLoadedMsg:
		a.detail, _ = a.detail.Update(msg)
		return a, nil

	case peekUserMsg, peekProjectsMsg:
		a.peek, _ = a.peek.Update(msg)
		return a, nil

	case statusMsg:
		if a.peekOpen {
			a.peek, _ = a.peek.Update(msg)
		} else {
			a.detail, _ = a.detail.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				return a, openCmd(helpItems[a.helpCursor].url)
			}
			return a, nil
		}

		// Peek overlay captures all keys when open
		if a.peekOpen {
			var cmd tea.Cmd
			a.peek, cmd = a.peek.Update(msg)
			if a.peek.closed {
				a.peekOpen = false
			}
			return a, cmd
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.isEditing() {
			switch msg.String() {
			case "?":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q":
				return a, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewCatalog:
		a.catalog, cmd = a.catalog.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
		if a.detail.closed {
			a.view = viewCatalog
		}
	}
	return a, cmd
}

func (a App) isEditing() bool {
	return a.view == viewCatalog && a.catalog.searching
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	logoPad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", logoPad) + logo

	var parts []string
	if a.client != nil {
		parts = append(parts, a.client.BaseURL())
	}
	if a.version != "" {
		parts = append(parts, a.version)
	}
	sub := metaStyle.Render(strings.Join(parts, " · "))
	subPad := max((a.width-lipgloss.Width(sub))/2, 0)
	header += "\n" + strings.Repeat(" ", subPad) + sub

	var body, help string
	switch a.view {
	case viewCatalog:
		body = a.catalog.View()
		if a.catalog.searching {
			help = " " + helpEntry("enter", "search") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("/", "search") +
				"  " + helpEntry("r", "reload") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
		}
	case viewDetail:
		body = a.detail.View()
		help = " " + helpEntry("j/k", "scroll") + "  " + helpEntry("c", "copy install") + "  " + helpEntry("o", "repo") +
			"  " + helpEntry("u", "owner") + "  " + helpEntry("esc", "back")
	}

	if a.peekOpen {
		body = a.peek.View()
		help = " " + helpEntry("esc", "close")
	}

	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	body = strings.TrimRight(truncateToHeight(body, a.height-3), "\n")
	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}

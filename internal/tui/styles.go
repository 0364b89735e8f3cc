package tui

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the PINESTORE logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "PINESTORE" as a slow wave of pine green light.
// Deep needle green (#143024) -> bright sap (#5fd68a).
func renderShimmerLogo(frame int) string {
	const text = "PINESTORE"
	n := len(text)

	var b strings.Builder
	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		br := math.Sin(phase)*0.5 + 0.5
		br = math.Pow(br, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		br = br*0.75 + tide + 0.18

		if br > 1.0 {
			br = 1.0
		} else if br < 0.05 {
			br = 0.05
		}

		r := clampByte(20 + br*(95-20))
		g := clampByte(48 + br*(214-48))
		bl := clampByte(36 + br*(138-36))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color)).
			Render(string(text[i])))

		if i < n-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fd68a")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d474"))

	likeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06080"))

	downloadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a0e0"))

	installStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	borderColor  = lipgloss.Color("#1e2a22")
	surfaceColor = lipgloss.Color("#111814")

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	commentAuthorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5fd68a"))

	commentTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a0a4b0"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#34d474")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))
)

// tagPalette colors catalog tags. Tags are free-form, so a tag's color is
// picked by hashing its name.
var tagPalette = []lipgloss.Color{
	lipgloss.Color("#e06060"),
	lipgloss.Color("#b080d0"),
	lipgloss.Color("#f0944a"),
	lipgloss.Color("#d4a844"),
	lipgloss.Color("#60a0e0"),
	lipgloss.Color("#3ecce4"),
	lipgloss.Color("#c084e0"),
	lipgloss.Color("#5fd68a"),
}

// TagStyle returns the style for a project tag. The same tag always gets
// the same color.
func TagStyle(tag string) lipgloss.Style {
	if tag == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
	}
	h := fnv.New32a()
	h.Write([]byte(tag)) //nolint:errcheck // hash writes never fail
	return lipgloss.NewStyle().Foreground(tagPalette[h.Sum32()%uint32(len(tagPalette))]).Bold(true)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Website", "pinestore.cc", "https://pinestore.cc"},
	{"Browse projects", "pinestore.cc/projects", "https://pinestore.cc/projects"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5fd68a")).
		Bold(true).
		Render("P I N E S T O R E")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5fd68a"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	keys := []struct{ key, desc string }{
		{"/", "Search the catalog"},
		{"enter", "Open the selected project"},
		{"c", "Copy the install command"},
		{"o", "Open the repository in a browser"},
		{"u", "Peek at the project owner"},
		{"r", "Reload"},
		{"esc", "Back"},
		{"q", "Quit"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Keys"))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-8s", k.key)), descStyle.Render(k.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = selectedStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/pinestore/pkg/domain"
)

// now is replaced in tests for stable relative times.
var now = time.Now

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func renderTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, TagStyle(t).Render("#"+t))
	}
	return strings.Join(parts, " ")
}

func projectStats(p domain.Project) string {
	return downloadStyle.Render("↓"+formatCount(p.Downloads)) + "  " +
		likeStyle.Render("♥"+formatCount(p.Likes)) + "  " +
		dimStyle.Render(formatCount(p.Views)+" views")
}

// RenderProjectRow renders a project as a single summary line.
func RenderProjectRow(p domain.Project, width int) string {
	head := fmt.Sprintf("%s %s  %s",
		metaStyle.Render(fmt.Sprintf("#%-5d", p.ID)),
		selectedStyle.Render(p.Name),
		dimStyle.Render("by "+p.OwnerName))
	row := head + "  " + projectStats(p)
	if p.DescriptionShort != "" {
		room := width - lipgloss.Width(row) - 3
		if width <= 0 {
			room = 60
		}
		if room > 8 {
			row += "  " + normalStyle.Render(truncStr(cleanLine(p.DescriptionShort), room))
		}
	}
	return row
}

// RenderProjectList renders one RenderProjectRow per line.
func RenderProjectList(ps []domain.Project, width int) string {
	if len(ps) == 0 {
		return dimStyle.Render("no projects") + "\n"
	}
	var b strings.Builder
	for _, p := range ps {
		b.WriteString(RenderProjectRow(p, width) + "\n")
	}
	return b.String()
}

// RenderProject renders the full project card.
func RenderProject(p domain.Project, width int) string {
	var b strings.Builder

	b.WriteString(selectedStyle.Render(p.Name) + "  " + metaStyle.Render(fmt.Sprintf("#%d", p.ID)) + "\n")
	b.WriteString(dimStyle.Render("by "+p.OwnerName) + metaStyle.Render(" ("+p.OwnerDiscord+")"))
	if !p.Visible {
		b.WriteString("  " + errorStyle.Render("hidden"))
	}
	b.WriteString("\n")
	b.WriteString(projectStats(p) + "  " +
		dimStyle.Render(fmt.Sprintf("(%s / %s recent)", formatCount(p.DownloadsRecent), formatCount(p.ViewsRecent))) + "\n")

	if len(p.Tags) > 0 {
		b.WriteString(renderTags(p.Tags) + "\n")
	}

	if p.DescriptionShort != "" {
		b.WriteString("\n" + wrap(normalStyle.Render(p.DescriptionShort), width) + "\n")
	}
	if p.Description != "" && p.Description != p.DescriptionShort {
		b.WriteString("\n" + wrap(commentTextStyle.Render(p.Description), width) + "\n")
	}

	b.WriteString("\n" + sectionHeaderStyle.Render("── INSTALL ──") + "\n")
	if p.InstallCommand != "" {
		b.WriteString("  " + installStyle.Render(p.InstallCommand) + "\n")
	}
	if p.HasDownload() {
		file := p.TargetFile
		if file == "" {
			file = "download"
		}
		b.WriteString("  " + dimStyle.Render(file+": ") + normalStyle.Render(*p.DownloadURL) + "\n")
	}
	if p.Repository != "" {
		b.WriteString("  " + dimStyle.Render("repo: ") + normalStyle.Render(p.Repository) + "\n")
	}

	t := now()
	b.WriteString("\n" + metaStyle.Render(fmt.Sprintf("added %s · updated %s · released %s",
		formatTime(p.AddedAt(), t), formatTime(p.UpdatedAt(), t), formatTime(p.ReleasedAt(), t))) + "\n")
	if len(p.Keywords) > 0 {
		b.WriteString(metaStyle.Render("keywords: "+strings.Join(p.Keywords, ", ")) + "\n")
	}
	if p.MediaCount > 0 {
		b.WriteString(metaStyle.Render(fmt.Sprintf("%d media", p.MediaCount)) + "\n")
	}
	return b.String()
}

// RenderChangelog renders a single changelog entry.
func RenderChangelog(c domain.Changelog, width int) string {
	return accentStyle.Render(fmt.Sprintf("v%d", c.Number)) + "\n" +
		wrap(normalStyle.Render(strings.TrimSpace(c.Body)), width) + "\n"
}

// RenderChangelogs renders entries in the order given.
func RenderChangelogs(cs []domain.Changelog, width int) string {
	if len(cs) == 0 {
		return dimStyle.Render("no changelogs") + "\n"
	}
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, RenderChangelog(c, width))
	}
	return strings.Join(parts, "\n")
}

// RenderComments renders comments as an indented reply tree.
func RenderComments(cs []domain.Comment, width int) string {
	if len(cs) == 0 {
		return dimStyle.Render("no comments") + "\n"
	}
	var b strings.Builder
	var walk func(nodes []domain.CommentNode, depth int)
	walk = func(nodes []domain.CommentNode, depth int) {
		for _, n := range nodes {
			indent := strings.Repeat("  ", depth)
			marker := ""
			if depth > 0 {
				marker = metaStyle.Render("↳ ")
			}
			b.WriteString(indent + marker + commentAuthorStyle.Render(n.Comment.UserName) +
				metaStyle.Render(fmt.Sprintf(" #%d", n.Comment.Number)) + "\n")
			body := wrap(commentTextStyle.Render(strings.TrimSpace(n.Comment.Body)), width-len(indent)-2)
			for _, line := range strings.Split(body, "\n") {
				b.WriteString(indent + "  " + line + "\n")
			}
			walk(n.Replies, depth+1)
		}
	}
	walk(domain.ThreadComments(cs), 0)
	return b.String()
}

// RenderUser renders a user profile.
func RenderUser(u domain.User, width int) string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(u.Name) + "  " + metaStyle.Render(u.DiscordID) + "\n")
	b.WriteString(dimStyle.Render("joined "+formatTime(u.JoinedAt(), now())) + "\n")
	if u.About != "" {
		b.WriteString("\n" + wrap(normalStyle.Render(u.About), width) + "\n")
	}
	if len(u.Connections) > 0 {
		b.WriteString("\n" + sectionHeaderStyle.Render("── CONNECTIONS ──") + "\n")
		for i, c := range u.Connections {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				helpKeyStyle.Render(fmt.Sprintf("%d", i+1)),
				normalStyle.Render(c.Display),
				dimStyle.Render(c.Link)))
		}
	}
	return b.String()
}

package tui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/pinestore/pkg/client"
	"github.com/naveenspark/pinestore/pkg/domain"
)

func testProject() domain.Project {
	return domain.Project{
		ID:             42,
		Name:           "treeview",
		OwnerName:      "pine",
		OwnerDiscord:   "271",
		InstallCommand: "pinestore install treeview",
		Repository:     "https://github.com/pine/treeview",
		Visible:        true,
	}
}

func runBatch(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected tea.BatchMsg, got %T", cmd())
	}
	msgs := make([]tea.Msg, 0, len(batch))
	for _, c := range batch {
		msgs = append(msgs, c())
	}
	return msgs
}

func TestDetailLoadsChangelogAndComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/42/changelog":
			w.Write([]byte(`{"project_id":42,"number":3,"body":"fixed the scrolling"}`)) //nolint:errcheck
		case "/api/projects/42/comments":
			w.Write([]byte(`[
				{"id":1,"project_id":42,"reply_id":null,"user_discord":"1","user_name":"ann","number":1,"body":"nice"},
				{"id":2,"project_id":42,"reply_id":1,"user_discord":"2","user_name":"bob","number":2,"body":"agreed"}
			]`)) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	m := newDetailModel(client.New(srv.URL), testProject())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if !strings.Contains(m.View(), "loading...") {
		t.Errorf("expected loading placeholders, got:\n%s", m.View())
	}

	for _, msg := range runBatch(t, m.load()) {
		m, _ = m.Update(msg)
	}

	if m.changelog == nil || m.changelog.Number != 3 {
		t.Fatalf("changelog = %+v, want number 3", m.changelog)
	}
	if len(m.comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(m.comments))
	}
	view := m.View()
	for _, want := range []string{"v3", "fixed the scrolling", "ann", "↳", "agreed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDetailChangelogNotFound(t *testing.T) {
	m := newDetailModel(nil, testProject())
	m, _ = m.Update(changelogLoadedMsg{projectID: 42, err: &client.RequestError{StatusCode: http.StatusNotFound}})
	if m.changelogErr != "" {
		t.Errorf("404 should not be shown as an error, got %q", m.changelogErr)
	}
	if !strings.Contains(m.View(), "no changelog") {
		t.Errorf("expected 'no changelog', got:\n%s", m.View())
	}
}

func TestDetailLoadErrors(t *testing.T) {
	m := newDetailModel(nil, testProject())
	m, _ = m.Update(changelogLoadedMsg{projectID: 42, err: &client.RequestError{StatusCode: 500, Body: "boom"}})
	m, _ = m.Update(commentsLoadedMsg{projectID: 42, err: errors.New("dial tcp: refused")})
	view := m.View()
	if !strings.Contains(view, "boom") {
		t.Errorf("expected changelog error in view:\n%s", view)
	}
	if !strings.Contains(view, "dial tcp: refused") {
		t.Errorf("expected comments error in view:\n%s", view)
	}
}

func TestDetailIgnoresOtherProject(t *testing.T) {
	m := newDetailModel(nil, testProject())
	m, _ = m.Update(commentsLoadedMsg{projectID: 7, comments: []domain.Comment{{ID: 1}}})
	if m.commentsDone {
		t.Error("results for another project should be ignored")
	}
}

func TestDetailCopyInstall(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = orig }()

	m := newDetailModel(nil, testProject())
	m, cmd := m.Update(keyRunes("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m, _ = m.Update(cmd())
	if copied != "pinestore install treeview" {
		t.Errorf("copied = %q", copied)
	}
	if !strings.Contains(m.status, "copied install command") {
		t.Errorf("status = %q", m.status)
	}
}

func TestDetailCopyWithoutInstallCommand(t *testing.T) {
	p := testProject()
	p.InstallCommand = ""
	m := newDetailModel(nil, p)
	m, cmd := m.Update(keyRunes("c"))
	if cmd != nil {
		t.Error("expected no command without install command")
	}
	if !strings.Contains(m.status, "no install command") {
		t.Errorf("status = %q", m.status)
	}
}

func TestDetailOpenRepository(t *testing.T) {
	var opened string
	orig := openURL
	openURL = func(u string) error { opened = u; return nil }
	defer func() { openURL = orig }()

	m := newDetailModel(nil, testProject())
	_, cmd := m.Update(keyRunes("o"))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || msg.err != nil {
		t.Fatalf("unexpected result %+v", msg)
	}
	if opened != "https://github.com/pine/treeview" {
		t.Errorf("opened = %q", opened)
	}
}

func TestDetailOpenError(t *testing.T) {
	orig := openURL
	openURL = func(string) error { return errors.New("no browser") }
	defer func() { openURL = orig }()

	m := newDetailModel(nil, testProject())
	m, cmd := m.Update(keyRunes("o"))
	m, _ = m.Update(cmd())
	if !strings.Contains(m.status, "no browser") {
		t.Errorf("status = %q", m.status)
	}
}

func TestDetailPeekOwner(t *testing.T) {
	m := newDetailModel(nil, testProject())
	_, cmd := m.Update(keyRunes("u"))
	if cmd == nil {
		t.Fatal("expected peek command")
	}
	msg, ok := cmd().(showPeekMsg)
	if !ok || msg.discordID != "271" {
		t.Errorf("got %+v, want showPeekMsg{271}", cmd())
	}
}

func TestDetailScroll(t *testing.T) {
	m := newDetailModel(nil, testProject())
	m, _ = m.Update(keyRunes("k"))
	if m.scroll != 0 {
		t.Errorf("scroll = %d, want 0", m.scroll)
	}
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	if m.scroll != 2 {
		t.Errorf("scroll = %d, want 2", m.scroll)
	}
	if strings.HasPrefix(m.View(), m.content()) {
		t.Error("scrolled view should skip leading lines")
	}
}

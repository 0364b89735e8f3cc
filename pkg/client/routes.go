package client

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/naveenspark/pinestore/pkg/domain"
)

// Operation names one remote catalog operation.
type Operation int

const (
	OpFetchProject Operation = iota
	OpFetchComments
	OpFetchChangelog
	OpFetchChangelogs
	OpFetchProjects
	OpSearchProjects
	OpFetchProjectByName
	OpFetchUser
	OpFetchUserProjects
)

var operationInfo = [...]struct {
	name     string
	template string
}{
	OpFetchProject:       {"fetchProject", "/api/projects/{id}"},
	OpFetchComments:      {"fetchComments", "/api/projects/{id}/comments"},
	OpFetchChangelog:     {"fetchChangelog", "/api/projects/{id}/changelog"},
	OpFetchChangelogs:    {"fetchChangelogs", "/api/projects/{id}/changelogs"},
	OpFetchProjects:      {"fetchProjects", "/api/projects"},
	OpSearchProjects:     {"searchProjects", "/api/projects/search?q={query}"},
	OpFetchProjectByName: {"fetchProjectByName", "/api/projects/named/?name={name}"},
	OpFetchUser:          {"fetchUser", "/api/users/{discordId}"},
	OpFetchUserProjects:  {"fetchUserProjects", "/api/users/{discordId}/projects"},
}

func (o Operation) valid() bool {
	return o >= 0 && int(o) < len(operationInfo)
}

func (o Operation) String() string {
	if !o.valid() {
		return "Operation(" + strconv.Itoa(int(o)) + ")"
	}
	return operationInfo[o].name
}

// Template returns the operation's path template, e.g. "/api/projects/{id}".
func (o Operation) Template() string {
	if !o.valid() {
		return ""
	}
	return operationInfo[o].template
}

// Route is a resolved registry entry: the operation, its HTTP method, the
// relative path with arguments already substituted, and an optional
// conversion from the wire shape W to the result R.
type Route[W, R any] struct {
	Op        Operation
	Method    string
	Path      string
	Transform func(W) R
}

// RouteInfo describes a registry entry without resolving its arguments.
type RouteInfo struct {
	Op       Operation
	Method   string
	Template string
}

// Routes lists every operation the client knows, in declaration order.
func Routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(operationInfo))
	for i := range operationInfo {
		op := Operation(i)
		out = append(out, RouteInfo{Op: op, Method: http.MethodGet, Template: op.Template()})
	}
	return out
}

// Raw drops the route's transform so the executor hands back the decoded
// body untouched.
func Raw[W, R any](r Route[W, R]) Route[json.RawMessage, json.RawMessage] {
	return Route[json.RawMessage, json.RawMessage]{Op: r.Op, Method: r.Method, Path: r.Path}
}

func projectPath(id int64) string {
	return "/api/projects/" + strconv.FormatInt(id, 10)
}

// userPath escapes the id as one path segment, so "a/b" cannot reach a
// different route.
func userPath(discordID string) string {
	return "/api/users/" + url.PathEscape(discordID)
}

// componentUnescaper undoes QueryEscape where encodeURIComponent leaves
// characters alone: space is %20 rather than +, and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s for use as a query value the way browsers'
// encodeURIComponent does.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// ProjectRoute fetches one project by id.
func ProjectRoute(id int64) Route[domain.ProjectRecord, domain.Project] {
	return Route[domain.ProjectRecord, domain.Project]{
		Op:        OpFetchProject,
		Method:    http.MethodGet,
		Path:      projectPath(id),
		Transform: domain.NewProject,
	}
}

// CommentsRoute fetches every comment on a project.
func CommentsRoute(projectID int64) Route[[]domain.CommentRecord, []domain.Comment] {
	return Route[[]domain.CommentRecord, []domain.Comment]{
		Op:        OpFetchComments,
		Method:    http.MethodGet,
		Path:      projectPath(projectID) + "/comments",
		Transform: domain.NewComments,
	}
}

// ChangelogRoute fetches the single changelog the service returns for a project.
func ChangelogRoute(projectID int64) Route[domain.ChangelogRecord, domain.Changelog] {
	return Route[domain.ChangelogRecord, domain.Changelog]{
		Op:        OpFetchChangelog,
		Method:    http.MethodGet,
		Path:      projectPath(projectID) + "/changelog",
		Transform: domain.NewChangelog,
	}
}

// ChangelogsRoute fetches the full changelog list for a project.
func ChangelogsRoute(projectID int64) Route[[]domain.ChangelogRecord, []domain.Changelog] {
	return Route[[]domain.ChangelogRecord, []domain.Changelog]{
		Op:        OpFetchChangelogs,
		Method:    http.MethodGet,
		Path:      projectPath(projectID) + "/changelogs",
		Transform: domain.NewChangelogs,
	}
}

// ProjectsRoute fetches the whole catalog.
func ProjectsRoute() Route[[]domain.ProjectRecord, []domain.Project] {
	return Route[[]domain.ProjectRecord, []domain.Project]{
		Op:        OpFetchProjects,
		Method:    http.MethodGet,
		Path:      "/api/projects",
		Transform: domain.NewProjects,
	}
}

// SearchProjectsRoute runs a free-text catalog search.
func SearchProjectsRoute(query string) Route[[]domain.ProjectRecord, []domain.Project] {
	return Route[[]domain.ProjectRecord, []domain.Project]{
		Op:        OpSearchProjects,
		Method:    http.MethodGet,
		Path:      "/api/projects/search?q=" + encodeComponent(query),
		Transform: domain.NewProjects,
	}
}

// ProjectByNameRoute fetches a project by its exact name.
func ProjectByNameRoute(name string) Route[domain.ProjectRecord, domain.Project] {
	return Route[domain.ProjectRecord, domain.Project]{
		Op:        OpFetchProjectByName,
		Method:    http.MethodGet,
		Path:      "/api/projects/named/?name=" + encodeComponent(name),
		Transform: domain.NewProject,
	}
}

// UserRoute fetches a user profile by Discord ID.
func UserRoute(discordID string) Route[domain.UserRecord, domain.User] {
	return Route[domain.UserRecord, domain.User]{
		Op:        OpFetchUser,
		Method:    http.MethodGet,
		Path:      userPath(discordID),
		Transform: domain.NewUser,
	}
}

// UserProjectsRoute fetches every project owned by a user.
func UserProjectsRoute(discordID string) Route[[]domain.ProjectRecord, []domain.Project] {
	return Route[[]domain.ProjectRecord, []domain.Project]{
		Op:        OpFetchUserProjects,
		Method:    http.MethodGet,
		Path:      userPath(discordID) + "/projects",
		Transform: domain.NewProjects,
	}
}

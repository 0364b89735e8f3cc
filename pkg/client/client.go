package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/naveenspark/pinestore/pkg/domain"
)

// DefaultBaseURL is the public Pinestore origin.
const DefaultBaseURL = "https://pinestore.cc"

const defaultUserAgent = "pinestore-go"

// maxErrorBody caps how much of a failed response is kept in a RequestError.
const maxErrorBody = 1 << 20

// Client is the Pinestore catalog API client. A Client is immutable after
// New and safe for concurrent use; each call performs exactly one request.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. The default client
// has no timeout; cancel through the context instead.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a new API client rooted at baseURL (e.g. DefaultBaseURL or an
// httptest server URL). A trailing slash on baseURL is ignored.
func New(baseURL string, opts ...Option) *Client {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
		log:        silent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the origin every route is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the absolute URL a route resolves to.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// FetchProject fetches a single project by ID.
func (c *Client) FetchProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := Do(ctx, c, ProjectRoute(id))
	if err != nil {
		return nil, fmt.Errorf("client.FetchProject: %w", err)
	}
	return &p, nil
}

// FetchComments returns every comment on a project.
func (c *Client) FetchComments(ctx context.Context, projectID int64) ([]domain.Comment, error) {
	comments, err := Do(ctx, c, CommentsRoute(projectID))
	if err != nil {
		return nil, fmt.Errorf("client.FetchComments: %w", err)
	}
	return comments, nil
}

// FetchChangelog returns the project's changelog entry from the singular
// endpoint.
func (c *Client) FetchChangelog(ctx context.Context, projectID int64) (*domain.Changelog, error) {
	cl, err := Do(ctx, c, ChangelogRoute(projectID))
	if err != nil {
		return nil, fmt.Errorf("client.FetchChangelog: %w", err)
	}
	return &cl, nil
}

// FetchChangelogs returns all changelog entries for a project.
func (c *Client) FetchChangelogs(ctx context.Context, projectID int64) ([]domain.Changelog, error) {
	cls, err := Do(ctx, c, ChangelogsRoute(projectID))
	if err != nil {
		return nil, fmt.Errorf("client.FetchChangelogs: %w", err)
	}
	return cls, nil
}

// FetchProjects returns the full, unfiltered catalog.
func (c *Client) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := Do(ctx, c, ProjectsRoute())
	if err != nil {
		return nil, fmt.Errorf("client.FetchProjects: %w", err)
	}
	return projects, nil
}

// SearchProjects searches the catalog by free-text query.
func (c *Client) SearchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	projects, err := Do(ctx, c, SearchProjectsRoute(query))
	if err != nil {
		return nil, fmt.Errorf("client.SearchProjects: %w", err)
	}
	return projects, nil
}

// FetchProjectByName fetches a project by its name.
func (c *Client) FetchProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	p, err := Do(ctx, c, ProjectByNameRoute(name))
	if err != nil {
		return nil, fmt.Errorf("client.FetchProjectByName: %w", err)
	}
	return &p, nil
}

// FetchUser fetches a user profile by Discord ID.
func (c *Client) FetchUser(ctx context.Context, discordID string) (*domain.User, error) {
	u, err := Do(ctx, c, UserRoute(discordID))
	if err != nil {
		return nil, fmt.Errorf("client.FetchUser: %w", err)
	}
	return &u, nil
}

// FetchUserProjects returns the projects owned by a user.
func (c *Client) FetchUserProjects(ctx context.Context, discordID string) ([]domain.Project, error) {
	projects, err := Do(ctx, c, UserProjectsRoute(discordID))
	if err != nil {
		return nil, fmt.Errorf("client.FetchUserProjects: %w", err)
	}
	return projects, nil
}

// FetchRaw runs op with positional string arguments and returns the response
// body without conversion. Project IDs must parse as integers.
func (c *Client) FetchRaw(ctx context.Context, op Operation, args ...string) (json.RawMessage, error) {
	route, err := rawRoute(op, args)
	if err != nil {
		return nil, fmt.Errorf("client.FetchRaw: %w", err)
	}
	body, err := Do(ctx, c, route)
	if err != nil {
		return nil, fmt.Errorf("client.FetchRaw: %w", err)
	}
	return body, nil
}

func rawRoute(op Operation, args []string) (Route[json.RawMessage, json.RawMessage], error) {
	var zero Route[json.RawMessage, json.RawMessage]

	want := 1
	if op == OpFetchProjects {
		want = 0
	}
	if !op.valid() {
		return zero, fmt.Errorf("unknown operation %s", op)
	}
	if len(args) != want {
		return zero, fmt.Errorf("%s takes %d argument(s), got %d", op, want, len(args))
	}

	var id int64
	switch op {
	case OpFetchProject, OpFetchComments, OpFetchChangelog, OpFetchChangelogs:
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%s: project id %q: %w", op, args[0], err)
		}
		id = n
	}

	switch op {
	case OpFetchProject:
		return Raw(ProjectRoute(id)), nil
	case OpFetchComments:
		return Raw(CommentsRoute(id)), nil
	case OpFetchChangelog:
		return Raw(ChangelogRoute(id)), nil
	case OpFetchChangelogs:
		return Raw(ChangelogsRoute(id)), nil
	case OpFetchProjects:
		return Raw(ProjectsRoute()), nil
	case OpSearchProjects:
		return Raw(SearchProjectsRoute(args[0])), nil
	case OpFetchProjectByName:
		return Raw(ProjectByNameRoute(args[0])), nil
	case OpFetchUser:
		return Raw(UserRoute(args[0])), nil
	default:
		return Raw(UserProjectsRoute(args[0])), nil
	}
}

// Do executes route against c: one request, status check, JSON decode into W,
// then the route's transform. A route without a transform must have W == R.
func Do[W, R any](ctx context.Context, c *Client, route Route[W, R]) (R, error) {
	var zero R
	var wire W
	if err := c.doRequest(ctx, route.Op, route.Method, route.Path, &wire); err != nil {
		return zero, err
	}
	if route.Transform != nil {
		return route.Transform(wire), nil
	}
	out, ok := any(wire).(R)
	if !ok {
		return zero, fmt.Errorf("%s: route has no transform from %T to %T", route.Op, wire, zero)
	}
	return out, nil
}

func (c *Client) doRequest(ctx context.Context, op Operation, method, path string, out any) error {
	reqURL := c.URL(path)
	reqID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{
		"op":         op.String(),
		"method":     method,
		"url":        reqURL,
		"request_id": reqID,
	})

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			log.WithError(readErr).Debug("read error body")
			return &RequestError{URL: reqURL, StatusCode: resp.StatusCode, Body: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		log.Debug("request rejected")
		return &RequestError{URL: reqURL, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.WithError(err).Debug("decode response")
		return fmt.Errorf("decode response: %w", err)
	}
	log.Debug("request completed")
	return nil
}

package domain

// ChangelogRecord is a release note as the catalog service sends it.
type ChangelogRecord struct {
	ProjectID int64  `json:"project_id"`
	Number    int64  `json:"number"`
	Body      string `json:"body"`
}

// Changelog is a numbered release note for a project.
type Changelog struct {
	ProjectID int64  `json:"projectId" yaml:"projectId"`
	Number    int64  `json:"number" yaml:"number"`
	Body      string `json:"body" yaml:"body"`
}

// NewChangelog converts a wire record into a Changelog.
func NewChangelog(r ChangelogRecord) Changelog {
	return Changelog{
		ProjectID: r.ProjectID,
		Number:    r.Number,
		Body:      r.Body,
	}
}

// NewChangelogs converts a list of wire records. The result is never nil.
func NewChangelogs(rs []ChangelogRecord) []Changelog {
	return convertAll(rs, NewChangelog)
}

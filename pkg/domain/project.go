package domain

import "time"

// ProjectRecord is a project as the catalog service sends it.
type ProjectRecord struct {
	ID                  int64    `json:"id"`
	DateAdded           int64    `json:"date_added"`
	DateUpdated         int64    `json:"date_updated"`
	DateRelease         int64    `json:"date_release"`
	DatePublish         int64    `json:"date_publish"`
	OwnerDiscord        string   `json:"owner_discord"`
	OwnerName           string   `json:"owner_name"`
	Name                string   `json:"name"`
	InstallCommand      string   `json:"install_command"`
	DownloadURL         *string  `json:"download_url"`
	TargetFile          string   `json:"target_file"`
	Tags                []string `json:"tags"`
	Repository          string   `json:"repository"`
	DescriptionShort    string   `json:"description_short"`
	Description         string   `json:"description"`
	DescriptionMarkdown string   `json:"description_markdown"`
	HasThumbnail        bool     `json:"has_thumbnail"`
	HideThumbnail       bool     `json:"hide_thumbnail"`
	MediaCount          int64    `json:"media_count"`
	Keywords            []string `json:"keywords"`
	Downloads           int64    `json:"downloads"`
	DownloadsRecent     int64    `json:"downloads_recent"`
	Views               int64    `json:"views"`
	ViewsRecent         int64    `json:"views_recent"`
	Likes               int64    `json:"likes"`
	Visible             bool     `json:"visible"`
}

// Project is a published catalog entry.
type Project struct {
	ID                  int64    `json:"id" yaml:"id"`
	DateAdded           int64    `json:"dateAdded" yaml:"dateAdded"`
	DateUpdated         int64    `json:"dateUpdated" yaml:"dateUpdated"`
	DateRelease         int64    `json:"dateRelease" yaml:"dateRelease"`
	DatePublish         int64    `json:"datePublish" yaml:"datePublish"`
	OwnerDiscord        string   `json:"ownerDiscord" yaml:"ownerDiscord"`
	OwnerName           string   `json:"ownerName" yaml:"ownerName"`
	Name                string   `json:"name" yaml:"name"`
	InstallCommand      string   `json:"installCommand" yaml:"installCommand"`
	DownloadURL         *string  `json:"downloadUrl" yaml:"downloadUrl"`
	TargetFile          string   `json:"targetFile" yaml:"targetFile"`
	Tags                []string `json:"tags" yaml:"tags"`
	Repository          string   `json:"repository" yaml:"repository"`
	DescriptionShort    string   `json:"descriptionShort" yaml:"descriptionShort"`
	Description         string   `json:"description" yaml:"description"`
	DescriptionMarkdown string   `json:"descriptionMarkdown" yaml:"descriptionMarkdown"`
	HasThumbnail        bool     `json:"hasThumbnail" yaml:"hasThumbnail"`
	HideThumbnail       bool     `json:"hideThumbnail" yaml:"hideThumbnail"`
	MediaCount          int64    `json:"mediaCount" yaml:"mediaCount"`
	Keywords            []string `json:"keywords" yaml:"keywords"`
	Downloads           int64    `json:"downloads" yaml:"downloads"`
	DownloadsRecent     int64    `json:"downloadsRecent" yaml:"downloadsRecent"`
	Views               int64    `json:"views" yaml:"views"`
	ViewsRecent         int64    `json:"viewsRecent" yaml:"viewsRecent"`
	Likes               int64    `json:"likes" yaml:"likes"`
	Visible             bool     `json:"visible" yaml:"visible"`
}

// NewProject converts a wire record into a Project. Values are copied as-is.
func NewProject(r ProjectRecord) Project {
	return Project{
		ID:                  r.ID,
		DateAdded:           r.DateAdded,
		DateUpdated:         r.DateUpdated,
		DateRelease:         r.DateRelease,
		DatePublish:         r.DatePublish,
		OwnerDiscord:        r.OwnerDiscord,
		OwnerName:           r.OwnerName,
		Name:                r.Name,
		InstallCommand:      r.InstallCommand,
		DownloadURL:         cloneString(r.DownloadURL),
		TargetFile:          r.TargetFile,
		Tags:                cloneStrings(r.Tags),
		Repository:          r.Repository,
		DescriptionShort:    r.DescriptionShort,
		Description:         r.Description,
		DescriptionMarkdown: r.DescriptionMarkdown,
		HasThumbnail:        r.HasThumbnail,
		HideThumbnail:       r.HideThumbnail,
		MediaCount:          r.MediaCount,
		Keywords:            cloneStrings(r.Keywords),
		Downloads:           r.Downloads,
		DownloadsRecent:     r.DownloadsRecent,
		Views:               r.Views,
		ViewsRecent:         r.ViewsRecent,
		Likes:               r.Likes,
		Visible:             r.Visible,
	}
}

// NewProjects converts a list of wire records. The result is never nil.
func NewProjects(rs []ProjectRecord) []Project {
	return convertAll(rs, NewProject)
}

// AddedAt returns DateAdded as a time.
func (p Project) AddedAt() time.Time { return fromMillis(p.DateAdded) }

// UpdatedAt returns DateUpdated as a time.
func (p Project) UpdatedAt() time.Time { return fromMillis(p.DateUpdated) }

// ReleasedAt returns DateRelease as a time.
func (p Project) ReleasedAt() time.Time { return fromMillis(p.DateRelease) }

// PublishedAt returns DatePublish as a time.
func (p Project) PublishedAt() time.Time { return fromMillis(p.DatePublish) }

// HasDownload reports whether the project links a downloadable file.
func (p Project) HasDownload() bool {
	return p.DownloadURL != nil && *p.DownloadURL != ""
}

// ShowThumbnail reports whether a thumbnail exists and the owner has not hidden it.
func (p Project) ShowThumbnail() bool {
	return p.HasThumbnail && !p.HideThumbnail
}

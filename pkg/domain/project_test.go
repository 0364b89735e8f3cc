package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectJSON = `{
	"id": 135,
	"date_added": 1000,
	"date_updated": 2000,
	"date_release": 3000,
	"date_publish": 4000,
	"owner_discord": "271",
	"owner_name": "pine",
	"name": "treeview",
	"install_command": "wget run https://pinestore.cc/d/135",
	"download_url": null,
	"target_file": "treeview.lua",
	"tags": ["a", "b"],
	"repository": "https://github.com/pine/treeview",
	"description_short": "short",
	"description": "long",
	"description_markdown": "# long",
	"has_thumbnail": true,
	"hide_thumbnail": false,
	"media_count": 3,
	"keywords": ["tree", "view"],
	"downloads": 10,
	"downloads_recent": 2,
	"views": 50,
	"views_recent": 5,
	"likes": 7,
	"visible": true
}`

func decodeProject(t *testing.T) ProjectRecord {
	t.Helper()
	var r ProjectRecord
	require.NoError(t, json.Unmarshal([]byte(projectJSON), &r))
	return r
}

func TestNewProjectCopiesFields(t *testing.T) {
	r := decodeProject(t)
	p := NewProject(r)

	assert.Equal(t, int64(135), p.ID)
	assert.Equal(t, r.DateAdded, p.DateAdded)
	assert.Equal(t, r.DateUpdated, p.DateUpdated)
	assert.Equal(t, r.DateRelease, p.DateRelease)
	assert.Equal(t, r.DatePublish, p.DatePublish)
	assert.Equal(t, r.OwnerDiscord, p.OwnerDiscord)
	assert.Equal(t, r.OwnerName, p.OwnerName)
	assert.Equal(t, r.Name, p.Name)
	assert.Equal(t, r.InstallCommand, p.InstallCommand)
	assert.Nil(t, p.DownloadURL)
	assert.Equal(t, r.TargetFile, p.TargetFile)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, r.Repository, p.Repository)
	assert.Equal(t, r.DescriptionShort, p.DescriptionShort)
	assert.Equal(t, r.Description, p.Description)
	assert.Equal(t, r.DescriptionMarkdown, p.DescriptionMarkdown)
	assert.True(t, p.HasThumbnail)
	assert.False(t, p.HideThumbnail)
	assert.Equal(t, int64(3), p.MediaCount)
	assert.Equal(t, []string{"tree", "view"}, p.Keywords)
	assert.Equal(t, int64(10), p.Downloads)
	assert.Equal(t, int64(2), p.DownloadsRecent)
	assert.Equal(t, int64(50), p.Views)
	assert.Equal(t, int64(5), p.ViewsRecent)
	assert.Equal(t, int64(7), p.Likes)
	assert.True(t, p.Visible)
}

func TestNewProjectDoesNotAliasSlices(t *testing.T) {
	r := decodeProject(t)
	p := NewProject(r)

	r.Tags[0] = "changed"
	r.Keywords[0] = "changed"
	assert.Equal(t, "a", p.Tags[0])
	assert.Equal(t, "tree", p.Keywords[0])
}

func TestNewProjectDownloadURL(t *testing.T) {
	r := decodeProject(t)
	url := "https://example.com/treeview.lua"
	r.DownloadURL = &url

	p := NewProject(r)
	require.NotNil(t, p.DownloadURL)
	assert.Equal(t, url, *p.DownloadURL)
	assert.True(t, p.HasDownload())

	r.DownloadURL = nil
	assert.False(t, NewProject(r).HasDownload())
}

func TestNewProjectIdempotent(t *testing.T) {
	r := decodeProject(t)
	assert.Equal(t, NewProject(r), NewProject(r))
}

func TestNewProjectsEmpty(t *testing.T) {
	var rs []ProjectRecord
	require.NoError(t, json.Unmarshal([]byte(`[]`), &rs))

	got := NewProjects(rs)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = NewProjects(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewProjectsKeepsOrder(t *testing.T) {
	rs := []ProjectRecord{{ID: 3}, {ID: 1}, {ID: 2}}
	got := NewProjects(rs)
	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(2), got[2].ID)
}

func TestProjectTimes(t *testing.T) {
	p := Project{DateAdded: 1700000000000, DatePublish: 1700000000500}
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), p.AddedAt())
	assert.Equal(t, 500*time.Millisecond, p.PublishedAt().Sub(p.AddedAt()))
}

func TestProjectShowThumbnail(t *testing.T) {
	tests := []struct {
		name      string
		has, hide bool
		want      bool
	}{
		{"shown", true, false, true},
		{"hidden by owner", true, true, false},
		{"missing", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{HasThumbnail: tt.has, HideThumbnail: tt.hide}
			assert.Equal(t, tt.want, p.ShowThumbnail())
		})
	}
}

func TestProjectEncodesCamelCase(t *testing.T) {
	data, err := json.Marshal(NewProject(decodeProject(t)))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "dateAdded")
	assert.Contains(t, m, "ownerDiscord")
	assert.Contains(t, m, "descriptionMarkdown")
	assert.NotContains(t, m, "date_added")
}

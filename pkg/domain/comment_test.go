package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	var rs []CommentRecord
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "project_id": 135, "reply_id": null, "user_discord": "9", "user_name": "ann", "number": 1, "body": "nice"},
		{"id": 2, "project_id": 135, "reply_id": 1, "user_discord": "8", "user_name": "bob", "number": 2, "body": "thanks"}
	]`), &rs))

	got := NewComments(rs)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(135), first.ProjectID)
	assert.Nil(t, first.ReplyID)
	assert.False(t, first.IsReply())
	assert.Equal(t, "9", first.UserDiscord)
	assert.Equal(t, "ann", first.UserName)
	assert.Equal(t, int64(1), first.Number)
	assert.Equal(t, "nice", first.Body)

	second := got[1]
	require.NotNil(t, second.ReplyID)
	assert.Equal(t, int64(1), *second.ReplyID)
	assert.True(t, second.IsReply())
}

func TestNewCommentReplyNotAliased(t *testing.T) {
	id := int64(4)
	r := CommentRecord{ID: 5, ReplyID: &id}
	c := NewComment(r)
	id = 99
	require.NotNil(t, c.ReplyID)
	assert.Equal(t, int64(4), *c.ReplyID)
}

func TestNewCommentsEmpty(t *testing.T) {
	got := NewComments([]CommentRecord{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewChangelog(t *testing.T) {
	var r ChangelogRecord
	require.NoError(t, json.Unmarshal([]byte(`{"project_id": 135, "number": 4, "body": "fixed scrolling"}`), &r))

	c := NewChangelog(r)
	assert.Equal(t, Changelog{ProjectID: 135, Number: 4, Body: "fixed scrolling"}, c)
	assert.Equal(t, c, NewChangelog(r))
}

func TestNewChangelogsEmpty(t *testing.T) {
	got := NewChangelogs(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

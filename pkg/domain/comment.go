package domain

// CommentRecord is a comment as the catalog service sends it.
type CommentRecord struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	ReplyID     *int64 `json:"reply_id"`
	UserDiscord string `json:"user_discord"`
	UserName    string `json:"user_name"`
	Number      int64  `json:"number"`
	Body        string `json:"body"`
}

// Comment is a threaded remark on a project. ReplyID, when set, names another
// comment on the same project; the server is trusted on that.
type Comment struct {
	ID          int64  `json:"id" yaml:"id"`
	ProjectID   int64  `json:"projectId" yaml:"projectId"`
	ReplyID     *int64 `json:"replyId" yaml:"replyId"`
	UserDiscord string `json:"userDiscord" yaml:"userDiscord"`
	UserName    string `json:"userName" yaml:"userName"`
	Number      int64  `json:"number" yaml:"number"`
	Body        string `json:"body" yaml:"body"`
}

// NewComment converts a wire record into a Comment.
func NewComment(r CommentRecord) Comment {
	var reply *int64
	if r.ReplyID != nil {
		id := *r.ReplyID
		reply = &id
	}
	return Comment{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		ReplyID:     reply,
		UserDiscord: r.UserDiscord,
		UserName:    r.UserName,
		Number:      r.Number,
		Body:        r.Body,
	}
}

// NewComments converts a list of wire records. The result is never nil.
func NewComments(rs []CommentRecord) []Comment {
	return convertAll(rs, NewComment)
}

// IsReply reports whether the comment answers another comment.
func (c Comment) IsReply() bool { return c.ReplyID != nil }

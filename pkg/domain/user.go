package domain

import "time"

// UserConnectionRecord is an external identity link as sent on the wire.
type UserConnectionRecord struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Link    string `json:"link"`
}

// UserRecord is a user profile as the catalog service sends it.
type UserRecord struct {
	DiscordID     string                 `json:"discord_id"`
	JoinedOn      int64                  `json:"joined_on"`
	Name          string                 `json:"name"`
	About         string                 `json:"about"`
	AboutMarkdown *string                `json:"about_markdown"`
	Connections   []UserConnectionRecord `json:"connections"`
}

// UserConnection links a user to an external profile (GitHub, a website, ...).
type UserConnection struct {
	ID      string `json:"id" yaml:"id"`
	Display string `json:"display" yaml:"display"`
	Link    string `json:"link" yaml:"link"`
}

// User is an account profile, keyed by Discord ID.
type User struct {
	DiscordID     string           `json:"discordId" yaml:"discordId"`
	JoinedOn      int64            `json:"joinedOn" yaml:"joinedOn"`
	Name          string           `json:"name" yaml:"name"`
	About         string           `json:"about" yaml:"about"`
	AboutMarkdown *string          `json:"aboutMarkdown" yaml:"aboutMarkdown"`
	Connections   []UserConnection `json:"connections" yaml:"connections"`
}

// NewUserConnection converts a wire record into a UserConnection.
func NewUserConnection(r UserConnectionRecord) UserConnection {
	return UserConnection{
		ID:      r.ID,
		Display: r.Display,
		Link:    r.Link,
	}
}

// NewUser converts a wire record into a User. Connections keep their wire order.
func NewUser(r UserRecord) User {
	return User{
		DiscordID:     r.DiscordID,
		JoinedOn:      r.JoinedOn,
		Name:          r.Name,
		About:         r.About,
		AboutMarkdown: cloneString(r.AboutMarkdown),
		Connections:   convertAll(r.Connections, NewUserConnection),
	}
}

// JoinedAt returns JoinedOn as a time.
func (u User) JoinedAt() time.Time { return fromMillis(u.JoinedOn) }

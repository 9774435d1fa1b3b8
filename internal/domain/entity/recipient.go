package entity

import "time"

// Recipient is a Slack user who receives the reminders
type Recipient struct {
	ID            int64
	SlackUserID   string
	SlackUserName string
	DisplayName   string
	IsActive      bool
	JoinedAt      time.Time
	UpdatedAt     time.Time
}

// Mention returns the name used in the reminder attachment
func (r *Recipient) Mention() string {
	if r.SlackUserName != "" {
		return r.SlackUserName
	}
	return r.DisplayName
}

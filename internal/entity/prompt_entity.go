package entity

import "time"

// Prompt is an accepted question recorded in a session's history.
// PromptId, SessionId (when empty) and CreatedAt are issued on record.
type Prompt struct {
	PromptId  string
	SessionId string
	Question  string
	Context   string
	CreatedAt time.Time
}

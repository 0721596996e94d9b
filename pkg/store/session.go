package store

import "time"

// Turn is one exchange entry of a conversation.
type Turn struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the conversation history kept for a prompt session. It lives
// only as long as the session store's TTL.
type Session struct {
	ID        string    `json:"id"`
	Turns     []Turn    `json:"turns"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxTurns bounds a session; older turns are dropped first.
	MaxTurns = 50
)

func NewSession(id string) *Session {
	return &Session{ID: id, Turns: []Turn{}}
}

// Append adds a turn and trims the history to MaxTurns.
func (s *Session) Append(turn Turn) {
	s.Turns = append(s.Turns, turn)
	if len(s.Turns) > MaxTurns {
		s.Turns = s.Turns[len(s.Turns)-MaxTurns:]
	}
	s.UpdatedAt = turn.CreatedAt
}

// Clone returns a copy that shares no turn storage with s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Turns = make([]Turn, len(s.Turns))
	copy(c.Turns, s.Turns)
	return &c
}

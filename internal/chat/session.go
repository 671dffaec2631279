package chat

import "sahamindo-chatbot/internal/types"

// Session is the append-only transcript of one interactive conversation.
// Turns are never edited, removed, or evicted; short-lived sessions make
// unbounded growth acceptable.
type Session struct {
	turns []types.Turn
}

func NewSession() *Session {
	return &Session{}
}

// AppendUser records a user turn.
func (s *Session) AppendUser(text string) {
	s.turns = append(s.turns, types.Turn{Role: types.RoleUser, Text: text})
}

// AppendAssistant records an assistant turn.
func (s *Session) AppendAssistant(text string) {
	s.turns = append(s.turns, types.Turn{Role: types.RoleAssistant, Text: text})
}

// History returns all turns in insertion order. The returned slice is a copy;
// callers cannot mutate the transcript through it.
func (s *Session) History() []types.Turn {
	out := make([]types.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// HistoryTexts returns the turn texts oldest first, the shape projected into
// the language-model context.
func (s *Session) HistoryTexts() []string {
	out := make([]string, 0, len(s.turns))
	for _, t := range s.turns {
		out = append(out, t.Text)
	}
	return out
}

// Len returns the number of turns recorded so far.
func (s *Session) Len() int {
	return len(s.turns)
}

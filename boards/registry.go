package boards

import "sync"

// SessionRegistry is an in-memory session-to-headset mapping. It
// satisfies the validator's ChannelRegistry collaborator; sessions are
// bound at acquisition start and looked up when tagged intervals are
// validated.
type SessionRegistry struct {
	mu     sync.RWMutex
	boards map[string]Board
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{boards: make(map[string]Board)}
}

// Bind associates a session with the headset it is recorded on,
// replacing any previous binding.
func (r *SessionRegistry) Bind(sessionID string, b Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards[sessionID] = b
}

// Has reports whether channelID is a channel of the session's headset.
// Unknown sessions report false for every channel.
func (r *SessionRegistry) Has(sessionID, channelID string) bool {
	r.mu.RLock()
	b, ok := r.boards[sessionID]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	return b.HasChannel(channelID)
}

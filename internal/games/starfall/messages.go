package starfall

// Message is a transient status line shown in the side panel. ExpiresAt is a
// timestamp on the simulation clock, not wall time, so replays stay
// deterministic.
type Message struct {
	Text      string
	ExpiresAt float64
}

// MessageLog holds active messages in insertion order.
type MessageLog struct {
	entries  []Message
	duration float64
}

// NewMessageLog creates a log whose messages live for the given number of
// simulated seconds.
func NewMessageLog(duration float64) *MessageLog {
	return &MessageLog{duration: duration}
}

// Push appends a message expiring duration seconds after now.
func (m *MessageLog) Push(text string, now float64) {
	m.entries = append(m.entries, Message{Text: text, ExpiresAt: now + m.duration})
}

// Expire drops every message whose expiry has passed, preserving the
// relative order of survivors.
func (m *MessageLog) Expire(now float64) {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.ExpiresAt > now {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}

// Clear removes all messages.
func (m *MessageLog) Clear() {
	m.entries = m.entries[:0]
}

// Len returns the number of active messages.
func (m *MessageLog) Len() int {
	return len(m.entries)
}

// Entries returns the active messages in insertion order.
func (m *MessageLog) Entries() []Message {
	return m.entries
}

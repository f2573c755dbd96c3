package domain

import (
	"sort"
	"time"
)

// TypingWindow a typing entry older than this is ignored
const TypingWindow = 3 * time.Second

// PresenceChange broadcast when a member connects or disconnects
type PresenceChange struct {
	MemberID string `json:"member_id"`
	Online   bool   `json:"online"`
}

// ActiveTypers members whose typing entry is recent, viewer excluded, sorted by id
func ActiveTypers(entries map[string]time.Time, viewerID string, now time.Time) []string {
	out := make([]string, 0, len(entries))
	for id, at := range entries {
		if id == viewerID {
			continue
		}
		if now.Sub(at) <= TypingWindow {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// TypingIndicator text shown under a chat
func TypingIndicator(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + " is typing..."
	default:
		return "Multiple people are typing..."
	}
}

package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// RequestStatus friend request lifecycle
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// StatusOffline shown for members without presence, invisible members included
const StatusOffline = "Offline"

var (
	ErrSelfRequest     = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends  = errors.New("already friends")
	ErrRequestExists   = errors.New("friend request already sent")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrRequestHandled  = errors.New("friend request already handled")
	ErrNotAddressee    = errors.New("friend request is addressed to someone else")
	ErrNotFriends      = errors.New("not friends")
	ErrMemberNotFound  = errors.New("user not found")
)

// Friendship one direction of a friendship, both rows exist for every pair
type Friendship struct {
	MemberID  string    `gorm:"primaryKey;size:64"`
	FriendID  string    `gorm:"primaryKey;size:64;index"`
	CreatedAt time.Time
}

// FriendRequest request from FromID to ToID
type FriendRequest struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	FromID string `gorm:"size:64;index;not null" json:"fromId"`
	ToID   string `gorm:"size:64;index;not null" json:"toId"`
	// PairKey is the same in both directions, at most one pending request exists per pair
	PairKey     string        `gorm:"size:130;uniqueIndex:idx_friend_requests_pending_pair,where:status = 'pending'" json:"-"`
	Status      RequestStatus `gorm:"size:16;index;not null" json:"status"`
	SentAt      time.Time     `json:"sentAt"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
}

// RequestPairKey order independent key of the pair a, b
func RequestPairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Pending can still be accepted or declined
func (r FriendRequest) Pending() bool {
	return r.Status == RequestPending
}

// Friend a friend as the friends page lists it
type Friend struct {
	MemberID        string `json:"id"`
	Username        string `json:"username"`
	Status          string `json:"status"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Online          bool   `json:"online"`
}

// IncomingRequest pending request with the sender resolved
type IncomingRequest struct {
	FriendRequest
	FromUsername        string `json:"fromUsername"`
	FromProfileImageURL string `json:"fromProfileImageUrl,omitempty"`
}

// FriendFilter friends page tab
type FriendFilter string

const (
	FilterAll    FriendFilter = "all"
	FilterOnline FriendFilter = "online"
)

// ParseFriendFilter unknown values fall back to all
func ParseFriendFilter(s string) FriendFilter {
	if FriendFilter(strings.ToLower(strings.TrimSpace(s))) == FilterOnline {
		return FilterOnline
	}
	return FilterAll
}

// FilterFriends online tab plus case insensitive username search, result ordered online first then by name
func FilterFriends(friends []Friend, f FriendFilter, search string) []Friend {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Friend, 0, len(friends))
	for _, fr := range friends {
		if f == FilterOnline && !fr.Online {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(fr.Username), search) {
			continue
		}
		out = append(out, fr)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Online != out[j].Online {
			return out[i].Online
		}
		return strings.ToLower(out[i].Username) < strings.ToLower(out[j].Username)
	})
	return out
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFriendFilter(t *testing.T) {
	assert.Equal(t, FilterOnline, ParseFriendFilter("Online"))
	assert.Equal(t, FilterAll, ParseFriendFilter("all"))
	assert.Equal(t, FilterAll, ParseFriendFilter("blocked"))
}

func TestFilterFriends(t *testing.T) {
	friends := []Friend{
		{MemberID: "1", Username: "zelda", Online: false},
		{MemberID: "2", Username: "Link", Online: true},
		{MemberID: "3", Username: "ganon", Online: true},
		{MemberID: "4", Username: "Linkle", Online: false},
	}
	names := func(fs []Friend) []string {
		out := []string{}
		for _, f := range fs {
			out = append(out, f.Username)
		}
		return out
	}

	tests := []struct {
		name   string
		filter FriendFilter
		search string
		want   []string
	}{
		{"all sorted online first", FilterAll, "", []string{"ganon", "Link", "Linkle", "zelda"}},
		{"online only", FilterOnline, "", []string{"ganon", "Link"}},
		{"search ignores case", FilterAll, "LINK", []string{"Link", "Linkle"}},
		{"online and search", FilterOnline, "link", []string{"Link"}},
		{"nothing", FilterOnline, "zelda", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterFriends(friends, tt.filter, tt.search)))
		})
	}
}

func TestFriendRequestPending(t *testing.T) {
	assert.True(t, FriendRequest{Status: RequestPending}.Pending())
	assert.False(t, FriendRequest{Status: RequestDeclined}.Pending())
}

func TestRequestPairKey(t *testing.T) {
	assert.Equal(t, RequestPairKey("alice", "bob"), RequestPairKey("bob", "alice"))
	assert.Equal(t, "alice|bob", RequestPairKey("bob", "alice"))
	assert.NotEqual(t, RequestPairKey("alice", "bob"), RequestPairKey("alice", "carol"))
}

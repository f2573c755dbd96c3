package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlineFlag(t *testing.T) {
	cases := []struct {
		v      interface{}
		online bool
	}{
		{nil, false},
		{"1", true},
		{"3", true},
		{"0", false},
		{"-1", false},
		{"", false},
		{"online", false},
		{int64(1), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.online, OnlineFlag(c.v), "%v", c.v)
	}
}

func TestPresenceStatusKey(t *testing.T) {
	assert.Equal(t, "status:m1", PresenceStatusKey("m1"))
}

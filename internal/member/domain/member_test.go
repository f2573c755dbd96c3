package domain

import (
	"testing"
	"time"

	"gamevault/pkg/encrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordMatch(t *testing.T) {
	hashed, err := encrypt.HashPassword("Pass!1234")
	require.NoError(t, err)

	user := Member{ID: 1, Email: "user@example.com", Password: hashed}

	assert.NoError(t, user.IsPasswordMatch("Pass!1234"), "should match correct password")
	assert.Error(t, user.IsPasswordMatch("wrongpass"), "should not match incorrect password")
}

func TestUserSessionExpiration(t *testing.T) {
	session := MemberSession{
		Token:        "abcd1234",
		MemberID:     "1",
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
		ExpiredAt:    time.Now().Add(-1 * time.Minute),
	}
	assert.True(t, session.IsExpired(), "session should be expired")

	session.ExpiredAt = time.Now().Add(time.Minute)
	assert.False(t, session.IsExpired())
}

func TestCanLogin(t *testing.T) {
	assert.True(t, (&Member{Account: AccountActive}).CanLogin())
	assert.False(t, (&Member{Account: AccountBanned}).CanLogin())
	assert.False(t, (&Member{Account: AccountDeleted}).CanLogin())
}

func TestProfileFor(t *testing.T) {
	m := Member{MemberID: "a", Email: "a@example.com", Username: "alpha", Status: StatusInvisible}

	t.Run("owner", func(t *testing.T) {
		p := m.ProfileFor("a")
		assert.Equal(t, "a@example.com", p.Email)
		assert.Equal(t, StatusInvisible, p.Status)
	})

	t.Run("other viewer", func(t *testing.T) {
		p := m.ProfileFor("b")
		assert.Empty(t, p.Email)
		assert.Equal(t, StatusOffline, p.Status)
	})

	t.Run("email shown by choice", func(t *testing.T) {
		shown := m
		shown.ShowEmail = true
		shown.Status = StatusBusy
		p := shown.ProfileFor("b")
		assert.Equal(t, "a@example.com", p.Email)
		assert.Equal(t, StatusBusy, p.Status)
	})
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" away ")
	assert.NoError(t, err)
	assert.Equal(t, StatusAway, s)

	_, err = ParseStatus("Offline")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestValidateEmail(t *testing.T) {
	email, err := ValidateEmail(" User@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", email)

	for _, bad := range []string{"", "user", "user@", "Name <user@example.com>"} {
		_, err := ValidateEmail(bad)
		assert.ErrorIs(t, err, ErrInvalidEmail, bad)
	}
}

func TestNormalizeUsername(t *testing.T) {
	name, err := NormalizeUsername("  gamer  ")
	assert.NoError(t, err)
	assert.Equal(t, "gamer", name)

	_, err = NormalizeUsername("ab")
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, err = NormalizeUsername("遊戲玩家一")
	assert.NoError(t, err, "length is counted in characters")

	_, err = NormalizeUsername(string(make([]rune, 33)))
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestProfileUpdateValidate(t *testing.T) {
	u := ProfileUpdate{Username: " gamer ", Bio: " hi "}
	assert.NoError(t, u.Validate())
	assert.Equal(t, "gamer", u.Username)
	assert.Equal(t, "hi", u.Bio)

	long := make([]rune, 501)
	for i := range long {
		long[i] = 'x'
	}
	u = ProfileUpdate{Username: "gamer", Bio: string(long)}
	assert.ErrorIs(t, u.Validate(), ErrBioTooLong)
}

package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"gamevault/pkg/encrypt"
)

// AccountState account lifecycle, independent of the online status a member picks
type AccountState int

// 0=active, 1=ban, 2=delete
const (
	// AccountActive can log in
	AccountActive AccountState = iota
	// AccountBanned blocked by an admin
	AccountBanned
	// AccountDeleted soft deleted
	AccountDeleted
)

// UserStatus status a member shows to others
type UserStatus string

const (
	// StatusOnline default after signup
	StatusOnline UserStatus = "Online"
	// StatusAway away
	StatusAway UserStatus = "Away"
	// StatusBusy do not disturb
	StatusBusy UserStatus = "Busy"
	// StatusInvisible appears offline to everyone else
	StatusInvisible UserStatus = "Invisible"
	// StatusOffline reported for invisible or disconnected members, never stored
	StatusOffline UserStatus = "Offline"
)

// StatusOptions statuses a member may choose
var StatusOptions = []UserStatus{StatusOnline, StatusAway, StatusBusy, StatusInvisible}

const (
	usernameMinLen = 3
	usernameMaxLen = 32
	bioMaxLen      = 500
)

var (
	ErrEmailExists     = errors.New("email already exists")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidUsername = errors.New("username must be 3 to 32 characters")
	ErrBioTooLong      = errors.New("bio must be at most 500 characters")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrMemberNotFound  = errors.New("user not found")
	ErrAccountDisabled = errors.New("account is disabled")
	ErrSessionNotFound = errors.New("session not found")
)

// Member account row
type Member struct {
	ID              int64
	MemberID        string
	Email           string
	Password        string
	Username        string
	Bio             string
	Status          UserStatus
	ProfileImageURL string
	ShowEmail       bool
	Account         AccountState
	CreatedAt       time.Time
}

// MemberSession session stored in redis under the member id
type MemberSession struct {
	Token        string    `json:"Token"`
	MemberID     string    `json:"MemberID"`
	CreatedAt    time.Time `json:"CreatedAt"`
	LastActivity time.Time `json:"LastActivity"`
	ExpiredAt    time.Time `json:"ExpiredAt"`
}

// Profile what another member may see
type Profile struct {
	MemberID        string
	Username        string
	Email           string
	Bio             string
	Status          UserStatus
	ProfileImageURL string
	ShowEmail       bool
	CreatedAt       time.Time
}

// ProfileUpdate editable profile fields
type ProfileUpdate struct {
	Username        string
	Bio             string
	ShowEmail       bool
	ProfileImageURL string
}

// IsPasswordMatch compares with the stored hash
func (m *Member) IsPasswordMatch(inputPwd string) error {
	return encrypt.CheckPassword(m.Password, inputPwd)
}

// CanLogin only active accounts can open a session
func (m *Member) CanLogin() bool {
	return m.Account == AccountActive
}

// ProfileFor projects the member for viewerID. Email is only filled for the owner or when ShowEmail is on.
func (m *Member) ProfileFor(viewerID string) Profile {
	p := Profile{
		MemberID:        m.MemberID,
		Username:        m.Username,
		Bio:             m.Bio,
		Status:          m.Status,
		ProfileImageURL: m.ProfileImageURL,
		ShowEmail:       m.ShowEmail,
		CreatedAt:       m.CreatedAt,
	}
	if m.ShowEmail || viewerID == m.MemberID {
		p.Email = m.Email
	}
	if m.Status == StatusInvisible && viewerID != m.MemberID {
		p.Status = StatusOffline
	}
	return p
}

// IsExpired session passed ExpiredAt
func (s *MemberSession) IsExpired() bool {
	return time.Now().After(s.ExpiredAt)
}

// ParseStatus accepts one of StatusOptions, case insensitive
func ParseStatus(s string) (UserStatus, error) {
	for _, opt := range StatusOptions {
		if strings.EqualFold(string(opt), strings.TrimSpace(s)) {
			return opt, nil
		}
	}
	return "", ErrInvalidStatus
}

// ValidateEmail lower cases and checks the address
func ValidateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// NormalizeUsername trims and checks the length in characters
func NormalizeUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < usernameMinLen || n > usernameMaxLen {
		return "", ErrInvalidUsername
	}
	return name, nil
}

// Validate normalizes the update in place
func (u *ProfileUpdate) Validate() error {
	name, err := NormalizeUsername(u.Username)
	if err != nil {
		return err
	}
	u.Username = name
	u.Bio = strings.TrimSpace(u.Bio)
	if utf8.RuneCountInString(u.Bio) > bioMaxLen {
		return ErrBioTooLong
	}
	u.ProfileImageURL = strings.TrimSpace(u.ProfileImageURL)
	return nil
}

// MemberQuery optional lookup conditions, nil fields are ignored
type MemberQuery struct {
	ID       *int64  `db:"id"`
	MemberID *string `db:"member_id"`
	Email    *string `db:"email"`
}

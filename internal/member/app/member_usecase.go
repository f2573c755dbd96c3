package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamevault/internal/member/domain"
	"gamevault/internal/member/repository"
	"gamevault/pkg"
	"gamevault/pkg/database"
	"gamevault/pkg/logger"
	"gamevault/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const searchLimitMax = 50

// MemberUseCase account, session and profile operations
type MemberUseCase interface {
	Signup(ctx context.Context, email, password, username string) (string, string, error)
	FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Logout(ctx context.Context, token string) error
	ForceLogout(ctx context.Context, memberID string) error
	CheckSessionTimeout(ctx context.Context, token string) (bool, error)
	ReconnectSession(ctx context.Context, token string) error

	GetProfile(ctx context.Context, memberID, viewerID string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, memberID string, update domain.ProfileUpdate) (domain.Profile, error)
	UpdateProfileImage(ctx context.Context, memberID, url string) error
	UpdateStatus(ctx context.Context, memberID, status string) error
	FindMembers(ctx context.Context, memberIDs []string, viewerID string) ([]domain.Profile, error)
	SearchMembers(ctx context.Context, query string, limit int, viewerID string) ([]domain.Profile, error)
}

type memberUseCase struct {
	memberRepo   repository.MemberRepository
	sessionTTL   time.Duration
	redisRepo    database.RedisRepository[domain.MemberSession]
	hashPassword func(string) (string, error)
}

// NewMemberUseCase hashPassword is encrypt.HashPassword outside tests
func NewMemberUseCase(memberRepo repository.MemberRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.MemberSession],
	hashPassword func(string) (string, error),
) MemberUseCase {
	return &memberUseCase{
		memberRepo:   memberRepo,
		sessionTTL:   sessionTTL,
		redisRepo:    redisRepo,
		hashPassword: hashPassword,
	}
}

// Signup creates the account then opens its first session, returns member id and token
func (m *memberUseCase) Signup(ctx context.Context, email, password, username string) (string, string, error) {
	email, err := domain.ValidateEmail(email)
	if err != nil {
		return "", "", err
	}
	username, err = domain.NormalizeUsername(username)
	if err != nil {
		return "", "", err
	}

	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email}); err == nil {
		return "", "", domain.ErrEmailExists
	}

	pw, err := m.hashPassword(password)
	if err != nil {
		logger.Log.Error("hash password failed", zap.String("email", email), zap.Error(err))
		return "", "", err
	}

	member := domain.Member{
		MemberID: uuid.New().String(),
		Email:    email,
		Password: pw,
		Username: username,
		Status:   domain.StatusOnline,
		Account:  domain.AccountActive,
	}

	if err := m.memberRepo.CreateUser(ctx, &member); err != nil {
		return "", "", err
	}
	logger.Log.Info("member created", zap.String("member_id", member.MemberID))

	tk, err := m.openSession(ctx, member.MemberID)
	if err != nil {
		return member.MemberID, "", err
	}
	return member.MemberID, tk, nil
}

// FindMember lookup by id, member id or email
func (m *memberUseCase) FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error) {
	return m.memberRepo.FindByMember(ctx, param)
}

// Login returns member id and token
func (m *memberUseCase) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	if err != nil {
		logger.Log.Error("login email not found", zap.String("email", email))
		return "", "", domain.ErrMemberNotFound
	}

	if !member.CanLogin() {
		return "", "", domain.ErrAccountDisabled
	}

	if err = member.IsPasswordMatch(password); err != nil {
		logger.Log.Error("login password mismatch", zap.String("member_id", member.MemberID))
		return "", "", err
	}

	tk, err := m.openSession(ctx, member.MemberID)
	if err != nil {
		return "", "", err
	}
	return member.MemberID, tk, nil
}

func (m *memberUseCase) openSession(ctx context.Context, memberID string) (string, error) {
	tk, err := token.GenerateJWTWrapper(memberID, string(token.RoleMember))
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := domain.MemberSession{
		Token:        tk,
		MemberID:     memberID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(m.sessionTTL),
	}
	if err := m.redisRepo.Set(ctx, memberID, session, m.sessionTTL); err != nil {
		logger.Log.Error("save session failed", zap.String("member_id", memberID), zap.Error(err))
		return "", err
	}
	return tk, nil
}

// Logout drops the session of the token owner
func (m *memberUseCase) Logout(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
		return err
	}
	logger.Log.Debug("logout", zap.String("member_id", tokenInfo.MemberID))

	return m.redisRepo.Del(ctx, tokenInfo.MemberID)
}

// ForceLogout drops the member session whatever token it holds
func (m *memberUseCase) ForceLogout(ctx context.Context, memberID string) error {
	return m.redisRepo.Del(ctx, memberID)
}

// CheckSessionTimeout true when the session behind t is gone
func (m *memberUseCase) CheckSessionTimeout(ctx context.Context, t string) (bool, error) {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		return true, err
	}

	ttl, err := m.redisRepo.GetTTL(ctx, tokenInfo.MemberID)
	if err != nil {
		return true, err
	}
	return ttl <= 0, nil
}

// ReconnectSession touches LastActivity and extends the session by the configured ttl
func (m *memberUseCase) ReconnectSession(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		return err
	}

	session, err := m.redisRepo.Get(ctx, tokenInfo.MemberID)
	if err != nil {
		if errors.Is(err, database.ErrRedisNil) {
			return domain.ErrSessionNotFound
		}
		return err
	}

	now := time.Now()
	session.LastActivity = now
	session.ExpiredAt = now.Add(m.sessionTTL)
	return m.redisRepo.Set(ctx, tokenInfo.MemberID, session, m.sessionTTL)
}

// GetProfile projects memberID for viewerID
func (m *memberUseCase) GetProfile(ctx context.Context, memberID, viewerID string) (domain.Profile, error) {
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return domain.Profile{}, err
	}
	return member.ProfileFor(viewerID), nil
}

// UpdateProfile replaces every editable field at once
func (m *memberUseCase) UpdateProfile(ctx context.Context, memberID string, update domain.ProfileUpdate) (domain.Profile, error) {
	if err := update.Validate(); err != nil {
		return domain.Profile{}, err
	}

	member, err := m.memberRepo.UpdateProfile(ctx, memberID, update)
	if err != nil {
		logger.Log.Error("update profile failed", zap.String("member_id", memberID), zap.Error(err))
		return domain.Profile{}, err
	}
	return member.ProfileFor(memberID), nil
}

// UpdateProfileImage stores the avatar url produced by the media context
func (m *memberUseCase) UpdateProfileImage(ctx context.Context, memberID, url string) error {
	return m.memberRepo.UpdateProfileImage(ctx, memberID, url)
}

// UpdateStatus accepts only the status options
func (m *memberUseCase) UpdateStatus(ctx context.Context, memberID, status string) error {
	s, err := domain.ParseStatus(status)
	if err != nil {
		return err
	}
	return m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{MemberID: memberID, Status: s})
}

// FindMembers unknown ids are skipped
func (m *memberUseCase) FindMembers(ctx context.Context, memberIDs []string, viewerID string) ([]domain.Profile, error) {
	members, err := m.memberRepo.FindByIDs(ctx, pkg.Unique(memberIDs))
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(members))
	for _, member := range members {
		profiles = append(profiles, member.ProfileFor(viewerID))
	}
	return profiles, nil
}

// SearchMembers username prefix search, limit is clamped to 1..50
func (m *memberUseCase) SearchMembers(ctx context.Context, query string, limit int, viewerID string) ([]domain.Profile, error) {
	if limit <= 0 || limit > searchLimitMax {
		limit = searchLimitMax
	}

	members, err := m.memberRepo.SearchByUsername(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(members))
	for _, member := range members {
		profiles = append(profiles, member.ProfileFor(viewerID))
	}
	return profiles, nil
}

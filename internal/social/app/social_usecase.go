package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamevault/internal/social/domain"
	"gamevault/internal/social/repository"
	errprocess "gamevault/pkg/err"
	"gamevault/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var now = func() time.Time { return time.Now().UTC() }

// SocialUseCase friends page
type SocialUseCase interface {
	ListFriends(ctx context.Context, memberID, filter, search string) ([]domain.Friend, error)
	// SendRequest accepted is true when a pending request in the other direction was accepted instead
	SendRequest(ctx context.Context, fromID, toID string) (*domain.FriendRequest, bool, error)
	ListRequests(ctx context.Context, memberID string) ([]domain.IncomingRequest, error)
	AcceptRequest(ctx context.Context, memberID, requestID string) error
	DeclineRequest(ctx context.Context, memberID, requestID string) error
	RemoveFriend(ctx context.Context, memberID, friendID string) error
}

type socialUseCase struct {
	repo      repository.FriendRepository
	presence  repository.PresenceReader
	directory MemberDirectory
}

// NewSocialUseCase create SocialUseCase
func NewSocialUseCase(repo repository.FriendRepository, presence repository.PresenceReader, directory MemberDirectory) SocialUseCase {
	return &socialUseCase{
		repo:      repo,
		presence:  presence,
		directory: directory,
	}
}

func (s *socialUseCase) ListFriends(ctx context.Context, memberID, filter, search string) ([]domain.Friend, error) {
	ids, err := s.repo.FriendIDs(ctx, memberID)
	if err != nil {
		return nil, errprocess.Wrap("load friends", err)
	}
	if len(ids) == 0 {
		return []domain.Friend{}, nil
	}

	profiles, err := s.directory.Profiles(ctx, ids)
	if err != nil {
		return nil, errprocess.Wrap("resolve friends", err)
	}

	// presence is best effort, the list still renders with everyone offline
	online, err := s.presence.OnlineUsers(ctx, ids)
	if err != nil {
		logger.Log.Warn("friend presence unavailable", zap.String("member", memberID), zap.Error(err))
		online = map[string]bool{}
	}

	friends := make([]domain.Friend, 0, len(ids))
	for _, id := range ids {
		p, ok := profiles[id]
		if !ok {
			continue
		}
		f := domain.Friend{
			MemberID:        id,
			Username:        p.GetUsername(),
			ProfileImageURL: p.GetProfileImageUrl(),
			Status:          domain.StatusOffline,
		}
		// the member service already reports invisible members as Offline
		if online[id] && p.GetStatus() != domain.StatusOffline {
			f.Online = true
			f.Status = p.GetStatus()
		}
		friends = append(friends, f)
	}
	return domain.FilterFriends(friends, domain.ParseFriendFilter(filter), search), nil
}

func (s *socialUseCase) SendRequest(ctx context.Context, fromID, toID string) (*domain.FriendRequest, bool, error) {
	toID = strings.TrimSpace(toID)
	if toID == "" || toID == fromID {
		return nil, false, domain.ErrSelfRequest
	}

	profiles, err := s.directory.Profiles(ctx, []string{toID})
	if err != nil {
		return nil, false, errprocess.Wrap("resolve request target", err)
	}
	if _, ok := profiles[toID]; !ok {
		return nil, false, domain.ErrMemberNotFound
	}

	friends, err := s.repo.AreFriends(ctx, fromID, toID)
	if err != nil {
		return nil, false, errprocess.Wrap("check friendship", err)
	}
	if friends {
		return nil, false, domain.ErrAlreadyFriends
	}

	req := &domain.FriendRequest{
		ID:     uuid.NewString(),
		FromID: fromID,
		ToID:   toID,
		Status: domain.RequestPending,
		SentAt: now(),
	}
	stored, accepted, err := s.repo.SendRequest(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrRequestExists) || errors.Is(err, domain.ErrRequestHandled) {
			return nil, false, err
		}
		return nil, false, errprocess.Wrap("send friend request", err)
	}
	if accepted {
		logger.Log.Info("friend request crossed, accepted", zap.String("request", stored.ID))
	}
	return stored, accepted, nil
}

func (s *socialUseCase) ListRequests(ctx context.Context, memberID string) ([]domain.IncomingRequest, error) {
	reqs, err := s.repo.IncomingRequests(ctx, memberID)
	if err != nil {
		return nil, errprocess.Wrap("load friend requests", err)
	}
	out := make([]domain.IncomingRequest, 0, len(reqs))
	if len(reqs) == 0 {
		return out, nil
	}

	senders := make([]string, 0, len(reqs))
	for _, r := range reqs {
		senders = append(senders, r.FromID)
	}
	profiles, err := s.directory.Profiles(ctx, senders)
	if err != nil {
		return nil, errprocess.Wrap("resolve request senders", err)
	}

	for _, r := range reqs {
		in := domain.IncomingRequest{FriendRequest: r}
		if p, ok := profiles[r.FromID]; ok {
			in.FromUsername = p.GetUsername()
			in.FromProfileImageURL = p.GetProfileImageUrl()
		}
		out = append(out, in)
	}
	return out, nil
}

func (s *socialUseCase) AcceptRequest(ctx context.Context, memberID, requestID string) error {
	req, err := s.addressedTo(ctx, memberID, requestID)
	if err != nil {
		return err
	}
	return s.repo.AcceptRequest(ctx, req, now())
}

func (s *socialUseCase) DeclineRequest(ctx context.Context, memberID, requestID string) error {
	req, err := s.addressedTo(ctx, memberID, requestID)
	if err != nil {
		return err
	}
	return s.repo.DeclineRequest(ctx, req, now())
}

// addressedTo only the addressee may answer a pending request
func (s *socialUseCase) addressedTo(ctx context.Context, memberID, requestID string) (*domain.FriendRequest, error) {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ToID != memberID {
		return nil, domain.ErrNotAddressee
	}
	if !req.Pending() {
		return nil, domain.ErrRequestHandled
	}
	return req, nil
}

func (s *socialUseCase) RemoveFriend(ctx context.Context, memberID, friendID string) error {
	if friendID == "" || friendID == memberID {
		return domain.ErrNotFriends
	}
	return s.repo.RemoveFriendship(ctx, memberID, friendID)
}

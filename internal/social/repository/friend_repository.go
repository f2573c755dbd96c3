package repository

import (
	"context"
	"errors"
	"time"

	"gamevault/internal/social/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository friendships and friend requests in postgres
type FriendRepository interface {
	AutoMigrate() error
	FriendIDs(ctx context.Context, memberID string) ([]string, error)
	AreFriends(ctx context.Context, a, b string) (bool, error)
	RemoveFriendship(ctx context.Context, a, b string) error

	// SendRequest stores req unless the pair already has a pending request.
	// A pending request in the opposite direction is accepted instead and returned with accepted true.
	SendRequest(ctx context.Context, req *domain.FriendRequest) (stored *domain.FriendRequest, accepted bool, err error)
	GetRequest(ctx context.Context, id string) (*domain.FriendRequest, error)
	IncomingRequests(ctx context.Context, memberID string) ([]domain.FriendRequest, error)
	// AcceptRequest marks the request accepted and stores both directions of the friendship
	AcceptRequest(ctx context.Context, req *domain.FriendRequest, at time.Time) error
	DeclineRequest(ctx context.Context, req *domain.FriendRequest, at time.Time) error
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository create FriendRepository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Friendship{}, &domain.FriendRequest{})
}

func (r *friendRepository) FriendIDs(ctx context.Context, memberID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("member_id = ?", memberID).
		Order("created_at ASC").
		Pluck("friend_id", &ids).Error
	return ids, err
}

func (r *friendRepository) AreFriends(ctx context.Context, a, b string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("member_id = ? AND friend_id = ?", a, b).
		Count(&n).Error
	return n > 0, err
}

// RemoveFriendship deletes both directions
func (r *friendRepository) RemoveFriendship(ctx context.Context, a, b string) error {
	res := r.db.WithContext(ctx).
		Where("(member_id = ? AND friend_id = ?) OR (member_id = ? AND friend_id = ?)", a, b, b, a).
		Delete(&domain.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFriends
	}
	return nil
}

// sendAttempts bounds retries when the conflicting request is answered between the insert and the lookup
const sendAttempts = 3

func (r *friendRepository) SendRequest(ctx context.Context, req *domain.FriendRequest) (*domain.FriendRequest, bool, error) {
	req.PairKey = domain.RequestPairKey(req.FromID, req.ToID)

	var stored *domain.FriendRequest
	var accepted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 0; i < sendAttempts; i++ {
			res := tx.Clauses(pendingPairConflict).Create(req)
			if res.Error != nil {
				if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
					return domain.ErrRequestExists
				}
				return res.Error
			}
			if res.RowsAffected == 1 {
				stored = req
				return nil
			}

			var existing []domain.FriendRequest
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("pair_key = ? AND status = ?", req.PairKey, domain.RequestPending).
				Limit(1).
				Find(&existing).Error
			if err != nil {
				return err
			}
			if len(existing) == 0 {
				continue
			}
			if existing[0].FromID == req.FromID {
				return domain.ErrRequestExists
			}
			if err := acceptIn(tx, &existing[0], req.SentAt); err != nil {
				return err
			}
			stored, accepted = &existing[0], true
			return nil
		}
		return domain.ErrRequestExists
	})
	if err != nil {
		return nil, false, err
	}
	return stored, accepted, nil
}

// pendingPairConflict the literal predicate lets postgres infer the partial unique index
var pendingPairConflict = clause.OnConflict{
	Columns:     []clause.Column{{Name: "pair_key"}},
	TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "status = 'pending'"}}},
	DoNothing:   true,
}

func (r *friendRepository) GetRequest(ctx context.Context, id string) (*domain.FriendRequest, error) {
	var req domain.FriendRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// IncomingRequests pending requests addressed to memberID, newest first
func (r *friendRepository) IncomingRequests(ctx context.Context, memberID string) ([]domain.FriendRequest, error) {
	var reqs []domain.FriendRequest
	err := r.db.WithContext(ctx).
		Where("to_id = ? AND status = ?", memberID, domain.RequestPending).
		Order("sent_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *friendRepository) AcceptRequest(ctx context.Context, req *domain.FriendRequest, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return acceptIn(tx, req, at)
	})
}

func acceptIn(tx *gorm.DB, req *domain.FriendRequest, at time.Time) error {
	if err := markHandled(tx, req, domain.RequestAccepted, at); err != nil {
		return err
	}
	pair := []domain.Friendship{
		{MemberID: req.FromID, FriendID: req.ToID, CreatedAt: at},
		{MemberID: req.ToID, FriendID: req.FromID, CreatedAt: at},
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&pair).Error
}

func (r *friendRepository) DeclineRequest(ctx context.Context, req *domain.FriendRequest, at time.Time) error {
	return markHandled(r.db.WithContext(ctx), req, domain.RequestDeclined, at)
}

// markHandled only a pending request moves, a concurrent answer loses with ErrRequestHandled
func markHandled(tx *gorm.DB, req *domain.FriendRequest, status domain.RequestStatus, at time.Time) error {
	res := tx.Model(&domain.FriendRequest{}).
		Where("id = ? AND status = ?", req.ID, domain.RequestPending).
		Updates(map[string]interface{}{"status": status, "responded_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRequestHandled
	}
	req.Status = status
	req.RespondedAt = &at
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"gamevault/internal/catalog/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository games and member libraries in postgres
type GameRepository interface {
	AutoMigrate() error
	Count(ctx context.Context) (int64, error)
	CreateGames(ctx context.Context, games []domain.Game) error
	ListGames(ctx context.Context) ([]domain.Game, error)
	SearchGames(ctx context.Context, keyword string) ([]domain.Game, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)

	Library(ctx context.Context, memberID string) ([]domain.LibraryEntry, error)
	AddToLibrary(ctx context.Context, entry *domain.LibraryEntry) (bool, error)
	UpdateEntry(ctx context.Context, memberID, gameID string, fields map[string]interface{}) error
	RemoveFromLibrary(ctx context.Context, memberID, gameID string) error
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository create GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Game{}, &domain.LibraryEntry{})
}

func (r *gameRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Game{}).Count(&n).Error
	return n, err
}

// CreateGames inserts games, existing ids are left untouched
func (r *gameRepository) CreateGames(ctx context.Context, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&games).Error
}

// ListGames ordered by name
func (r *gameRepository) ListGames(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// SearchGames ILIKE on the name, genre filtering is left to the caller
func (r *gameRepository) SearchGames(ctx context.Context, keyword string) ([]domain.Game, error) {
	var games []domain.Game
	like := "%" + keyword + "%"
	if err := r.db.WithContext(ctx).Where("name ILIKE ?", like).Order("name ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	var g domain.Game
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Library entries of memberID with their game, ordered by when they were added
func (r *gameRepository) Library(ctx context.Context, memberID string) ([]domain.LibraryEntry, error) {
	var entries []domain.LibraryEntry
	err := r.db.WithContext(ctx).
		Preload("Game").
		Where("member_id = ?", memberID).
		Order("added_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToLibrary created is false when the member already owns the game
func (r *gameRepository) AddToLibrary(ctx context.Context, entry *domain.LibraryEntry) (bool, error) {
	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).
		Omit("Game").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateEntry only the given columns change
func (r *gameRepository) UpdateEntry(ctx context.Context, memberID, gameID string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&domain.LibraryEntry{}).
		Where("member_id = ? AND game_id = ?", memberID, gameID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotInLibrary
	}
	return nil
}

func (r *gameRepository) RemoveFromLibrary(ctx context.Context, memberID, gameID string) error {
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND game_id = ?", memberID, gameID).
		Delete(&domain.LibraryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotInLibrary
	}
	return nil
}

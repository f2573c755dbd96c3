package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamevault/internal/catalog/domain"
	"gamevault/internal/catalog/repository"
	errprocess "gamevault/pkg/err"
	"gamevault/pkg/logger"

	"go.uber.org/zap"
)

var now = func() time.Time { return time.Now().UTC() }

// CatalogUseCase browse, dashboard and library
type CatalogUseCase interface {
	Seed(ctx context.Context, games []domain.Game) (int, error)
	ListGames(ctx context.Context, query, genre string) ([]domain.Game, error)
	Dashboard(ctx context.Context, query, genre string) (domain.Dashboard, error)
	Genres() []string
	GetGame(ctx context.Context, id string) (*domain.Game, error)

	Library(ctx context.Context, memberID, filter string) ([]domain.LibraryEntry, error)
	AddToLibrary(ctx context.Context, memberID, gameID string) (bool, error)
	RemoveFromLibrary(ctx context.Context, memberID, gameID string) error
	SetFavorite(ctx context.Context, memberID, gameID string, favorite bool) error
	SetInstalled(ctx context.Context, memberID, gameID string, installed bool) error
	RecordPlay(ctx context.Context, memberID, gameID string) (time.Time, error)
}

type catalogUseCase struct {
	repo repository.GameRepository
}

// NewCatalogUseCase create CatalogUseCase
func NewCatalogUseCase(repo repository.GameRepository) CatalogUseCase {
	return &catalogUseCase{repo: repo}
}

// Seed loads games only into an empty catalog, returns how many were written
func (c *catalogUseCase) Seed(ctx context.Context, games []domain.Game) (int, error) {
	n, err := c.repo.Count(ctx)
	if err != nil {
		return 0, errprocess.Wrap("count games", err)
	}
	if n > 0 {
		logger.Log.Debug("catalog already seeded", zap.Int64("games", n))
		return 0, nil
	}
	if err := c.repo.CreateGames(ctx, games); err != nil {
		return 0, errprocess.Wrap("seed games", err)
	}
	logger.Log.Info("catalog seeded", zap.Int("games", len(games)))
	return len(games), nil
}

func (c *catalogUseCase) ListGames(ctx context.Context, query, genre string) ([]domain.Game, error) {
	var games []domain.Game
	var err error
	if q := strings.TrimSpace(query); q != "" {
		games, err = c.repo.SearchGames(ctx, q)
	} else {
		games, err = c.repo.ListGames(ctx)
	}
	if err != nil {
		return nil, errprocess.Wrap("list games", err)
	}
	return domain.FilterGames(games, query, genre), nil
}

func (c *catalogUseCase) Dashboard(ctx context.Context, query, genre string) (domain.Dashboard, error) {
	games, err := c.ListGames(ctx, query, genre)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return domain.SplitTrending(games), nil
}

func (c *catalogUseCase) Genres() []string {
	return append([]string(nil), domain.Genres...)
}

func (c *catalogUseCase) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidGameID
	}
	return c.repo.GetByID(ctx, id)
}

// Library filter is one of all, recent, favorites or installed
func (c *catalogUseCase) Library(ctx context.Context, memberID, filter string) ([]domain.LibraryEntry, error) {
	entries, err := c.repo.Library(ctx, memberID)
	if err != nil {
		return nil, errprocess.Wrap("load library", err)
	}
	return domain.FilterLibrary(entries, domain.ParseLibraryFilter(filter)), nil
}

// AddToLibrary false when the game was already owned
func (c *catalogUseCase) AddToLibrary(ctx context.Context, memberID, gameID string) (bool, error) {
	if _, err := c.GetGame(ctx, gameID); err != nil {
		return false, err
	}
	created, err := c.repo.AddToLibrary(ctx, &domain.LibraryEntry{
		MemberID: memberID,
		GameID:   gameID,
		AddedAt:  now(),
	})
	if err != nil {
		return false, errprocess.Wrap(fmt.Sprintf("add %s to library of %s", gameID, memberID), err)
	}
	return created, nil
}

func (c *catalogUseCase) RemoveFromLibrary(ctx context.Context, memberID, gameID string) error {
	return c.update(ctx, memberID, gameID, nil)
}

func (c *catalogUseCase) SetFavorite(ctx context.Context, memberID, gameID string, favorite bool) error {
	return c.update(ctx, memberID, gameID, map[string]interface{}{"favorite": favorite})
}

func (c *catalogUseCase) SetInstalled(ctx context.Context, memberID, gameID string, installed bool) error {
	return c.update(ctx, memberID, gameID, map[string]interface{}{"installed": installed})
}

func (c *catalogUseCase) RecordPlay(ctx context.Context, memberID, gameID string) (time.Time, error) {
	at := now()
	if err := c.update(ctx, memberID, gameID, map[string]interface{}{"last_played": at}); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

// update removes the entry when fields is nil
func (c *catalogUseCase) update(ctx context.Context, memberID, gameID string, fields map[string]interface{}) error {
	if strings.TrimSpace(gameID) == "" {
		return domain.ErrInvalidGameID
	}

	var err error
	if fields == nil {
		err = c.repo.RemoveFromLibrary(ctx, memberID, gameID)
	} else {
		err = c.repo.UpdateEntry(ctx, memberID, gameID, fields)
	}
	if err != nil && !errors.Is(err, domain.ErrNotInLibrary) {
		return errprocess.Wrap(fmt.Sprintf("update library entry %s of %s", gameID, memberID), err)
	}
	return err
}

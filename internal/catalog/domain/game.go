package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GenreAll matches every genre
const GenreAll = "All"

// Genres offered by the browse page, GenreAll first
var Genres = []string{GenreAll, "RPG", "FPS", "MOBA", "MMO", "Battle Royale", "Sandbox", "Strategy", "Sports", "Racing"}

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrNotInLibrary  = errors.New("game is not in library")
	ErrAlreadyOwned  = errors.New("game already in library")
	ErrInvalidGameID = errors.New("game id is required")
)

// Game catalog row. PopularChannels is persisted as the comma joined Channels column
type Game struct {
	ID              string   `gorm:"primaryKey;size:64" json:"id"`
	Name            string   `gorm:"size:128;not null;index" json:"name"`
	Image           string   `json:"image"`
	Genre           string   `gorm:"size:32;index" json:"genre"`
	ActiveServers   int      `json:"activeServers"`
	OnlinePlayers   int      `json:"onlinePlayers"`
	Trending        bool     `json:"trending"`
	Channels        string   `json:"-"`
	PopularChannels []string `gorm:"-" json:"popularChannels"`
}

// BeforeSave keeps the Channels column in sync with PopularChannels
func (g *Game) BeforeSave(tx *gorm.DB) error {
	g.Channels = strings.Join(g.PopularChannels, ",")
	return nil
}

// AfterFind splits the Channels column back into PopularChannels
func (g *Game) AfterFind(tx *gorm.DB) error {
	g.PopularChannels = nil
	for _, c := range strings.Split(g.Channels, ",") {
		if c = strings.TrimSpace(c); c != "" {
			g.PopularChannels = append(g.PopularChannels, c)
		}
	}
	return nil
}

// MatchesQuery case insensitive substring match on the name
func (g Game) MatchesQuery(query string) bool {
	return strings.Contains(strings.ToLower(g.Name), strings.ToLower(strings.TrimSpace(query)))
}

// MatchesGenre empty or All matches everything
func (g Game) MatchesGenre(genre string) bool {
	genre = strings.TrimSpace(genre)
	if genre == "" || strings.EqualFold(genre, GenreAll) {
		return true
	}
	return strings.EqualFold(g.Genre, genre)
}

// FilterGames keeps the order of games
func FilterGames(games []Game, query, genre string) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if g.MatchesQuery(query) && g.MatchesGenre(genre) {
			out = append(out, g)
		}
	}
	return out
}

// Dashboard filtered catalog split the way the home page shows it
type Dashboard struct {
	Trending []Game `json:"trending"`
	Regular  []Game `json:"regular"`
}

// SplitTrending partitions games, both halves keep their order
func SplitTrending(games []Game) Dashboard {
	d := Dashboard{Trending: []Game{}, Regular: []Game{}}
	for _, g := range games {
		if g.Trending {
			d.Trending = append(d.Trending, g)
		} else {
			d.Regular = append(d.Regular, g)
		}
	}
	return d
}

// LibraryFilter library tab
type LibraryFilter string

const (
	LibraryAll       LibraryFilter = "all"
	LibraryRecent    LibraryFilter = "recent"
	LibraryFavorites LibraryFilter = "favorites"
	LibraryInstalled LibraryFilter = "installed"
)

// ParseLibraryFilter unknown values fall back to all
func ParseLibraryFilter(s string) LibraryFilter {
	switch f := LibraryFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case LibraryRecent, LibraryFavorites, LibraryInstalled:
		return f
	default:
		return LibraryAll
	}
}

// LibraryEntry a game owned by a member
type LibraryEntry struct {
	MemberID   string     `gorm:"primaryKey;size:64" json:"-"`
	GameID     string     `gorm:"primaryKey;size:64" json:"gameId"`
	Game       Game       `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"game"`
	LastPlayed *time.Time `json:"lastPlayed"`
	Favorite   bool       `json:"isFavorite"`
	Installed  bool       `json:"isInstalled"`
	AddedAt    time.Time  `json:"addedAt"`
}

// FilterLibrary applies f; recent drops never played games and orders by last played, newest first
func FilterLibrary(entries []LibraryEntry, f LibraryFilter) []LibraryEntry {
	out := make([]LibraryEntry, 0, len(entries))
	for _, e := range entries {
		switch f {
		case LibraryRecent:
			if e.LastPlayed == nil {
				continue
			}
		case LibraryFavorites:
			if !e.Favorite {
				continue
			}
		case LibraryInstalled:
			if !e.Installed {
				continue
			}
		}
		out = append(out, e)
	}

	if f == LibraryRecent {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastPlayed.After(*out[j].LastPlayed)
		})
	}
	return out
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"gamevault/internal/member/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS member (
	id                BIGSERIAL PRIMARY KEY,
	member_id         VARCHAR(36)  NOT NULL UNIQUE,
	email             VARCHAR(255) NOT NULL UNIQUE,
	password          VARCHAR(255) NOT NULL,
	username          VARCHAR(64)  NOT NULL DEFAULT '',
	bio               TEXT         NOT NULL DEFAULT '',
	status            VARCHAR(16)  NOT NULL DEFAULT 'Online',
	profile_image_url TEXT         NOT NULL DEFAULT '',
	show_email        BOOLEAN      NOT NULL DEFAULT FALSE,
	account           SMALLINT     NOT NULL DEFAULT 0,
	created_at        TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS member_username_lower_idx ON member (LOWER(username));
`

const memberColumns = "id, member_id, email, password, username, bio, status, profile_image_url, show_email, account, created_at"

// MemberRepository member table access
type MemberRepository interface {
	Migrate(ctx context.Context) error
	CreateUser(ctx context.Context, member *domain.Member) error
	UpdateMemberStatus(ctx context.Context, member *domain.Member) error
	UpdateProfile(ctx context.Context, memberID string, p domain.ProfileUpdate) (*domain.Member, error)
	UpdateProfileImage(ctx context.Context, memberID, url string) error
	FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error)
	FindByIDs(ctx context.Context, memberIDs []string) ([]*domain.Member, error)
	SearchByUsername(ctx context.Context, prefix string, limit int) ([]*domain.Member, error)
}

type memberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository create a MemberRepository
func NewMemberRepository(db *pgxpool.Pool) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schema)
	return err
}

func (r *memberRepository) CreateUser(ctx context.Context, member *domain.Member) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO member(member_id, email, password, username, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		member.MemberID, member.Email, member.Password, member.Username, string(member.Status))
	if err := row.Scan(&member.ID, &member.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *memberRepository) UpdateMemberStatus(ctx context.Context, member *domain.Member) error {
	tag, err := r.db.Exec(ctx, "UPDATE member SET status = $1 WHERE member_id = $2", string(member.Status), member.MemberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// UpdateProfile writes every editable field in one statement
func (r *memberRepository) UpdateProfile(ctx context.Context, memberID string, p domain.ProfileUpdate) (*domain.Member, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE member SET username = $1, bio = $2, show_email = $3, profile_image_url = $4
		 WHERE member_id = $5 RETURNING `+memberColumns,
		p.Username, p.Bio, p.ShowEmail, p.ProfileImageURL, memberID)
	return scanMember(row)
}

func (r *memberRepository) UpdateProfileImage(ctx context.Context, memberID, url string) error {
	tag, err := r.db.Exec(ctx, "UPDATE member SET profile_image_url = $1 WHERE member_id = $2", url, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) FindByMember(ctx context.Context, memberQuery *domain.MemberQuery) (*domain.Member, error) {
	queryStr := "SELECT " + memberColumns + " FROM member WHERE 1=1"
	params := []interface{}{}
	paramCount := 1

	if memberQuery.Email != nil {
		queryStr += fmt.Sprintf(" AND email = $%d", paramCount)
		params = append(params, *memberQuery.Email)
		paramCount++
	}
	if memberQuery.MemberID != nil {
		queryStr += fmt.Sprintf(" AND member_id = $%d", paramCount)
		params = append(params, *memberQuery.MemberID)
		paramCount++
	}
	if memberQuery.ID != nil {
		queryStr += fmt.Sprintf(" AND id = $%d", paramCount)
		params = append(params, *memberQuery.ID)
		paramCount++
	}
	if paramCount == 1 {
		return nil, errors.New("member query needs at least one condition")
	}

	return scanMember(r.db.QueryRow(ctx, queryStr, params...))
}

func (r *memberRepository) FindByIDs(ctx context.Context, memberIDs []string) ([]*domain.Member, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, "SELECT "+memberColumns+" FROM member WHERE member_id = ANY($1)", memberIDs)
	if err != nil {
		return nil, err
	}
	return scanMembers(rows)
}

// SearchByUsername case insensitive prefix match ordered by username
func (r *memberRepository) SearchByUsername(ctx context.Context, prefix string, limit int) ([]*domain.Member, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(prefix))
	rows, err := r.db.Query(ctx,
		"SELECT "+memberColumns+" FROM member WHERE LOWER(username) LIKE $1 AND account = 0 ORDER BY username LIMIT $2",
		escaped+"%", limit)
	if err != nil {
		return nil, err
	}
	return scanMembers(rows)
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	var status string
	var account int16
	err := row.Scan(&m.ID, &m.MemberID, &m.Email, &m.Password, &m.Username, &m.Bio,
		&status, &m.ProfileImageURL, &m.ShowEmail, &account, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	m.Status = domain.UserStatus(status)
	m.Account = domain.AccountState(account)
	return &m, nil
}

func scanMembers(rows pgx.Rows) ([]*domain.Member, error) {
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

package postgis

import (
	"context"
	"fmt"
	"strconv"

	"moodmap/types"

	"github.com/jackc/pgx/v4/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindAuthors(ctx context.Context, ids []int64) (map[int64]types.AuthorBrief, error) {
	out := make(map[int64]types.AuthorBrief, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.db.Query(ctx, `SELECT id, nickname, avatar FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id             int64
			nickname, avatar string
		)
		if err := rows.Scan(&id, &nickname, &avatar); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		out[id] = types.AuthorBrief{ID: strconv.FormatInt(id, 10), DisplayName: nickname, Avatar: avatar}
	}
	return out, rows.Err()
}

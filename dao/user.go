package dao

import (
	"context"
	"strconv"

	"moodmap/models"
	"moodmap/types"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindAuthors 批量查询作者简要信息
func (u *Users) FindAuthors(ctx context.Context, ids []int64) (map[int64]types.AuthorBrief, error) {
	out := make(map[int64]types.AuthorBrief, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, err := u.Repo.FindAll(ctx, "id IN ?", ids)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		out[user.ID] = types.AuthorBrief{
			ID:          strconv.FormatInt(user.ID, 10),
			DisplayName: user.Nickname,
			Avatar:      user.Avatar,
		}
	}
	return out, nil
}

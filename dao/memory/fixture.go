package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"moodmap/models"
	"moodmap/pkg/snowflake"
	"moodmap/types"
)

type fixtureUser struct {
	ID          json.Number `json:"id"`
	DisplayName string      `json:"displayName"`
	Avatar      string      `json:"avatar"`
}

type fixturePost struct {
	ID         json.Number      `json:"id"`
	AuthorID   json.Number      `json:"authorId"`
	Emotion    models.Emotion   `json:"emotion"`
	Reason     *string          `json:"reason"`
	People     []string         `json:"people"`
	Activities []string         `json:"activities"`
	Location   *models.Location `json:"location"`
	Privacy    models.Privacy   `json:"privacy"`
	Timestamp  time.Time        `json:"timestamp"`
	Likes      []json.Number    `json:"likes"`
	Comments   []map[string]any `json:"comments"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

type fixture struct {
	Users []fixtureUser `json:"users"`
	Posts []fixturePost `json:"posts"`
}

// LoadFixture 从 JSON 文件加载帖子与用户
func (s *Store) LoadFixture(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fx fixture
	if err := json.Unmarshal(content, &fx); err != nil {
		return fmt.Errorf("解析 %s 错误: %w", path, err)
	}

	for _, u := range fx.Users {
		id, err := u.ID.Int64()
		if err != nil {
			return fmt.Errorf("user id %q: %w", u.ID, err)
		}
		s.PutAuthor(id, types.AuthorBrief{
			ID:          strconv.FormatInt(id, 10),
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
		})
	}

	for _, fp := range fx.Posts {
		id, err := postID(fp.ID)
		if err != nil {
			return fmt.Errorf("post id %q: %w", fp.ID, err)
		}
		authorID, _ := fp.AuthorID.Int64()
		p := &models.Post{
			ID:            id,
			AuthorID:      authorID,
			Emotion:       fp.Emotion,
			Reason:        fp.Reason,
			People:        fp.People,
			Activities:    fp.Activities,
			Location:      fp.Location,
			Privacy:       fp.Privacy,
			Timestamp:     fp.Timestamp,
			LikesCount:    len(fp.Likes),
			CommentsCount: len(fp.Comments),
			CreatedAt:     fp.CreatedAt,
			UpdatedAt:     fp.UpdatedAt,
		}
		if p.People == nil {
			p.People = []string{}
		}
		if p.Activities == nil {
			p.Activities = []string{}
		}
		s.PutPost(p)
	}
	return nil
}

// postID 未给 id 的样例帖按雪花算法补一个
func postID(n json.Number) (int64, error) {
	if n == "" {
		return snowflake.GenID(), nil
	}
	return n.Int64()
}

package snowflake

import (
	"errors"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

var ErrInvalidID = errors.New("invalid id")

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// ParseID 校验并解析字符串形式的帖子 ID
func ParseID(s string) (int64, error) {
	id, err := snowflake.ParseString(s)
	if err != nil || id.Int64() <= 0 {
		return 0, ErrInvalidID
	}
	return id.Int64(), nil
}

package repository

import (
	"LyvoAdmin/internal/model"
	"LyvoAdmin/internal/pkg/consts"
	"LyvoAdmin/internal/pkg/redis"
	"context"
	"strconv"
	"strings"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// DismissalRepo 记录管理员已忽略的合成通知 ID。
// 丢失该存储不致命：被忽略的合成通知会重新出现，直到再次被忽略。
type DismissalRepo interface {
	// Record 幂等地记录一条忽略
	Record(ctx context.Context, id string) error
	// List 返回当前的忽略集合
	List(ctx context.Context) ([]string, error)
	// Prune 清除未知前缀与过期条目，并截断到容量上限
	Prune(ctx context.Context) error
}

// hasKnownPrefix 仅保留两类合成通知的条目
func hasKnownPrefix(id string) bool {
	return strings.HasPrefix(id, model.PendingPropertyPrefix) ||
		strings.HasPrefix(id, model.NewUserPrefix)
}

type redisDismissalRepo struct {
	key        string
	maxEntries int
	maxAge     time.Duration
}

// NewRedisDismissalRepo 基于 Redis ZSet 的忽略集合，score 为忽略时间
func NewRedisDismissalRepo(adminID string, maxEntries int, maxAge time.Duration) DismissalRepo {
	return &redisDismissalRepo{
		key:        consts.NotifyDismissedKey + adminID,
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

func (s *redisDismissalRepo) Record(ctx context.Context, id string) error {
	rdb := redis.GetRdbClient()
	// NX 保留首次忽略的时间
	return rdb.ZAddNX(ctx, s.key, redisv9.Z{
		Score:  float64(time.Now().Unix()),
		Member: id,
	}).Err()
}

func (s *redisDismissalRepo) List(ctx context.Context) ([]string, error) {
	rdb := redis.GetRdbClient()
	list, err := rdb.ZRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *redisDismissalRepo) Prune(ctx context.Context) error {
	rdb := redis.GetRdbClient()

	members, err := rdb.ZRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return err
	}

	var unknown []interface{}
	for _, m := range members {
		if !hasKnownPrefix(m) {
			unknown = append(unknown, m)
		}
	}

	pipe := rdb.Pipeline()
	if len(unknown) > 0 {
		pipe.ZRem(ctx, s.key, unknown...)
	}
	cutoff := time.Now().Add(-s.maxAge).Unix()
	pipe.ZRemRangeByScore(ctx, s.key, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZRemRangeByRank(ctx, s.key, 0, int64(-(s.maxEntries + 1)))
	_, err = pipe.Exec(ctx)
	return err
}

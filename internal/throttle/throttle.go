package throttle

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/littlelemon-next/internal/constants"
)

// Rate 解析后的限流速率
type Rate struct {
	Limit  int
	Window time.Duration
}

// ParseRate 解析 "N/period" 形式的速率串
// period 支持 min/hour/day；解析失败返回 ok=false（调用方视为不限流）
func ParseRate(rate string) (Rate, bool) {
	parts := strings.SplitN(strings.TrimSpace(rate), "/", 2)
	if len(parts) != 2 {
		return Rate{}, false
	}
	limit, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || limit <= 0 {
		return Rate{}, false
	}
	var window time.Duration
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case constants.ThrottlePeriodMin:
		window = time.Minute
	case constants.ThrottlePeriodHour:
		window = time.Hour
	case constants.ThrottlePeriodDay:
		window = 24 * time.Hour
	default:
		return Rate{}, false
	}
	return Rate{Limit: limit, Window: window}, true
}

// Decision 限流判定结果
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter 分组滑动窗口限流器
// 读-改-写不加锁，允许并发下的轻微超量（尽力限流）
type Limiter struct {
	store HistoryStore
	now   func() time.Time
}

// Option 限流器可选配置
type Option func(*Limiter)

// WithClock 注入时钟（测试用）
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter 创建限流器
func NewLimiter(store HistoryStore, opts ...Option) *Limiter {
	l := &Limiter{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key 生成限流键：分组 + 用户ID
func Key(group string, userID uint) string {
	return fmt.Sprintf("throttle:%s:%d", group, userID)
}

// Allow 判定一次请求：窗口内命中次数达到上限则拒绝
func (l *Limiter) Allow(ctx context.Context, key, rate string) (Decision, error) {
	parsed, ok := ParseRate(rate)
	if !ok {
		return Decision{Allowed: true}, nil
	}

	now := l.now()
	history, err := l.store.Get(ctx, key)
	if err != nil {
		return Decision{Allowed: true}, err
	}

	// 历史按新到旧排列，淘汰窗口外的尾部
	cutoff := now.Add(-parsed.Window)
	for len(history) > 0 && !history[len(history)-1].After(cutoff) {
		history = history[:len(history)-1]
	}

	if len(history) >= parsed.Limit {
		oldest := history[len(history)-1]
		retryAfter := oldest.Add(parsed.Window).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	history = append([]time.Time{now}, history...)
	if err := l.store.Set(ctx, key, history, parsed.Window); err != nil {
		return Decision{Allowed: true}, err
	}
	return Decision{Allowed: true}, nil
}

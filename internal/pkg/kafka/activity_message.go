package kafka

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	ActionRead   = "read"
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

var ErrUnknownAction = errors.New("unknown activity action")

// ActivityEvent 文章阅读与点赞事件
type ActivityEvent struct {
	BlogID string `json:"blog_id"`
	Action string `json:"action"`
}

// ParseActivityEvent 解析消息体并校验字段
func ParseActivityEvent(value []byte) (*ActivityEvent, error) {
	var evt ActivityEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return nil, errors.Wrap(err, "unmarshal activity event")
	}
	if evt.BlogID == "" {
		return nil, errors.New("activity event without blog_id")
	}
	if _, _, err := evt.Deltas(); err != nil {
		return nil, err
	}
	return &evt, nil
}

// Deltas 返回 total_reads 与 total_likes 的增量
func (e *ActivityEvent) Deltas() (reads, likes int64, err error) {
	switch e.Action {
	case ActionRead:
		return 1, 0, nil
	case ActionLike:
		return 0, 1, nil
	case ActionUnlike:
		return 0, -1, nil
	}
	return 0, 0, errors.Wrapf(ErrUnknownAction, "action %q", e.Action)
}

package kafka

import (
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second
)

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 拉取一批消息并执行业务逻辑
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				processBatch(session, batch, logic)
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				processBatch(session, batch, logic)
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			processBatch(session, batch, logic)
			batch = make([]*sarama.ConsumerMessage, 0, batchSize)
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 按分区内的 offset 顺序逐条处理。增量事件依赖顺序 (unlike 不能先于 like)，
// 失败只记录日志，不重试，处理完后提交最后一条的 offset
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	if len(messages) == 0 {
		return
	}
	for _, m := range messages {
		if err := logic(session.Context(), m); err != nil {
			log.Error("process message error", "topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "err", err)
		}
	}
	session.MarkMessage(messages[len(messages)-1], "")
}

package kafka

import (
	"Blogverse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

type ActivityHandler struct {
	postRepo repository.PostRepo
}

func NewActivityHandler(postRepo repository.PostRepo) *ActivityHandler {
	return &ActivityHandler{
		postRepo: postRepo,
	}
}

func (s *ActivityHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("blog activity consumer setup")
	return nil
}

func (s *ActivityHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("blog activity consumer cleanup")
	return nil
}

func (s *ActivityHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-activity consume claim", "partition", claim.Partition())
	return pullMessageBatch(session, claim, s.logic)
}

func (s *ActivityHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	evt, err := ParseActivityEvent(msg.Value)
	if err != nil {
		return errors.Wrapf(err, "offset %d", msg.Offset)
	}
	reads, likes, _ := evt.Deltas()
	if err = s.postRepo.IncrementActivity(ctx, evt.BlogID, reads, likes); err != nil {
		return errors.Wrapf(err, "increment activity of %s", evt.BlogID)
	}
	log.DebugContext(ctx, "blog activity applied", "blog_id", evt.BlogID, "action", evt.Action)
	return nil
}

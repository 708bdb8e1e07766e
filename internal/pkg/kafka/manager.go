package kafka

import (
	"Blogverse/internal/api/config"
	"Blogverse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic            string
	activityConsumer sarama.ConsumerGroup
	activityHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(kafkaCfg config.KafkaConfig, consumerCfg config.KafkaActivityConsumer, postRepo repository.PostRepo) (*ConsumerManager, error) {
	activityConsumer, err := sarama.NewConsumerGroup(kafkaCfg.Brokers, consumerCfg.GroupID, newSaramaConfig(kafkaCfg))
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		topic:            consumerCfg.Topic,
		activityConsumer: activityConsumer,
		activityHandler:  NewActivityHandler(postRepo),
	}, nil
}

// Start 阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.activityConsumer.Errors() {
			log.Error("Error from activity consumer group", "err", err)
		}
	}()

	go func() {
		log.Info("Activity consumer started", "topic", m.topic)
		for {
			if err := m.activityConsumer.Consume(ctx, []string{m.topic}, m.activityHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.activityConsumer.Close(); err != nil {
		log.Error("Failed to close activity consumer", "err", err)
	}
	return nil
}

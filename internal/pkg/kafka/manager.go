package kafka

import (
	"Chirper/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	followshipsConsumer sarama.ConsumerGroup
	followshipsHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	followshipsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaFollowshipCDC.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		followshipsConsumer: followshipsConsumer,
		followshipsHandler:  NewFollowshipsHandler(),
	}, nil
}

// Start 启动所有消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaFollowshipCDC.Topic
		log.Info("Followships consumer started", "topic", topic)
		for {
			if err := m.followshipsConsumer.Consume(ctx, []string{topic}, m.followshipsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.followshipsConsumer.Close(); err != nil {
		log.Error("Failed to close followships consumer", "err", err)
	}

	return nil
}

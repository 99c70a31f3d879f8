package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type SessionCompletedProducer struct {
	producer mq.Producer
}

func NewSessionCompletedProducer(q mq.MQ) (*SessionCompletedProducer, error) {
	producer, err := q.Producer(SessionCompletedEvent{}.Topic())
	if err != nil {
		return nil, err
	}
	return &SessionCompletedProducer{producer: producer}, nil
}

func (p *SessionCompletedProducer) Produce(ctx context.Context, evt SessionCompletedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送面试完成消息失败: %w", err)
	}
	return nil
}

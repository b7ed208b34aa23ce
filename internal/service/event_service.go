// FILE: internal/service/event_service.go
package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"stembills-dashboard/internal/dto"
	"stembills-dashboard/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// CallbackPublisher reports every callback dispatch on the event topic.
// It satisfies dash.Observer.
type CallbackPublisher struct {
	publisher message.Publisher
	topic     string
	log       logger.ILogger
}

func NewCallbackPublisher(publisher message.Publisher, topic string, log logger.ILogger) *CallbackPublisher {
	return &CallbackPublisher{publisher: publisher, topic: topic, log: log}
}

func (p *CallbackPublisher) Observe(output string, elapsed time.Duration, err error) {
	evt := dto.CallbackEvent{
		Output:     output,
		DurationMs: elapsed.Milliseconds(),
	}
	if err != nil {
		evt.Error = err.Error()
	}

	payload, mErr := json.Marshal(evt)
	if mErr != nil {
		p.log.Error("Telemetry", "Failed to encode callback event", map[string]interface{}{"error": mErr})
		return
	}

	// Telemetry never fails a callback.
	if pErr := p.publisher.Publish(p.topic, message.NewMessage(watermill.NewUUID(), payload)); pErr != nil {
		p.log.Warn("Telemetry", "Failed to publish callback event", map[string]interface{}{
			"output": output,
			"error":  pErr.Error(),
		})
	}
}

type ICallbackStatsService interface {
	Consume(ctx context.Context) error
	Snapshot() []dto.CallbackStats
}

type callbackStatsService struct {
	subscriber message.Subscriber
	topic      string
	log        logger.ILogger

	mu    sync.RWMutex
	stats map[string]*dto.CallbackStats
}

func NewCallbackStatsService(subscriber message.Subscriber, topic string, log logger.ILogger) ICallbackStatsService {
	return &callbackStatsService{
		subscriber: subscriber,
		topic:      topic,
		log:        log,
		stats:      make(map[string]*dto.CallbackStats),
	}
}

func (s *callbackStatsService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *callbackStatsService) processMessage(msg *message.Message) {
	var evt dto.CallbackEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.Warn("Telemetry", "Dropping malformed callback event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	s.mu.Lock()
	st, ok := s.stats[evt.Output]
	if !ok {
		st = &dto.CallbackStats{Output: evt.Output}
		s.stats[evt.Output] = st
	}
	st.Calls++
	st.TotalDurationMs += evt.DurationMs
	if evt.Error != "" {
		st.Failures++
		st.LastError = evt.Error
	}
	s.mu.Unlock()

	msg.Ack()
}

// Snapshot returns per-output counters sorted by output id.
func (s *callbackStatsService) Snapshot() []dto.CallbackStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.CallbackStats, 0, len(s.stats))
	for _, st := range s.stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Output < out[j].Output })
	return out
}

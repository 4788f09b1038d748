// Package notify publishes run summaries to RabbitMQ so downstream
// consumers (dashboards, alerting) can react to finished mirror runs.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"album_syncer/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// RunSummaryMessage is the wire shape of a finished run notification.
type RunSummaryMessage struct {
	RunID        int64     `json:"runId"`
	RunUUID      string    `json:"runUuid"`
	JobID        int64     `json:"jobId"`
	JobName      string    `json:"jobName"`
	SuccessCount int       `json:"successCount"`
	TotalCount   int       `json:"totalCount"`
	Duration     string    `json:"duration"`
	Timestamp    time.Time `json:"timestamp"`
}

// PublishRunSummary emits one message describing a finished run.
func (r *RabbitMQ) PublishRunSummary(ctx context.Context, run domain.RunContext, stats domain.RunStats) error {
	msg := RunSummaryMessage{
		RunID:        run.RunID,
		RunUUID:      run.RunUUID,
		JobID:        run.JobID,
		JobName:      run.JobName,
		SuccessCount: stats.Success,
		TotalCount:   stats.Total,
		Duration:     stats.Duration.String(),
		Timestamp:    time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published run summary",
		"run_uuid", run.RunUUID,
		"job_id", run.JobID,
		"success_count", stats.Success,
		"total_count", stats.Total,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

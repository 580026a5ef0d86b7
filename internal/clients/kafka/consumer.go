package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Shopify/sarama"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const monthLayout = "2006-01"

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportRenderer interface {
	MonthHTML(ctx context.Context, at time.Time) (string, error)
}

type documentSender interface {
	SendDocument(name string, data []byte, userID int64) error
	SendMessage(text string, userID int64) error
}

// Consumer turns queued report requests into rendered HTML documents and
// delivers them back to the requesting user.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	renderer      reportRenderer
	sender        documentSender
}

func NewConsumer(cfg consumerConfig, renderer reportRenderer, sender documentSender) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ReportsTopic(),
		renderer:      renderer,
		sender:        sender,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var req reports.Request
		err := json.Unmarshal(message.Value, &req)
		if err != nil {
			logger.Error("cannot unmarshal kafka message", zap.Error(err))
		} else {
			logger.Info(
				"received report request",
				zap.ByteString("key", message.Key),
				zap.Int64("userID", req.UserID),
				zap.String("month", req.Month),
			)
			c.processRequest(session.Context(), &req)
		}
		session.MarkMessage(message, "")
	}

	return nil
}

func (c *Consumer) processRequest(ctx context.Context, req *reports.Request) {
	at, err := time.Parse(monthLayout, req.Month)
	if err != nil {
		logger.Error("invalid report month", zap.String("month", req.Month), zap.Error(err))
		return
	}

	html, err := c.renderer.MonthHTML(ctx, at)
	if err != nil {
		logger.Error("failed to render report", zap.Error(err))
		_ = c.sender.SendMessage("Can't build your report atm. Try later", req.UserID)
		return
	}

	name := fmt.Sprintf("expenses-%s.html", req.Month)
	if err = c.sender.SendDocument(name, []byte(html), req.UserID); err != nil {
		logger.Error("failed to send report", zap.Error(err))
	}
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gamevault/internal/media/domain"
	"gamevault/pkg/database"
	"gamevault/pkg/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Consumer handles thumbnail jobs delivered by rabbitmq
type Consumer struct {
	deliveries <-chan amqp.Delivery
	store      database.MinIOClientRepo
	retryDelay time.Duration
}

// NewConsumer deliveries must come from a channel consuming with autoAck off
func NewConsumer(deliveries <-chan amqp.Delivery, store database.MinIOClientRepo, retryDelay time.Duration) *Consumer {
	return &Consumer{
		deliveries: deliveries,
		store:      store,
		retryDelay: retryDelay,
	}
}

// StartConsumer blocks until ctx is done or the delivery channel closes
func (c *Consumer) StartConsumer(ctx context.Context) {
	logger.Log.Info("thumbnail consumer started")
	for {
		select {
		case d, ok := <-c.deliveries:
			if !ok {
				logger.Log.Info("rabbitmq delivery channel closed")
				return
			}
			c.handle(ctx, d)
		case <-ctx.Done():
			logger.Log.Info("thumbnail consumer stopped")
			return
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var job domain.ThumbnailJob
	if err := json.Unmarshal(d.Body, &job); err != nil || job.MemberID == "" {
		// a malformed job never succeeds, drop it instead of requeueing
		logger.Log.Error("invalid thumbnail job", zap.ByteString("body", d.Body), zap.Error(err))
		if err := d.Reject(false); err != nil {
			logger.Log.Error("reject thumbnail job", zap.Error(err))
		}
		return
	}

	if err := c.Process(ctx, job); err != nil {
		logger.Log.Error("thumbnail job failed", zap.String("member", job.MemberID), zap.Error(err))
		if errors.Is(err, domain.ErrNotImage) {
			if err := d.Reject(false); err != nil {
				logger.Log.Error("reject thumbnail job", zap.Error(err))
			}
			return
		}
		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
		}
		if err := d.Nack(false, true); err != nil {
			logger.Log.Error("nack thumbnail job", zap.Error(err))
		}
		return
	}

	if err := d.Ack(false); err != nil {
		logger.Log.Error("ack thumbnail job", zap.Error(err))
		return
	}
	logger.Log.Debug("thumbnail written", zap.String("member", job.MemberID))
}

// Process reads the stored avatar and writes its thumbnail next to it
func (c *Consumer) Process(ctx context.Context, job domain.ThumbnailJob) error {
	objectName := job.ObjectName
	if objectName == "" {
		objectName = domain.AvatarObject(job.MemberID)
	}

	data, err := c.store.GetObject(ctx, objectName)
	if err != nil {
		return fmt.Errorf("download avatar: %w", err)
	}

	thumb, err := cropSquare(data, domain.ThumbSize)
	if err != nil {
		return err
	}

	if err := c.store.PutObject(ctx, domain.ThumbObject(job.MemberID), bytes.NewReader(thumb), int64(len(thumb)), domain.AvatarContentType); err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}
	return nil
}

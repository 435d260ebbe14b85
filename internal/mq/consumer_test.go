package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	t.Run("subscribe when already started returns nil", func(t *testing.T) {
		c := &Consumer{
			started: true,
		}

		err := c.Subscribe()
		assert.NoError(t, err)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestClickEventHandler(t *testing.T) {
	t.Run("handler processes message", func(t *testing.T) {
		processed := false
		handler := func(ctx context.Context, msg *ClickEventMessage) error {
			processed = true
			assert.Equal(t, "abc12345", msg.ShortCode)
			return nil
		}

		msg := &ClickEventMessage{
			EventID:   "5e3a1a6e-1b2c-4d5e-8f90-123456789abc",
			ShortCode: "abc12345",
			ClientIP:  "192.168.1.1",
			UserAgent: "test-agent",
			Referer:   "https://example.com",
			ClickedAt: time.Now(),
		}

		err := handler(context.Background(), msg)
		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler returns error", func(t *testing.T) {
		handler := func(ctx context.Context, msg *ClickEventMessage) error {
			return assert.AnError
		}

		msg := &ClickEventMessage{
			ShortCode: "abc12345",
		}

		err := handler(context.Background(), msg)
		assert.Error(t, err)
	})
}

func TestConsumer_NewConsumer_Structure(t *testing.T) {
	t.Run("consumer structure is correct", func(t *testing.T) {
		c := &Consumer{
			topic:   "test-topic",
			group:   "test-group",
			handler: func(ctx context.Context, msg *ClickEventMessage) error { return nil },
		}

		assert.Equal(t, "test-topic", c.topic)
		assert.Equal(t, "test-group", c.group)
		assert.NotNil(t, c.handler)
	})
}

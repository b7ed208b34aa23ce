package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stembills-dashboard/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackStatsAggregatesPublishedEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stats := NewCallbackStatsService(pubSub, "dashboard.callback", logger.NewNopLogger())
	require.NoError(t, stats.Consume(ctx))

	pub := NewCallbackPublisher(pubSub, "dashboard.callback", logger.NewNopLogger())
	pub.Observe("scatter-plot.figure", 12*time.Millisecond, nil)
	pub.Observe("scatter-plot.figure", 8*time.Millisecond, nil)
	pub.Observe("point-plot.figure", time.Millisecond, errors.New("hover payload has no billspassed key"))

	assert.Eventually(t, func() bool {
		snap := stats.Snapshot()
		return len(snap) == 2 && snap[1].Calls == 2
	}, time.Second, 10*time.Millisecond)

	snap := stats.Snapshot()
	assert.Equal(t, "point-plot.figure", snap[0].Output)
	assert.Equal(t, 1, snap[0].Failures)
	assert.Contains(t, snap[0].LastError, "billspassed")
	assert.Equal(t, "scatter-plot.figure", snap[1].Output)
	assert.Equal(t, int64(20), snap[1].TotalDurationMs)
	assert.Zero(t, snap[1].Failures)
}

func TestCallbackStatsAcksMalformedEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stats := NewCallbackStatsService(pubSub, "dashboard.callback", logger.NewNopLogger())
	require.NoError(t, stats.Consume(ctx))

	require.NoError(t, pubSub.Publish("dashboard.callback", message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	NewCallbackPublisher(pubSub, "dashboard.callback", logger.NewNopLogger()).Observe("point-plot.figure", 0, nil)

	assert.Eventually(t, func() bool {
		return len(stats.Snapshot()) == 1
	}, time.Second, 10*time.Millisecond)
}

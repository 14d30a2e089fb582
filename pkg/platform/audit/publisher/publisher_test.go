package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmgate/pkg/platform/audit"
	"farmgate/pkg/requestcontext"
)

func TestChannelPublisherEnrichesAndDelivers(t *testing.T) {
	inbox := make(chan audit.Event, 1)
	p := NewChannelPublisher(inbox, nil)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	ctx = requestcontext.WithRequestID(ctx, "req-42")
	ctx = requestcontext.WithClientIP(ctx, "10.0.0.9")

	err := p.Emit(ctx, audit.Event{
		Action:  string(audit.EventFarmerRegistered),
		ActorID: "operator-1",
	})
	require.NoError(t, err)

	got := <-inbox
	assert.Equal(t, now, got.Timestamp)
	assert.Equal(t, audit.CategoryCompliance, got.Category)
	assert.Equal(t, "req-42", got.RequestID)
	assert.Equal(t, "10.0.0.9", got.ClientIP)
}

func TestChannelPublisherNeverBlocks(t *testing.T) {
	inbox := make(chan audit.Event) // unbuffered, no reader
	p := NewChannelPublisher(inbox, nil)

	done := make(chan struct{})
	go func() {
		_ = p.Emit(context.Background(), audit.Event{Action: "plot_created"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full inbox")
	}
}

func TestCategoryDefaultsToOperations(t *testing.T) {
	inbox := make(chan audit.Event, 1)
	p := NewChannelPublisher(inbox, nil)

	require.NoError(t, p.Emit(context.Background(), audit.Event{Action: "something_new"}))
	got := <-inbox
	assert.Equal(t, audit.CategoryOperations, got.Category)
}

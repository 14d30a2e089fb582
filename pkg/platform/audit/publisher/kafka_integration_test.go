//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"farmgate/pkg/platform/audit"
	"farmgate/pkg/testutil/containers"
)

func TestKafkaPublisherRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := containers.GetManager().Redpanda(t).Broker

	pub, err := NewKafkaPublisher(ctx, []string{broker}, "farmgate.audit.test", slog.Default())
	require.NoError(t, err)

	event := audit.Event{
		Action:   string(audit.EventFarmerRegistered),
		ActorID:  "operator-1",
		FarmerID: "farmer-1",
		Subject:  "ramesh.patil",
	}
	require.NoError(t, pub.Emit(ctx, event))
	require.NoError(t, pub.Close(ctx))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics("farmgate.audit.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, "operator-1", string(records[0].Key))

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, event.Action, got.Action)
	require.Equal(t, event.Subject, got.Subject)
	require.Equal(t, audit.CategoryCompliance, got.Category, "emit must enrich the category")
	require.False(t, got.Timestamp.IsZero(), "emit must stamp the event")
}

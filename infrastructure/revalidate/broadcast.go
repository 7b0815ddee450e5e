package revalidate

import (
	"context"
	"encoding/json"

	"github.com/alien2112/menu-rwad-sub005/infrastructure/valkey"
	"github.com/sirupsen/logrus"
)

// Channel is the pub/sub channel revalidation messages are published on
// when Valkey is enabled. Sibling instances and edge consumers subscribe to
// it; the message body is the same shape as the webhook payload.
const Channel = "revalidate"

// Broadcast publishes revalidation signals over Valkey pub/sub so that
// every subscribed consumer sees the invalidation, not just the instance
// that handled the mutation.
type Broadcast struct {
	client   *valkey.Client
	serverID string
}

type broadcastMessage struct {
	Server string   `json:"server,omitempty"`
	Paths  []string `json:"paths,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

func NewBroadcast(client *valkey.Client, serverID string) *Broadcast {
	return &Broadcast{client: client, serverID: serverID}
}

func (b *Broadcast) InvalidatePaths(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	b.publish(ctx, broadcastMessage{Server: b.serverID, Paths: paths})
}

func (b *Broadcast) InvalidateTags(ctx context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}
	b.publish(ctx, broadcastMessage{Server: b.serverID, Tags: tags})
}

func (b *Broadcast) publish(ctx context.Context, msg broadcastMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		logrus.Warnf("[REVALIDATE] Failed to marshal broadcast: %v", err)
		return
	}

	inner := b.client.Inner()
	channel := b.client.Key(Channel)
	if err := inner.Do(ctx, inner.B().Publish().Channel(channel).Message(string(data)).Build()).Error(); err != nil {
		logrus.Warnf("[REVALIDATE] Publish to %s failed: %v", channel, err)
	}
}

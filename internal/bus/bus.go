// Package bus carries in-process events between the entry store side of the
// application and the UI, using a watermill gochannel pub/sub. Appends are
// published here so any open view of the affected day refreshes without the
// operator re-selecting the date.
package bus

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	gochannel "github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"

	"github.com/mkutlu/skylog/internal/journal"
)

// TopicEntries receives one EntryEvent per successful append.
const TopicEntries = "journal.entry.appended"

// EntryEvent is the payload published on TopicEntries.
type EntryEvent struct {
	Day   string        `json:"day"` // YYYY-MM-DD collection key
	Entry journal.Entry `json:"entry"`
}

// Bus bundles a watermill router with an in-memory pub/sub.
type Bus struct {
	Router     *message.Router
	Publisher  message.Publisher
	Subscriber message.Subscriber

	runOnce sync.Once
}

// NewInMemory builds a bus backed by a buffered gochannel pub/sub.
func NewInMemory() (*Bus, error) {
	logger := watermill.NopLogger{}
	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, logger)

	r, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, errors.Wrap(err, "new watermill router")
	}
	return &Bus{
		Router:     r,
		Publisher:  pubsub,
		Subscriber: pubsub,
	}, nil
}

// AddHandler registers a consumer for topic. Must be called before Run.
func (b *Bus) AddHandler(name, topic string, handler func(*message.Message) error) {
	b.Router.AddConsumerHandler(name, topic, b.Subscriber, handler)
}

// Run starts the router and blocks until ctx is cancelled. Safe to call once.
func (b *Bus) Run(ctx context.Context) error {
	var runErr error
	b.runOnce.Do(func() {
		go func() {
			<-ctx.Done()
			_ = b.Router.Close()
		}()
		runErr = b.Router.Run(ctx)
	})
	return runErr
}

// PublishEntry announces a freshly appended entry for day.
func (b *Bus) PublishEntry(day time.Time, entry journal.Entry) error {
	payload, err := json.Marshal(EntryEvent{Day: journal.DayKey(day), Entry: entry})
	if err != nil {
		return errors.Wrap(err, "marshal entry event")
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return errors.Wrap(b.Publisher.Publish(TopicEntries, msg), "publish entry event")
}

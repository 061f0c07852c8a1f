package ui

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/mkutlu/skylog/internal/bus"
)

// RegisterForwarder subscribes to append events and re-emits them into the
// running Bubble Tea program. Must be called before the bus router starts.
func RegisterForwarder(b *bus.Bus, p *tea.Program) {
	b.AddHandler("ui-entry-forwarder", bus.TopicEntries, func(msg *message.Message) error {
		var ev bus.EntryEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return errors.Wrap(err, "decode entry event")
		}
		p.Send(entryEventMsg{Day: ev.Day, Entry: ev.Entry})
		return nil
	})
}

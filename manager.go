package paginator

import (
	"context"
	"sync"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

var (
	_ bot.EventListener = (*Manager)(nil)
	_ EventSource       = (*Manager)(nil)
)

func NewManager() *Manager {
	return &Manager{
		waiters: map[int]waiter{},
	}
}

// Manager fans component interactions out to waiting sessions. Register it as
// an event listener on the bot client and hand it to each session as its
// EventSource. Sessions never see each other's events because their match
// predicates are keyed on their own control IDs.
type Manager struct {
	mu      sync.Mutex
	waiters map[int]waiter
	nextID  int
}

type waiter struct {
	match func(Event) bool
	ch    chan Event
}

func (m *Manager) OnEvent(event bot.Event) {
	e, ok := event.(*events.ComponentInteractionCreate)
	if !ok {
		return
	}
	m.deliver(interactionEvent{event: e})
}

// deliver hands the event to the first matching waiter and deregisters it.
// The waiter channel is buffered, so a waiter that gave up concurrently never
// blocks delivery.
func (m *Manager) deliver(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, w := range m.waiters {
		if !w.match(e) {
			continue
		}
		delete(m.waiters, id)
		w.ch <- e
		return
	}
}

// AwaitEvent blocks until an event matching the predicate arrives or ctx is
// done. The registration is removed either way.
func (m *Manager) AwaitEvent(ctx context.Context, match func(Event) bool) (Event, error) {
	ch := make(chan Event, 1)
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.waiters[id] = waiter{match: match, ch: ch}
	m.mu.Unlock()

	select {
	case e := <-ch:
		return e, nil
	case <-ctx.Done():
		m.mu.Lock()
		delete(m.waiters, id)
		m.mu.Unlock()
		return nil, ctx.Err()
	}
}

// interactionEvent adapts a disgo component interaction to the Event and
// Acknowledger interfaces.
type interactionEvent struct {
	event *events.ComponentInteractionCreate
}

func (e interactionEvent) CustomID() string {
	return e.event.Data.CustomID()
}

func (e interactionEvent) Values() []string {
	if data, ok := e.event.Data.(discord.StringSelectMenuInteractionData); ok {
		return data.Values
	}
	return nil
}

func (e interactionEvent) UserID() snowflake.ID {
	return e.event.User().ID
}

func (e interactionEvent) Acknowledge(update discord.MessageUpdate) error {
	return e.event.UpdateMessage(update)
}

// NewChannelTransport returns a Transport that posts and edits the paginated
// message in the given channel over the client's rest API.
func NewChannelTransport(client bot.Client, channelID snowflake.ID) Transport {
	return &channelTransport{rest: client.Rest(), channelID: channelID}
}

type channelTransport struct {
	rest      rest.Rest
	channelID snowflake.ID
}

func (t *channelTransport) Send(ctx context.Context, create discord.MessageCreate) (*discord.Message, error) {
	return t.rest.CreateMessage(t.channelID, create, rest.WithCtx(ctx))
}

func (t *channelTransport) Edit(ctx context.Context, message *discord.Message, update discord.MessageUpdate) (*discord.Message, error) {
	return t.rest.UpdateMessage(message.ChannelID, message.ID, update, rest.WithCtx(ctx))
}

// NewRejectionNotifier returns a Notifier that tells a rejected user the
// session is not theirs with an ephemeral message.
func NewRejectionNotifier(message string) Notifier {
	return &rejectionNotifier{message: message}
}

type rejectionNotifier struct {
	message string
}

func (n *rejectionNotifier) NotifyRejected(ctx context.Context, e Event) error {
	ie, ok := e.(interactionEvent)
	if !ok {
		return nil
	}
	return ie.event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContent(n.message).
		SetEphemeral(true).
		Build(), rest.WithCtx(ctx))
}

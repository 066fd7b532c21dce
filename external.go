package paginator

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// Event is one inbound component interaction against a session's controls.
type Event interface {
	// CustomID returns the custom ID of the interacted control.
	CustomID() string
	// Values returns the selected option values for select interactions,
	// nil for anything else.
	Values() []string
	// UserID identifies the interacting user.
	UserID() snowflake.ID
}

// Acknowledger is implemented by events that can apply a message update as
// their own interaction response. The session prefers this over a plain
// transport edit so the host platform sees the interaction acknowledged.
type Acknowledger interface {
	Acknowledge(update discord.MessageUpdate) error
}

// Transport sends and edits the paginated message. It is the only way session
// state is surfaced to the end user.
type Transport interface {
	Send(ctx context.Context, create discord.MessageCreate) (*discord.Message, error)
	Edit(ctx context.Context, message *discord.Message, update discord.MessageUpdate) (*discord.Message, error)
}

// EventSource delivers component interactions. AwaitEvent blocks until an
// event matching the predicate arrives or ctx is done; implementations must
// drop the registration when ctx is cancelled so early session exits do not
// leak subscriptions.
type EventSource interface {
	AwaitEvent(ctx context.Context, match func(Event) bool) (Event, error)
}

// Notifier tells a rejected user that the session is not theirs.
type Notifier interface {
	NotifyRejected(ctx context.Context, e Event) error
}

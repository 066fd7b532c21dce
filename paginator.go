package paginator

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/log"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"
)

// Construction errors.
var (
	ErrNoControls     = errors.New("paginator: at least one of buttons or select must be enabled")
	ErrNotEnoughPages = errors.New("paginator: at least two pages are required")
)

// ErrStop is the stop signal. Returned from a Callback it ends the session
// immediately; Run never surfaces it to its caller.
var ErrStop = errors.New("paginator: stopped")

// HookResult tells the session what to do with the current iteration.
type HookResult int

const (
	// HookContinue proceeds with the current iteration.
	HookContinue HookResult = iota
	// HookSkipEvent discards the current event and resumes waiting.
	HookSkipEvent
	// HookStop ends the session immediately.
	HookStop
)

// Hook runs around the render step of each accepted event.
type Hook func(ctx context.Context, paginator *Paginator, e Event) HookResult

// Callback handles events aimed at custom controls. It returns the page index
// to jump to, or a negative index to leave the cursor alone. Returning ErrStop
// ends the session; any other error aborts it.
type Callback func(ctx context.Context, paginator *Paginator, e Event) (int, error)

// Paginator drives one paginated message from creation to timeout or stop.
// A paginator is not safe for concurrent use; Run owns all mutable state.
type Paginator struct {
	id     int
	cfg    Config
	pages  []Page
	author snowflake.ID

	transport Transport
	source    EventSource
	notifier  Notifier
	log       log.Logger

	index     int
	prevIndex int
	top       int

	lastEvent Event
	message   *discord.Message
	rendered  []discord.ContainerComponent
}

// Result describes the terminal state of a session.
type Result struct {
	Paginator *Paginator
	Author    snowflake.ID
	LastEvent Event
	Message   *discord.Message
}

// New validates the configuration and pages and builds a session. Titles are
// derived here, once; pages are copied so later caller mutations are not
// observed.
func New(transport Transport, source EventSource, notifier Notifier, author snowflake.ID, pages []Page, opts ...ConfigOpt) (*Paginator, error) {
	config := DefaultConfig()
	config.Apply(opts)

	if !config.UseButtons && !config.UseSelect {
		return nil, ErrNoControls
	}
	if len(pages) < 2 {
		return nil, ErrNotEnoughPages
	}

	owned := make([]Page, len(pages))
	copy(owned, pages)
	for i := range owned {
		owned[i].deriveTitle()
	}

	return &Paginator{
		id:        rand.Intn(1_000_000_000),
		cfg:       *config,
		pages:     owned,
		author:    author,
		transport: transport,
		source:    source,
		notifier:  notifier,
		log:       config.Logger,
		top:       len(owned) - 1,
	}, nil
}

func (p *Paginator) ID() int { return p.id }

func (p *Paginator) Index() int { return p.index }

func (p *Paginator) PrevIndex() int { return p.prevIndex }

func (p *Paginator) Top() int { return p.top }

func (p *Paginator) CurrentPage() Page { return p.pages[p.index] }

func (p *Paginator) Message() *discord.Message { return p.message }

// Run sends the initial page and drives the interaction loop until the
// timeout elapses, a hook or callback raises the stop signal, or ctx is
// cancelled. Timeout and stop are normal terminations; transport failures and
// context cancellation are not.
func (p *Paginator) Run(ctx context.Context) (Result, error) {
	message, err := p.transport.Send(ctx, p.pages[p.index].messageCreate(p.controls()))
	if err != nil {
		return p.result(), errors.Wrap(err, "paginator: send initial page")
	}
	p.message = message
	p.rendered = p.controls()

	for {
		e, err := p.await(ctx)
		if err != nil {
			if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
				p.finish(ctx)
				return p.result(), nil
			}
			return p.result(), err
		}
		p.lastEvent = e
		p.prevIndex = p.index

		switch p.runHook(ctx, p.cfg.BeforeRender, e) {
		case HookStop:
			return p.result(), nil
		case HookSkipEvent:
			continue
		}

		if err = p.dispatch(ctx, e); err != nil {
			if errors.Is(err, ErrStop) {
				return p.result(), nil
			}
			return p.result(), err
		}

		if err = p.render(ctx, e); err != nil {
			return p.result(), err
		}

		if p.runHook(ctx, p.cfg.AfterRender, e) == HookStop {
			return p.result(), nil
		}
	}
}

// await blocks until an event for this session passes the author check or the
// timeout elapses. A rejected event is notified and does not reset the
// running deadline.
func (p *Paginator) await(ctx context.Context) (Event, error) {
	waitCtx := ctx
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	for {
		e, err := p.source.AwaitEvent(waitCtx, p.matches)
		if err != nil {
			return nil, err
		}
		if p.check(e) {
			return e, nil
		}
		if p.notifier != nil {
			if err = p.notifier.NotifyRejected(ctx, e); err != nil {
				p.log.Error("paginator: failed to notify rejected user: ", err)
			}
		}
	}
}

// matches filters the shared event stream down to this session's controls.
// Navigation controls embed the session id; custom buttons and the current
// page's own controls are matched by their literal custom IDs.
func (p *Paginator) matches(e Event) bool {
	id := e.CustomID()
	if cid, ok := ParseControlID(id); ok {
		return cid.SessionID == p.id
	}
	for _, button := range p.cfg.CustomButtons {
		if button.CustomID == id {
			return true
		}
	}
	for _, component := range p.pages[p.index].Controls {
		if customID(component) == id {
			return true
		}
	}
	return false
}

func (p *Paginator) check(e Event) bool {
	return !p.cfg.AuthorOnly || e.UserID() == p.author
}

// dispatch resolves the event against the navigation roles first; unmatched
// IDs fall through to the page callback and then the session callback.
func (p *Paginator) dispatch(ctx context.Context, e Event) error {
	if cid, ok := ParseControlID(e.CustomID()); ok && cid.SessionID == p.id {
		switch cid.Role {
		case RoleSelect:
			if values := e.Values(); len(values) > 0 {
				if v, err := strconv.Atoi(values[0]); err == nil && v >= 1 && v <= p.top+1 {
					p.index = v - 1
				}
			}
		case RoleFirst:
			p.index = 0
		case RolePrev:
			p.index = max(p.index-1, 0)
		case RoleNext:
			p.index = min(p.index+1, p.top)
		case RoleLast:
			p.index = p.top
		}
		return nil
	}

	next, err := p.pages[p.index].runCallback(ctx, p, e)
	if err != nil {
		return err
	}
	if next >= 0 {
		if next <= p.top {
			p.index = next
		}
		return nil
	}
	if p.cfg.CustomCallback == nil {
		return nil
	}
	next, err = p.cfg.CustomCallback(ctx, p, e)
	if err != nil {
		return err
	}
	if next >= 0 && next <= p.top {
		p.index = next
	}
	return nil
}

// render applies the current page. A full edit goes out when author-only is
// set, the cursor moved, or the control tree changed; otherwise a
// components-only edit acknowledges the interaction without redrawing.
func (p *Paginator) render(ctx context.Context, e Event) error {
	tree := p.controls()

	var update discord.MessageUpdate
	if p.cfg.AuthorOnly || p.index != p.prevIndex || treesDiffer(p.rendered, tree) {
		update = p.pages[p.index].messageUpdate(tree)
	} else {
		update = discord.MessageUpdate{Components: &tree}
	}

	if ack, ok := e.(Acknowledger); ok {
		if err := ack.Acknowledge(update); err != nil {
			return errors.Wrap(err, "paginator: update interaction")
		}
		p.rendered = tree
		return nil
	}

	message, err := p.transport.Edit(ctx, p.message, update)
	if err != nil {
		return errors.Wrap(err, "paginator: edit message")
	}
	p.message = message
	p.rendered = tree
	return nil
}

func (p *Paginator) runHook(ctx context.Context, hook Hook, e Event) HookResult {
	if hook == nil {
		return HookContinue
	}
	return hook(ctx, p, e)
}

// finish applies the configured post-timeout behavior to the message.
func (p *Paginator) finish(ctx context.Context) {
	var update discord.MessageUpdate
	switch p.cfg.OnTimeout {
	case TimeoutDisable:
		tree := disabledControls(p.controls())
		update = discord.MessageUpdate{Components: &tree}
	case TimeoutRemove:
		update = discord.MessageUpdate{Components: &[]discord.ContainerComponent{}}
	default:
		return
	}
	if _, err := p.transport.Edit(ctx, p.message, update); err != nil {
		p.log.Error("paginator: failed to finalize message: ", err)
	}
}

func (p *Paginator) result() Result {
	return Result{
		Paginator: p,
		Author:    p.author,
		LastEvent: p.lastEvent,
		Message:   p.message,
	}
}

package paginator

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/json"
)

// RowPosition controls where a page's custom control row is merged into the
// rendered rows.
type RowPosition int

const (
	PositionTop RowPosition = iota
	PositionMiddle
	PositionBottom
)

const noTitle = "No title"

// titleLimit is the display cap for derived titles. Anything longer is cut to
// truncatedLen runes plus an ellipsis.
const (
	titleLimit   = 96
	truncatedLen = 93
)

// Page is a single unit of paginated content.
type Page struct {
	Content string
	Embeds  []discord.Embed
	// Title labels the page in the select menu. When left empty it is derived
	// once, at paginator construction, from the content or the embeds.
	Title string
	// Controls is an optional row of page-owned components. Events aimed at
	// them are routed to Callback.
	Controls discord.ActionRowComponent
	Position RowPosition
	Callback Callback
}

func (p *Page) deriveTitle() {
	if p.Title != "" {
		return
	}
	if p.Content != "" {
		p.Title = truncateTitle(p.Content)
		return
	}
	for _, embed := range p.Embeds {
		if embed.Title != "" {
			p.Title = truncateTitle(embed.Title)
			return
		}
	}
	p.Title = noTitle
}

func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleLimit {
		return s
	}
	return string(runes[:truncatedLen]) + "..."
}

func (p Page) messageCreate(components []discord.ContainerComponent) discord.MessageCreate {
	return discord.MessageCreate{
		Content:    p.Content,
		Embeds:     p.Embeds,
		Components: components,
	}
}

func (p Page) messageUpdate(components []discord.ContainerComponent) discord.MessageUpdate {
	embeds := p.Embeds
	if embeds == nil {
		embeds = []discord.Embed{}
	}
	return discord.MessageUpdate{
		Content:    json.Ptr(p.Content),
		Embeds:     &embeds,
		Components: &components,
	}
}

// runCallback invokes the page callback for events aimed at the page's own
// controls. Events carrying a custom ID from another page's controls sharing
// the same row slot are ignored. It returns a negative index when the event
// was not consumed.
func (p Page) runCallback(ctx context.Context, paginator *Paginator, e Event) (int, error) {
	if p.Callback == nil || len(p.Controls) == 0 {
		return -1, nil
	}
	id := e.CustomID()
	for _, component := range p.Controls {
		if customID(component) == id {
			return p.Callback(ctx, paginator, e)
		}
	}
	return -1, nil
}

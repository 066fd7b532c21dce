package paginator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
)

// Role identifies one of the fixed navigation controls.
type Role string

const (
	RoleSelect Role = "select"
	RoleFirst  Role = "first"
	RolePrev   Role = "prev"
	RoleIndex  Role = "index"
	RoleNext   Role = "next"
	RoleLast   Role = "last"
)

var roles = []Role{RoleSelect, RoleFirst, RolePrev, RoleIndex, RoleNext, RoleLast}

// ControlID ties a control role to the session it belongs to. Its wire form is
// the concatenation "{role}{id}" expected by the host platform, but dispatch
// always compares the parsed form.
type ControlID struct {
	Role      Role
	SessionID int
}

func (c ControlID) String() string {
	return string(c.Role) + strconv.Itoa(c.SessionID)
}

// ParseControlID parses the wire form of a ControlID. It reports ok=false for
// custom IDs not minted by a session, e.g. those of page-owned controls.
func ParseControlID(customID string) (ControlID, bool) {
	for _, role := range roles {
		rest, found := strings.CutPrefix(customID, string(role))
		if !found || rest == "" {
			continue
		}
		id, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		return ControlID{Role: role, SessionID: id}, true
	}
	return ControlID{}, false
}

// Host platform row limits.
const (
	maxSelectOptions = 25
	maxRowButtons    = 5
)

// controls builds the full control tree for the current cursor position. The
// output depends only on index, top and the config.
func (p *Paginator) controls() []discord.ContainerComponent {
	rows := []discord.ContainerComponent{p.selectRow(), p.buttonsRow()}
	if row := p.pageRow(); row != nil {
		switch p.pages[p.index].Position {
		case PositionMiddle:
			rows = slices.Insert(rows, 1, row)
		case PositionBottom:
			rows = append(rows, row)
		default:
			rows = slices.Insert(rows, 0, row)
		}
	}
	tree := make([]discord.ContainerComponent, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			tree = append(tree, row)
		}
	}
	return tree
}

func (p *Paginator) selectRow() discord.ContainerComponent {
	if !p.cfg.UseSelect || len(p.pages) > maxSelectOptions {
		return nil
	}
	options := make([]discord.StringSelectMenuOption, 0, len(p.pages))
	for i, page := range p.pages {
		n := i + 1
		options = append(options, discord.NewStringSelectMenuOption(fmt.Sprintf("%d: %s", n, page.Title), strconv.Itoa(n)))
	}
	menu := discord.NewStringSelectMenu(ControlID{RoleSelect, p.id}.String(), p.placeholderLabel(), options...)
	return discord.NewActionRow(menu)
}

func (p *Paginator) buttonsRow() discord.ContainerComponent {
	if !p.cfg.UseButtons {
		return nil
	}
	leftEdge := p.index == 0
	rightEdge := p.index == p.top

	var row discord.ActionRowComponent
	add := func(role Role, label string, disabled bool) {
		opts := p.buttonOptions(role)
		button := discord.ButtonComponent{
			Style:    opts.Style,
			Label:    opts.Label,
			CustomID: ControlID{role, p.id}.String(),
			Disabled: disabled,
		}
		if label != "" {
			button.Label = label
		}
		if opts.Emoji.Name != "" || opts.Emoji.ID != 0 {
			emoji := opts.Emoji
			button.Emoji = &emoji
		}
		row = append(row, button)
	}

	if p.cfg.ExtendedButtons {
		add(RoleFirst, "", leftEdge)
	}
	add(RolePrev, "", leftEdge)
	if p.cfg.UseIndexLabel {
		add(RoleIndex, p.placeholderLabel(), true)
	}
	add(RoleNext, "", rightEdge)
	if p.cfg.ExtendedButtons {
		add(RoleLast, "", rightEdge)
	}

	if len(p.cfg.CustomButtons) > 0 && len(row)+len(p.cfg.CustomButtons) <= maxRowButtons {
		for _, button := range p.cfg.CustomButtons {
			row = append(row, button)
		}
	}
	return row
}

func (p *Paginator) pageRow() discord.ContainerComponent {
	if page := p.pages[p.index]; len(page.Controls) > 0 {
		return page.Controls
	}
	return nil
}

func (p *Paginator) buttonOptions(role Role) ComponentOptions {
	opts := p.cfg.ButtonsConfig.options(role)
	if opts == nil {
		opts = defaultButtonsConfig().options(role)
	}
	return *opts
}

func (p *Paginator) placeholderLabel() string {
	return fmt.Sprintf("%s %d/%d", p.cfg.Placeholder, p.index+1, p.top+1)
}

// customID extracts the custom ID of an interactive component, if it carries one.
func customID(component discord.InteractiveComponent) string {
	switch c := component.(type) {
	case discord.ButtonComponent:
		return c.CustomID
	case discord.StringSelectMenuComponent:
		return c.CustomID
	case discord.UserSelectMenuComponent:
		return c.CustomID
	case discord.RoleSelectMenuComponent:
		return c.CustomID
	case discord.MentionableSelectMenuComponent:
		return c.CustomID
	case discord.ChannelSelectMenuComponent:
		return c.CustomID
	}
	return ""
}

// disabledControls returns a copy of the tree with every leaf control disabled.
func disabledControls(tree []discord.ContainerComponent) []discord.ContainerComponent {
	out := make([]discord.ContainerComponent, 0, len(tree))
	for _, container := range tree {
		row, ok := container.(discord.ActionRowComponent)
		if !ok {
			out = append(out, container)
			continue
		}
		disabled := make(discord.ActionRowComponent, 0, len(row))
		for _, component := range row {
			disabled = append(disabled, disableComponent(component))
		}
		out = append(out, disabled)
	}
	return out
}

func disableComponent(component discord.InteractiveComponent) discord.InteractiveComponent {
	switch c := component.(type) {
	case discord.ButtonComponent:
		return c.WithDisabled(true)
	case discord.StringSelectMenuComponent:
		return c.WithDisabled(true)
	case discord.UserSelectMenuComponent:
		return c.WithDisabled(true)
	case discord.RoleSelectMenuComponent:
		return c.WithDisabled(true)
	case discord.MentionableSelectMenuComponent:
		return c.WithDisabled(true)
	case discord.ChannelSelectMenuComponent:
		return c.WithDisabled(true)
	}
	return component
}

package paginator

import (
	"fmt"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlID_RoundTrip(t *testing.T) {
	for _, role := range roles {
		cid := ControlID{Role: role, SessionID: 123456}
		parsed, ok := ParseControlID(cid.String())
		require.True(t, ok, "role %s", role)
		assert.Equal(t, cid, parsed)
	}
}

func TestParseControlID_RejectsForeignIDs(t *testing.T) {
	for _, customID := range []string{"", "halt", "next", "nextx", "42", "stop-btn"} {
		_, ok := ParseControlID(customID)
		assert.False(t, ok, "custom id %q", customID)
	}
}

func selectMenuOf(t *testing.T, row discord.ContainerComponent) discord.StringSelectMenuComponent {
	t.Helper()
	components := row.Components()
	require.Len(t, components, 1)
	menu, ok := components[0].(discord.StringSelectMenuComponent)
	require.True(t, ok)
	return menu
}

func TestSelectRow_OptionsAndPlaceholder(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages())

	row := p.selectRow()
	require.NotNil(t, row)
	menu := selectMenuOf(t, row)

	assert.Equal(t, ControlID{RoleSelect, p.id}.String(), menu.CustomID)
	assert.Equal(t, "Page 1/3", menu.Placeholder)
	require.Len(t, menu.Options, 3)
	assert.Equal(t, "1: one", menu.Options[0].Label)
	assert.Equal(t, "1", menu.Options[0].Value)
	assert.Equal(t, "3: three", menu.Options[2].Label)

	p.index = 2
	assert.Equal(t, "Page 3/3", selectMenuOf(t, p.selectRow()).Placeholder)
}

func TestSelectRow_CustomPlaceholder(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages(), WithPlaceholder("Seite"))
	assert.Equal(t, "Seite 1/3", selectMenuOf(t, p.selectRow()).Placeholder)
}

func TestSelectRow_OmittedOverOptionCeiling(t *testing.T) {
	pages := make([]Page, 26)
	for i := range pages {
		pages[i] = Page{Content: fmt.Sprintf("page %d", i+1)}
	}
	p, _, _, _ := newTestPaginator(t, pages)
	assert.Nil(t, p.selectRow())
	// the buttons row is unaffected
	assert.NotNil(t, p.buttonsRow())
}

func TestSelectRow_OmittedWhenDisabled(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages(), WithSelect(false))
	assert.Nil(t, p.selectRow())
}

func TestButtonsRow_InitialStates(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages())

	row := p.buttonsRow()
	require.NotNil(t, row)
	components := row.Components()
	require.Len(t, components, 4)

	ids := make([]string, 0, len(components))
	for _, component := range components {
		ids = append(ids, customID(component))
	}
	assert.Equal(t, []string{
		ControlID{RoleFirst, p.id}.String(),
		ControlID{RolePrev, p.id}.String(),
		ControlID{RoleNext, p.id}.String(),
		ControlID{RoleLast, p.id}.String(),
	}, ids)

	tree := []discord.ContainerComponent{row}
	assert.True(t, buttonByID(t, tree, ControlID{RoleFirst, p.id}.String()).Disabled)
	assert.True(t, buttonByID(t, tree, ControlID{RolePrev, p.id}.String()).Disabled)
	assert.False(t, buttonByID(t, tree, ControlID{RoleNext, p.id}.String()).Disabled)
	assert.False(t, buttonByID(t, tree, ControlID{RoleLast, p.id}.String()).Disabled)
}

func TestButtonsRow_MiddleEnablesEverything(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages())
	p.index = 1

	tree := []discord.ContainerComponent{p.buttonsRow()}
	for _, role := range []Role{RoleFirst, RolePrev, RoleNext, RoleLast} {
		assert.False(t, buttonByID(t, tree, ControlID{role, p.id}.String()).Disabled, "role %s", role)
	}
}

func TestButtonsRow_ExtendedOff(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages(), WithExtendedButtons(false))

	components := p.buttonsRow().Components()
	require.Len(t, components, 2)
	assert.Equal(t, ControlID{RolePrev, p.id}.String(), customID(components[0]))
	assert.Equal(t, ControlID{RoleNext, p.id}.String(), customID(components[1]))
}

func TestButtonsRow_IndexLabel(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages(), WithIndexLabel(true))

	components := p.buttonsRow().Components()
	require.Len(t, components, 5)
	index, ok := components[2].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, ControlID{RoleIndex, p.id}.String(), index.CustomID)
	assert.Equal(t, "Page 1/3", index.Label)
	assert.True(t, index.Disabled)

	// stays disabled off the edges too
	p.index = 1
	index = p.buttonsRow().Components()[2].(discord.ButtonComponent)
	assert.Equal(t, "Page 2/3", index.Label)
	assert.True(t, index.Disabled)
}

func TestButtonsRow_OverridesKeepIdentity(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages(), WithButtonsConfig(ButtonsConfig{
		Prev: &ComponentOptions{Label: "Back", Style: discord.ButtonStyleSecondary},
	}))

	tree := []discord.ContainerComponent{p.buttonsRow()}
	prev := buttonByID(t, tree, ControlID{RolePrev, p.id}.String())
	assert.Equal(t, "Back", prev.Label)
	assert.Equal(t, discord.ButtonStyleSecondary, prev.Style)
	// identity and disabled state are still the renderer's
	assert.True(t, prev.Disabled)

	// roles left nil fall back to the defaults
	first := buttonByID(t, tree, ControlID{RoleFirst, p.id}.String())
	require.NotNil(t, first.Emoji)
	assert.Equal(t, "⏮️", first.Emoji.Name)
}

func TestButtonsRow_CustomButtonsDroppedOnOverflow(t *testing.T) {
	extra := discord.NewSecondaryButton("Extra", "extra-btn")
	p, _, _, _ := newTestPaginator(t, threePages(),
		WithIndexLabel(true),
		WithCustomButtons(extra),
	)
	// 5 defaults + 1 custom exceeds the row, the custom is dropped
	assert.Len(t, p.buttonsRow().Components(), 5)

	p, _, _, _ = newTestPaginator(t, threePages(),
		WithExtendedButtons(false),
		WithCustomButtons(
			discord.NewSecondaryButton("A", "a-btn"),
			discord.NewSecondaryButton("B", "b-btn"),
			discord.NewSecondaryButton("C", "c-btn"),
		),
	)
	// 2 defaults + 3 customs fit exactly
	components := p.buttonsRow().Components()
	require.Len(t, components, 5)
	assert.Equal(t, "a-btn", customID(components[2]))
	assert.Equal(t, "c-btn", customID(components[4]))
}

func pageRowID(row discord.ContainerComponent) string {
	return customID(row.Components()[0])
}

func TestControls_PageRowPositions(t *testing.T) {
	pageControls := discord.NewActionRow(discord.NewSecondaryButton("Do", "do-thing"))

	for position, wantIndex := range map[RowPosition]int{
		PositionTop:    0,
		PositionMiddle: 1,
		PositionBottom: 2,
	} {
		pages := threePages()
		pages[0].Controls = pageControls
		pages[0].Position = position
		p, _, _, _ := newTestPaginator(t, pages)

		tree := p.controls()
		require.Len(t, tree, 3, "position %d", position)
		assert.Equal(t, "do-thing", pageRowID(tree[wantIndex]), "position %d", position)
	}
}

func TestControls_MiddleWithoutSelect(t *testing.T) {
	pages := threePages()
	pages[0].Controls = discord.NewActionRow(discord.NewSecondaryButton("Do", "do-thing"))
	pages[0].Position = PositionMiddle
	p, _, _, _ := newTestPaginator(t, pages, WithSelect(false))

	tree := p.controls()
	require.Len(t, tree, 2)
	// the middle slot collapses onto the front once the select row is absent
	assert.Equal(t, "do-thing", pageRowID(tree[0]))
}

func TestControls_OnlyCurrentPageRow(t *testing.T) {
	pages := threePages()
	pages[1].Controls = discord.NewActionRow(discord.NewSecondaryButton("Do", "do-thing"))
	p, _, _, _ := newTestPaginator(t, pages)

	assert.Len(t, p.controls(), 2)
	p.index = 1
	assert.Len(t, p.controls(), 3)
}

func TestDisabledControls_DisablesEveryLeaf(t *testing.T) {
	pages := threePages()
	pages[0].Controls = discord.NewActionRow(discord.NewSecondaryButton("Do", "do-thing"))
	p, _, _, _ := newTestPaginator(t, pages)

	for _, leaf := range flatten(disabledControls(p.controls())) {
		switch c := leaf.(type) {
		case discord.ButtonComponent:
			assert.True(t, c.Disabled, "button %s", c.CustomID)
		case discord.StringSelectMenuComponent:
			assert.True(t, c.Disabled, "select %s", c.CustomID)
		default:
			t.Fatalf("unexpected component type %T", leaf)
		}
	}
}

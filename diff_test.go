package paginator

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreesDiffer_SameStateIsEqual(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages())
	assert.False(t, treesDiffer(p.controls(), p.controls()))
}

func TestTreesDiffer_CursorMoveFlipsDisabledStates(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages())
	before := p.controls()
	p.index = 1
	after := p.controls()

	require.True(t, treesDiffer(before, after))
	// and moving back restores equality with the original
	p.index = 0
	assert.False(t, treesDiffer(before, p.controls()))
}

func TestTreesDiffer_RowCountMismatch(t *testing.T) {
	p, _, _, _ := newTestPaginator(t, threePages())
	tree := p.controls()
	require.Len(t, tree, 2)
	assert.True(t, treesDiffer(tree, tree[:1]))
	assert.True(t, treesDiffer(nil, tree))
}

func TestTreesDiffer_LeafTypeMismatch(t *testing.T) {
	button := discord.NewActionRow(discord.NewSecondaryButton("A", "a-btn"))
	menu := discord.NewActionRow(discord.NewStringSelectMenu("a-btn", "A",
		discord.NewStringSelectMenuOption("1", "1"),
	))
	assert.True(t, treesDiffer(
		[]discord.ContainerComponent{button},
		[]discord.ContainerComponent{menu},
	))
}

func TestTreesDiffer_LabelChange(t *testing.T) {
	old := []discord.ContainerComponent{discord.NewActionRow(discord.NewSecondaryButton("A", "a-btn"))}
	same := []discord.ContainerComponent{discord.NewActionRow(discord.NewSecondaryButton("A", "a-btn"))}
	relabeled := []discord.ContainerComponent{discord.NewActionRow(discord.NewSecondaryButton("B", "a-btn"))}

	assert.False(t, treesDiffer(old, same))
	assert.True(t, treesDiffer(old, relabeled))
}

package paginator

import (
	"reflect"

	"github.com/disgoorg/disgo/discord"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// treesDiffer reports whether two control trees differ in any leaf control.
// Leaves are compared positionally across the flattened trees; a length or
// type mismatch counts as a difference. The result is an optimization hint
// for the render step, not a correctness requirement.
func treesDiffer(old, new []discord.ContainerComponent) bool {
	oldLeaves := flatten(old)
	newLeaves := flatten(new)
	if len(oldLeaves) != len(newLeaves) {
		return true
	}
	for i, newLeaf := range newLeaves {
		oldLeaf := oldLeaves[i]
		if reflect.TypeOf(oldLeaf) != reflect.TypeOf(newLeaf) {
			return true
		}
		if !cmp.Equal(oldLeaf, newLeaf, cmpopts.EquateEmpty()) {
			return true
		}
	}
	return false
}

func flatten(tree []discord.ContainerComponent) []discord.InteractiveComponent {
	var leaves []discord.InteractiveComponent
	for _, container := range tree {
		leaves = append(leaves, container.Components()...)
	}
	return leaves
}

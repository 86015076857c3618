package script

import (
	"fmt"

	"github.com/emirpasic/gods/v2/containers"
	asciitree "github.com/thediveo/go-asciitree"
)

type ringNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []ringNode `asciitree:"children"`
}

// Render draws the ring formed by the elements of list, one branch per node.
func Render(list containers.Container[string]) string {
	size := list.Size()
	root := ringNode{
		Label: fmt.Sprintf("ring (size %d)", size),
	}
	for i, v := range list.Values() {
		props := []string{fmt.Sprintf("next: %d", (i+1)%size)}
		if i == size-1 {
			props = append(props, "closes ring")
		}
		root.Children = append(root.Children, ringNode{
			Label: fmt.Sprintf("%d: %s", i, v),
			Props: props,
		})
	}
	return asciitree.RenderFancy(root)
}

package prefdoc

import (
	"fmt"

	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
)

// linkTree assembles the flat, level-tagged item sequence into a proper
// nesting tree. It is bracket matching by depth: a stack of open sections is
// popped until the top is shallower than the incoming item, which is then
// attached as its child. Leaf items are never pushed, so stray deeper levels
// cannot nest under them.
//
// The first item becomes the root. Every non-root item ends up with a parent
// whose level is strictly less than its own.
func linkTree(items []*Item) (*Item, error) {
	var root *Item
	var stack []*Item

	for _, it := range items {
		if root == nil {
			root = it
			stack = append(stack, it)
			continue
		}

		for len(stack) > 0 && it.Level <= stack[len(stack)-1].Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil, xerrors.ParseAt(it.line,
				fmt.Sprintf("section %q does not nest under the document root", it.Key))
		}

		top := stack[len(stack)-1]
		if top.Level <= it.Level {
			top.Items = append(top.Items, it)
			if it.Level > top.Level && it.Level < LevelItem {
				stack = append(stack, it)
			}
		}
	}

	return root, nil
}

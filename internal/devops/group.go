package devops

import (
	"fmt"
	"io"
)

// Groups function as a stack, so we keep track of the groups in a stack.
var groups = make([]*Group, 0)

// Opens a new group and adds it to the stack.
func OpenGroup(w io.Writer, name string) *Group {
	newGroup := &Group{w: w}
	groups = append(groups, newGroup)
	fmt.Fprintf(w, "##[group]%s\n", name)
	return newGroup
}

type Group struct {
	w io.Writer
}

// Closes the group and removes all groups above it from the stack.
// This is done by popping the stack until we reach the group we want to close.
func (g *Group) Close() {
	var index int = len(groups) - 1
	for index >= 0 {
		// Pop the last group from the stack
		last := groups[index]
		groups = groups[:index]
		fmt.Fprintln(last.w, "##[endgroup]")
		if last == g {
			break
		}
		index--
	}
}

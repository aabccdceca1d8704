package tui

import "github.com/sabhahq/sabha/internal/role"

// Navigator is the console's navigation history. Guard redirects use
// Replace so a blocked destination never becomes reachable by going
// back.
type Navigator struct {
	stack []role.Destination
}

// NewNavigator creates a navigator positioned at the start destination
func NewNavigator(start role.Destination) *Navigator {
	return &Navigator{stack: []role.Destination{start}}
}

// Current returns the destination on top of the stack
func (n *Navigator) Current() role.Destination {
	return n.stack[len(n.stack)-1]
}

// Push navigates forward to a destination
func (n *Navigator) Push(dest role.Destination) {
	if n.Current() == dest {
		return
	}
	n.stack = append(n.stack, dest)
}

// Replace swaps the current destination without adding history
func (n *Navigator) Replace(dest role.Destination) {
	n.stack[len(n.stack)-1] = dest
}

// Back pops to the previous destination; returns false at the root
func (n *Navigator) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Depth returns the history depth
func (n *Navigator) Depth() int {
	return len(n.stack)
}

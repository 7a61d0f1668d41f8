// Package mount attaches renderable components to ordered containers. A
// Container plays the role of a parent element: its children are rendered
// top to bottom and can be swapped in place without touching siblings.
package mount

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrMounted is returned when rendering a component that already has a parent.
	ErrMounted = errors.New("component is already mounted")
	// ErrNotMounted is returned when replacing a component that has no parent.
	ErrNotMounted = errors.New("component is not mounted")
	// ErrDisposed is returned when using a component after Remove.
	ErrDisposed = errors.New("component has been removed")
)

// Component is anything that can be mounted. Implementations embed Node.
type Component interface {
	View() string
	node() *Node
}

// Node carries the mount state of a component. Embed it by value in a
// struct that is used through a pointer.
type Node struct {
	parent   *Container
	disposed bool
}

func (n *Node) node() *Node { return n }

// Mounted reports whether the component currently has a parent container.
func (n *Node) Mounted() bool { return n.parent != nil }

// Disposed reports whether the component was removed.
func (n *Node) Disposed() bool { return n.disposed }

// Container is an ordered list of mounted components.
type Container struct {
	children []Component
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Len returns the number of mounted children.
func (c *Container) Len() int { return len(c.children) }

// Children returns the mounted children in render order.
func (c *Container) Children() []Component {
	return slices.Clone(c.children)
}

// At returns the child at index i, or nil when out of range.
func (c *Container) At(i int) Component {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Index returns the position of x among the children, or -1.
func (c *Container) Index(x Component) int {
	if x == nil {
		return -1
	}
	return slices.IndexFunc(c.children, func(child Component) bool {
		return child.node() == x.node()
	})
}

// Contains reports whether x is a direct child of c.
func (c *Container) Contains(x Component) bool {
	return c.Index(x) >= 0
}

// Clear disposes every child and empties the container.
func (c *Container) Clear() {
	for _, child := range c.children {
		n := child.node()
		n.parent = nil
		n.disposed = true
	}
	c.children = nil
}

// View renders the children top to bottom.
func (c *Container) View() string {
	views := make([]string, 0, len(c.children))
	for _, child := range c.children {
		views = append(views, child.View())
	}
	return strings.Join(views, "\n")
}

// Render mounts x as the last child of container.
func Render(x Component, container *Container) error {
	n := x.node()
	switch {
	case n.disposed:
		return ErrDisposed
	case n.parent != nil:
		return ErrMounted
	}

	n.parent = container
	container.children = append(container.children, x)
	return nil
}

// Replace puts next where prev is mounted. prev is detached but stays
// usable, so it can be mounted again later.
func Replace(next, prev Component) error {
	pn, nn := prev.node(), next.node()
	switch {
	case pn.parent == nil:
		return ErrNotMounted
	case nn.disposed:
		return ErrDisposed
	case nn.parent != nil:
		return ErrMounted
	}

	container := pn.parent
	i := container.Index(prev)
	if i < 0 {
		return ErrNotMounted
	}

	container.children[i] = next
	nn.parent = container
	pn.parent = nil
	return nil
}

// Remove detaches x if it is mounted and marks it disposed. Removing a
// component twice returns ErrDisposed.
func Remove(x Component) error {
	n := x.node()
	if n.disposed {
		return ErrDisposed
	}

	if n.parent != nil {
		container := n.parent
		if i := container.Index(x); i >= 0 {
			container.children = slices.Delete(container.children, i, i+1)
		}
		n.parent = nil
	}

	n.disposed = true
	return nil
}

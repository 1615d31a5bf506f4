package lensop

import (
	"slices"

	"github.com/signadot/jsonlens/patch"
)

// Context is a tree of default values indexed by property name. The root
// node describes the document, children describe its members.
type Context struct {
	defaultValue any
	hasDefault   bool
	children     map[string]*Context
}

func NewContext() *Context {
	return &Context{}
}

// Child returns the named child, creating it if absent.
func (c *Context) Child(name string) *Context {
	if sub, ok := c.children[name]; ok {
		return sub
	}
	if c.children == nil {
		c.children = map[string]*Context{}
	}
	sub := NewContext()
	c.children[name] = sub
	return sub
}

// Lookup returns the named child or nil.
func (c *Context) Lookup(name string) *Context {
	return c.children[name]
}

// Remove detaches and returns the named child, or nil if absent.
func (c *Context) Remove(name string) *Context {
	sub, ok := c.children[name]
	if !ok {
		return nil
	}
	delete(c.children, name)
	return sub
}

// Set attaches sub under name, replacing any existing child.
func (c *Context) Set(name string, sub *Context) {
	if c.children == nil {
		c.children = map[string]*Context{}
	}
	c.children[name] = sub
}

// Names returns the names of the children in sorted order.
func (c *Context) Names() []string {
	res := make([]string, 0, len(c.children))
	for name := range c.children {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Value returns the default value recorded at this node.
func (c *Context) Value() (any, bool) {
	return c.defaultValue, c.hasDefault
}

// Default returns the default value of the named child.
func (c *Context) Default(name string) (any, bool) {
	sub := c.children[name]
	if sub == nil {
		return nil, false
	}
	return sub.Value()
}

// SetDefault records v as the default of the named child. A nil v clears
// the default, since absent and null are not distinguished.
func (c *Context) SetDefault(name string, v any) {
	sub := c.Child(name)
	sub.defaultValue = v
	sub.hasDefault = v != nil
}

// TakeDefault clears and returns the default of the named child.
func (c *Context) TakeDefault(name string) (any, bool) {
	sub := c.children[name]
	if sub == nil || !sub.hasDefault {
		return nil, false
	}
	v := sub.defaultValue
	sub.defaultValue, sub.hasDefault = nil, false
	return v, true
}

// Resolve walks a JSON Pointer from c, creating nodes as needed. Array
// index segments do not descend.
func (c *Context) Resolve(ptr string) *Context {
	cur := c
	for _, seg := range patch.Split(ptr) {
		if patch.IsIndex(seg) {
			continue
		}
		cur = cur.Child(seg)
	}
	return cur
}

// Tree renders the context as a generic value, for debugging and tests.
// Nodes render as objects with an optional "default" member and a
// "children" member.
func (c *Context) Tree() map[string]any {
	res := map[string]any{}
	if c.hasDefault {
		res["default"] = c.defaultValue
	}
	if len(c.children) != 0 {
		kids := make(map[string]any, len(c.children))
		for name, sub := range c.children {
			kids[name] = sub.Tree()
		}
		res["children"] = kids
	}
	return res
}

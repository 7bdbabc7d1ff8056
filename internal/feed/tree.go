// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// name is a lookup key for an element. An empty space matches any namespace.
type name struct {
	space string
	local string
}

func (n name) matches(x xml.Name) bool {
	return x.Local == n.local && (n.space == "" || x.Space == n.space)
}

// node is one element of the parsed markup. text holds the concatenated
// character data of the element and all of its descendants.
type node struct {
	name     xml.Name
	attrs    []xml.Attr
	text     strings.Builder
	children []*node
}

// attr returns the value of the unqualified attribute local, or "".
func (n *node) attr(local string) string {
	for _, a := range n.attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// find returns the first descendant matching key in document order.
func (n *node) find(key name) *node {
	for _, c := range n.children {
		if key.matches(c.name) {
			return c
		}
		if d := c.find(key); d != nil {
			return d
		}
	}
	return nil
}

// findAll returns every descendant matching key in document order.
func (n *node) findAll(key name) []*node {
	var out []*node
	for _, c := range n.children {
		if key.matches(c.name) {
			out = append(out, c)
		}
		out = append(out, c.findAll(key)...)
	}
	return out
}

// first tries each candidate in turn and returns the first element found.
func (n *node) first(candidates []name) *node {
	for _, key := range candidates {
		if m := n.find(key); m != nil {
			return m
		}
	}
	return nil
}

// readTree decodes r into a node tree. Any syntax error, a missing root or
// a second root element is reported as ErrMalformedFeed.
func readTree(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)

	var root *node
	var stack []*node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
		}

		switch t := xml.CopyToken(tok).(type) {
		case xml.StartElement:
			n := &node{name: t.Name, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: more than one root element", ErrMalformedFeed)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			for _, open := range stack {
				open.text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedFeed)
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed element <%s>", ErrMalformedFeed, stack[len(stack)-1].name.Local)
	}
	return root, nil
}

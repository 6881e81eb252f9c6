package aci

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Object is a single managed object from the controller tree. The wire form
// wraps every object under its class tag:
//
//	{"fvTenant": {"attributes": {...}, "children": [...]}}
//
// Object unwraps that self-describing encoding into a tagged struct, so
// walkers never have to inspect map keys.
type Object struct {
	Class    string
	Attrs    map[string]string
	Children []*Object
}

type objectBody struct {
	Attributes map[string]string `json:"attributes"`
	Children   []json.RawMessage `json:"children"`
}

func (o *Object) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire) != 1 {
		return errors.Errorf("object wrapper must hold exactly one class key, got %d", len(wire))
	}
	for class, raw := range wire {
		var body objectBody
		if err := json.Unmarshal(raw, &body); err != nil {
			return errors.Wrapf(err, "object %q", class)
		}
		o.Class = class
		o.Attrs = body.Attributes
		if o.Attrs == nil {
			o.Attrs = map[string]string{}
		}
		for _, rawChild := range body.Children {
			child := new(Object)
			if err := json.Unmarshal(rawChild, child); err != nil {
				// Best effort: malformed children are dropped, not fatal.
				continue
			}
			o.Children = append(o.Children, child)
		}
	}
	return nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	children := make([]*Object, 0, len(o.Children))
	children = append(children, o.Children...)
	body := struct {
		Attributes map[string]string `json:"attributes"`
		Children   []*Object         `json:"children,omitempty"`
	}{Attributes: o.Attrs, Children: children}
	if len(children) == 0 {
		body.Children = nil
	}
	return json.Marshal(map[string]interface{}{o.Class: body})
}

// Attr returns the named attribute, or "" if absent.
func (o *Object) Attr(name string) string {
	if o == nil || o.Attrs == nil {
		return ""
	}
	return o.Attrs[name]
}

// Name returns the object's name attribute.
func (o *Object) Name() string { return o.Attr("name") }

// DN returns the object's distinguished name attribute.
func (o *Object) DN() string { return o.Attr("dn") }

// ChildrenOf returns the immediate children carrying the given class tag.
func (o *Object) ChildrenOf(class string) []*Object {
	if o == nil {
		return nil
	}
	var out []*Object
	for _, c := range o.Children {
		if c.Class == class {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first immediate child of the given class, or nil.
func (o *Object) FirstChild(class string) *Object {
	if o == nil {
		return nil
	}
	for _, c := range o.Children {
		if c.Class == class {
			return c
		}
	}
	return nil
}

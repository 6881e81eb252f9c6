package aci

import (
	"encoding/json"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Top-level keys of the two accepted source encodings.
const (
	rootNested = "polUni"
	rootFlat   = "imdata"
)

// ErrUnknownFormat is returned when the source document carries neither the
// nested policy-universe form nor the flat class-indexed form.
var ErrUnknownFormat = errors.New("unrecognized configuration format: expected polUni or imdata at top level")

// Fabric is the canonical class-indexed view of one controller configuration.
// It always holds the flat form; nested sources are normalized on decode.
type Fabric struct {
	objects []*Object
	byClass map[string][]*Object
}

// Decode parses a raw configuration document. Both source encodings are
// accepted without the caller pre-selecting a parser.
func Decode(data []byte) (*Fabric, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	if raw, ok := top[rootFlat]; ok {
		return decodeFlat(raw)
	}
	if raw, ok := top[rootNested]; ok {
		return decodeNested(raw)
	}
	return nil, ErrUnknownFormat
}

func decodeFlat(raw json.RawMessage) (*Fabric, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "decoding flat item list")
	}
	f := newFabric(len(items))
	for _, item := range items {
		obj := new(Object)
		if err := json.Unmarshal(item, obj); err != nil {
			klog.V(4).Infof("skipping malformed item: %v", err)
			continue
		}
		// Items exported with a subtree carry nested children; index
		// those too so class lookups behave the same for both forms.
		var flat []*Object
		flatten(obj, "uni", &flat)
		for _, o := range flat {
			f.add(o)
		}
	}
	return f, nil
}

func decodeNested(raw json.RawMessage) (*Fabric, error) {
	var body objectBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrap(err, "decoding policy universe")
	}
	root := &Object{Class: rootNested, Attrs: body.Attributes}
	if root.Attrs == nil {
		root.Attrs = map[string]string{}
	}
	for _, rawChild := range body.Children {
		child := new(Object)
		if err := json.Unmarshal(rawChild, child); err != nil {
			continue
		}
		root.Children = append(root.Children, child)
	}
	flat := Flatten(root)
	f := newFabric(len(flat))
	for _, obj := range flat {
		f.add(obj)
	}
	klog.V(2).Infof("normalized %d objects from nested form", len(flat))
	return f, nil
}

func newFabric(capacity int) *Fabric {
	return &Fabric{
		objects: make([]*Object, 0, capacity),
		byClass: map[string][]*Object{},
	}
}

func (f *Fabric) add(obj *Object) {
	f.objects = append(f.objects, obj)
	f.byClass[obj.Class] = append(f.byClass[obj.Class], obj)
}

// Len reports the number of indexed objects.
func (f *Fabric) Len() int { return len(f.objects) }

// ObjectsOf returns every indexed object of the given class, at any depth
// of the source document. Children stay attached, so a returned object can
// still be walked as a subtree.
func (f *Fabric) ObjectsOf(class string) []*Object {
	return f.byClass[class]
}

// maxScanDepth bounds the recursive locator against degenerate input.
const maxScanDepth = 200

// FindClass collects every object of the given class anywhere in the
// subtree rooted at obj, the root included.
func FindClass(obj *Object, class string) []*Object {
	var found []*Object
	findClass(obj, class, 0, &found)
	return found
}

func findClass(obj *Object, class string, depth int, found *[]*Object) {
	if obj == nil || depth > maxScanDepth {
		return
	}
	if obj.Class == class {
		*found = append(*found, obj)
	}
	for _, c := range obj.Children {
		findClass(c, class, depth+1, found)
	}
}

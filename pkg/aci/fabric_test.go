package aci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatDoc = `{
  "imdata": [
    {"fvTenant": {"attributes": {"name": "T1", "dn": "uni/tn-T1"}, "children": [
      {"fvBD": {"attributes": {"name": "BD1", "dn": "uni/tn-T1/BD-BD1"}}}
    ]}},
    {"fvTenant": {"attributes": {"name": "T2", "dn": "uni/tn-T2"}}}
  ]
}`

const nestedDoc = `{
  "polUni": {
    "attributes": {"dn": "uni"},
    "children": [
      {"fvTenant": {"attributes": {"name": "T1"}, "children": [
        {"fvBD": {"attributes": {"name": "BD1"}}},
        {"fvAp": {"attributes": {"name": "AP1"}, "children": [
          {"fvAEPg": {"attributes": {"name": "EPG1"}}}
        ]}}
      ]}}
    ]
  }
}`

func TestDecodeFlat(t *testing.T) {
	f, err := Decode([]byte(flatDoc))
	require.NoError(t, err)
	tenants := f.ObjectsOf(ClassTenant)
	require.Len(t, tenants, 2)
	assert.Equal(t, "T1", tenants[0].Name())
	// Nested children of a flat item are indexed too.
	bds := f.ObjectsOf(ClassBD)
	require.Len(t, bds, 1)
	assert.Equal(t, "uni/tn-T1/BD-BD1", bds[0].DN())
	// And stay attached to their parent.
	assert.Len(t, tenants[0].ChildrenOf(ClassBD), 1)
}

func TestDecodeNested(t *testing.T) {
	f, err := Decode([]byte(nestedDoc))
	require.NoError(t, err)

	tenants := f.ObjectsOf(ClassTenant)
	require.Len(t, tenants, 1)
	assert.Equal(t, "uni/tn-T1", tenants[0].DN())

	epgs := f.ObjectsOf(ClassEPG)
	require.Len(t, epgs, 1)
	assert.Equal(t, "uni/tn-T1/ap-AP1/epg-EPG1", epgs[0].DN())
}

// Normalizing then indexing by class must return the same objects as
// recursing the nested tree directly.
func TestFlattenMatchesRecursion(t *testing.T) {
	f, err := Decode([]byte(nestedDoc))
	require.NoError(t, err)

	for _, class := range []string{ClassTenant, ClassBD, ClassAppProfile, ClassEPG} {
		indexed := f.ObjectsOf(class)
		var recursed []*Object
		for _, tenant := range f.ObjectsOf(ClassTenant) {
			recursed = append(recursed, FindClass(tenant, class)...)
		}
		assert.Equalf(t, len(recursed), len(indexed), "class %s", class)
		for i := range indexed {
			assert.Samef(t, recursed[i], indexed[i], "class %s object %d", class, i)
		}
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte(`{"somethingElse": []}`))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeSkipsMalformedItems(t *testing.T) {
	doc := `{"imdata": [
		{"fvTenant": {"attributes": {"name": "T1", "dn": "uni/tn-T1"}}},
		{"broken": {}, "second": {}}
	]}`
	f, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, f.ObjectsOf(ClassTenant), 1)
}

func TestFindClassDepthBound(t *testing.T) {
	root := &Object{Class: "root", Attrs: map[string]string{}}
	cur := root
	for i := 0; i < maxScanDepth+50; i++ {
		child := &Object{Class: "link", Attrs: map[string]string{}}
		cur.Children = []*Object{child}
		cur = child
	}
	found := FindClass(root, "link")
	assert.Equal(t, maxScanDepth, len(found))
}

func TestObjectUnmarshal(t *testing.T) {
	var o Object
	err := o.UnmarshalJSON([]byte(`{"fvBD": {"attributes": {"name": "BD1"}, "children": [
		{"fvRsCtx": {"attributes": {"tnFvCtxName": "VRF1"}}},
		"malformed child"
	]}}`))
	require.NoError(t, err)
	assert.Equal(t, ClassBD, o.Class)
	assert.Equal(t, "BD1", o.Name())
	// Malformed children are dropped, valid siblings kept.
	require.Len(t, o.Children, 1)
	assert.Equal(t, "VRF1", o.Children[0].Attr("tnFvCtxName"))

	err = o.UnmarshalJSON([]byte(`{"a": {}, "b": {}}`))
	assert.Error(t, err)
}

package aci

import (
	"fmt"
	"strings"
)

// dnPrefixes maps class tags to the segment marker used when an object's DN
// must be synthesized from its parent.
var dnPrefixes = map[string]string{
	ClassTenant:         "tn",
	ClassAppProfile:     "ap",
	ClassEPG:            "epg",
	ClassBD:             "BD",
	ClassVRF:            "ctx",
	ClassPhysDomain:     "phys",
	ClassL3Domain:       "l3dom",
	ClassVMMDomain:      "vmmp",
	ClassAEP:            "attentp",
	ClassAccPortGroup:   "accportgrp",
	ClassAccBundleGroup: "accbundle",
}

// SynthesizeDN builds a DN for an object that carries none, from its class,
// attributes, and the resolved parent DN. Objects with neither a name nor a
// known marker fall back to the parent DN; relations stay resolvable through
// structural nesting even when the identifier is not unique.
func SynthesizeDN(class string, attrs map[string]string, parentDN string) string {
	name := attrs["name"]

	switch {
	case class == ClassVLANPool:
		mode := attrs["allocMode"]
		if mode == "" {
			mode = "dynamic"
		}
		if name != "" {
			return fmt.Sprintf("uni/infra/vlanns-[%s]-%s", name, mode)
		}
	case class == ClassEncapBlock:
		from, to := attrs["from"], attrs["to"]
		if from != "" && to != "" {
			return fmt.Sprintf("%s/from-[%s]-to-[%s]", parentDN, from, to)
		}
	case class == ClassInfraRsVlanNs, class == ClassL3extRsVlanNs:
		return parentDN + "/rsvlanNs"
	case strings.HasPrefix(class, "fvRs"), strings.HasPrefix(class, "infraRs"):
		rel := strings.TrimPrefix(class, "fvRs")
		rel = strings.TrimPrefix(rel, "infraRs")
		if rel != "" {
			rel = strings.ToLower(rel[:1]) + rel[1:]
		}
		return parentDN + "/rs" + rel
	}

	if prefix, ok := dnPrefixes[class]; ok && name != "" {
		return parentDN + "/" + prefix + "-" + name
	}
	return parentDN
}

// Flatten walks a nested object tree depth first and returns every visited
// object in order, synthesizing missing DNs along the way. Children are left
// attached, so each returned object still carries its own subtree.
func Flatten(root *Object) []*Object {
	var out []*Object
	if root == nil {
		return out
	}
	parentDN := root.DN()
	if parentDN == "" {
		parentDN = "uni"
	}
	for _, child := range root.Children {
		flatten(child, parentDN, &out)
	}
	return out
}

func flatten(obj *Object, parentDN string, out *[]*Object) {
	if obj == nil {
		return
	}
	if obj.Attrs == nil {
		obj.Attrs = map[string]string{}
	}
	if obj.Attrs["dn"] == "" {
		obj.Attrs["dn"] = SynthesizeDN(obj.Class, obj.Attrs, parentDN)
	}
	*out = append(*out, obj)
	for _, child := range obj.Children {
		flatten(child, obj.Attrs["dn"], out)
	}
}

// Package dn extracts structured fields from the slash-delimited
// hierarchical identifiers the controller embeds in every object. All
// marker-table knowledge lives here; nothing else in the tree matches a DN
// directly. Every extractor is total: on no match it returns "" and never
// an error.
package dn

import (
	"regexp"
	"strings"
)

var (
	reTenant      = regexp.MustCompile(`(?:^|/)tn-([^/]+)`)
	reAppProfile  = regexp.MustCompile(`(?:^|/)ap-([^/]+)`)
	reBD          = regexp.MustCompile(`(?:^|/)BD-([^/]+)`)
	reL3Out       = regexp.MustCompile(`(?:^|/)out-([^/]+)`)
	reNodeProfile = regexp.MustCompile(`(?:^|/)lnodep-([^/]+)`)
	reIfProfile   = regexp.MustCompile(`(?:^|/)lifp-([^/]+)`)
	reEPG         = regexp.MustCompile(`(?:^|/)epg-([^/]+)`)
	reExtEPG      = regexp.MustCompile(`(?:^|/)instP-([^/]+)`)
	rePod         = regexp.MustCompile(`(?:^|/)pod-(\d+)`)
	rePaths       = regexp.MustCompile(`(?:^|/)paths-(\d+)`)
	reProtPaths   = regexp.MustCompile(`(?:^|/)protpaths-(\d+)-(\d+)`)
	rePathEp      = regexp.MustCompile(`(?:^|/)pathep-\[([^\]]+)\]`)
	reNode        = regexp.MustCompile(`(?:^|/)node-(\d+)`)
	rePhys        = regexp.MustCompile(`(?:^|/)phys-([^/]+)`)
	reL3Dom       = regexp.MustCompile(`(?:^|/)l3dom-([^/]+)`)
	reVMM         = regexp.MustCompile(`(?:^|/)vmmp-([^/]+)`)
	reAEP         = regexp.MustCompile(`(?:^|/)attentp-([^/]+)`)
	reAccPortGrp  = regexp.MustCompile(`(?:^|/)accportgrp-([^/]+)`)
	reAccBundle   = regexp.MustCompile(`(?:^|/)accbundle-([^/]+)`)
	rePoolBracket = regexp.MustCompile(`vlanns-\[([^\]]+)\]`)
	rePoolPlain   = regexp.MustCompile(`vlanns-(.+?)-(static|dynamic)(?:/|$)`)
	reVLAN        = regexp.MustCompile(`vlan-(\d+)`)
	reFexProfile  = regexp.MustCompile(`(?:^|/)fexprof-([^/]+)`)
)

func first(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// Tenant extracts the tenant name from a tn- segment.
func Tenant(s string) string { return first(reTenant, s) }

// AppProfile extracts the application profile name from an ap- segment.
func AppProfile(s string) string { return first(reAppProfile, s) }

// BridgeDomain extracts the bridge domain name from a BD- segment.
func BridgeDomain(s string) string { return first(reBD, s) }

// L3Out extracts the routed-out name from an out- segment.
func L3Out(s string) string { return first(reL3Out, s) }

// NodeProfile extracts the logical node profile name from a lnodep- segment.
func NodeProfile(s string) string { return first(reNodeProfile, s) }

// IfProfile extracts the logical interface profile name from a lifp- segment.
func IfProfile(s string) string { return first(reIfProfile, s) }

// EPG extracts the endpoint group name from an epg- segment.
func EPG(s string) string { return first(reEPG, s) }

// ExtEPG extracts the external endpoint group name from an instP- segment.
func ExtEPG(s string) string { return first(reExtEPG, s) }

// Pod extracts the pod id from a pod-N segment.
func Pod(s string) string { return first(rePod, s) }

// Node extracts the node id from a path target. Single-node attachments use
// paths-N; VPC attachments use protpaths-N-M and yield the composite "N-M".
func Node(s string) string {
	if m := reProtPaths.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2]
	}
	return first(rePaths, s)
}

// NodeID extracts a plain node id from a node-N segment (e.g. a nodeDn of
// a floating virtual interface, or a logical node attachment target).
func NodeID(s string) string { return first(reNode, s) }

// PathEp extracts the bracketed interface token of a pathep- segment,
// verbatim, embedded slashes included.
func PathEp(s string) string { return first(rePathEp, s) }

// AEP extracts the attachment entity profile name from an attentp- segment.
func AEP(s string) string { return first(reAEP, s) }

// PolicyGroup extracts the interface policy group name from an
// accportgrp- or accbundle- segment.
func PolicyGroup(s string) string {
	if name := first(reAccPortGrp, s); name != "" {
		return name
	}
	return first(reAccBundle, s)
}

// FexProfile extracts the FEX profile name from a fexprof- segment.
func FexProfile(s string) string { return first(reFexProfile, s) }

// VLANPool extracts a VLAN pool name from a vlanns- segment. The bracketed
// form is authoritative; the unbracketed fallback strips the trailing
// allocation-mode token.
func VLANPool(s string) string {
	if name := first(rePoolBracket, s); name != "" {
		return name
	}
	if m := rePoolPlain.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// AllocMode reports the allocation mode encoded in a VLAN pool target,
// defaulting to static.
func AllocMode(s string) string {
	if strings.Contains(s, "dynamic") {
		return "dynamic"
	}
	return "static"
}

// VLAN extracts the numeric VLAN id from a vlan-N encap token.
func VLAN(s string) string { return first(reVLAN, s) }

// DomainKind labels the domain flavor a target DN points at.
type DomainKind string

const (
	DomainPhysical DomainKind = "phys"
	DomainL3       DomainKind = "l3dom"
	DomainVMM      DomainKind = "vmware"
)

// Domain extracts a domain name and kind from a phys-, l3dom- or vmmp-
// target. An empty name means the target is not a domain reference.
func Domain(s string) (string, DomainKind) {
	if name := first(rePhys, s); name != "" {
		return name, DomainPhysical
	}
	if name := first(reL3Dom, s); name != "" {
		return name, DomainL3
	}
	if name := first(reVMM, s); name != "" {
		return name, DomainVMM
	}
	return "", ""
}

// Path is the decomposed view of a fabric path target.
type Path struct {
	Pod       string
	Node      string
	Interface string
}

// ParsePath decomposes a path target DN such as
// topology/pod-1/protpaths-101-102/pathep-[vpc-srv01].
func ParsePath(tDn string) Path {
	return Path{
		Pod:       Pod(tDn),
		Node:      Node(tDn),
		Interface: PathEp(tDn),
	}
}

package dn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantAppEPG(t *testing.T) {
	tests := []struct {
		dn     string
		tenant string
		ap     string
		epg    string
	}{
		{dn: "tn-ACME/ap-WEB/epg-FRONTEND", tenant: "ACME", ap: "WEB", epg: "FRONTEND"},
		{dn: "uni/tn-ACME/ap-WEB/epg-FRONTEND", tenant: "ACME", ap: "WEB", epg: "FRONTEND"},
		{dn: "uni/tn-T1/BD-DB", tenant: "T1"},
		{dn: "", tenant: "", ap: "", epg: ""},
		{dn: "garbage", tenant: "", ap: "", epg: ""},
	}
	for _, tcase := range tests {
		assert.Equalf(t, tcase.tenant, Tenant(tcase.dn), "[%s] tenant", tcase.dn)
		assert.Equalf(t, tcase.ap, AppProfile(tcase.dn), "[%s] ap", tcase.dn)
		assert.Equalf(t, tcase.epg, EPG(tcase.dn), "[%s] epg", tcase.dn)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		tDn  string
		path Path
	}{
		{tDn: "topology/pod-1/protpaths-101-102/pathep-[vpc-srv01]",
			path: Path{Pod: "1", Node: "101-102", Interface: "vpc-srv01"}},
		{tDn: "topology/pod-2/paths-203/pathep-[eth1/15]",
			path: Path{Pod: "2", Node: "203", Interface: "eth1/15"}},
		{tDn: "topology/pod-1/paths-101",
			path: Path{Pod: "1", Node: "101"}},
		{tDn: "not-a-path", path: Path{}},
	}
	for _, tcase := range tests {
		assert.Equalf(t, tcase.path, ParsePath(tcase.tDn), "[%s]", tcase.tDn)
	}
}

func TestVLANPool(t *testing.T) {
	tests := []struct {
		dn    string
		pool  string
		alloc string
	}{
		{dn: "uni/infra/vlanns-[POOL1]-dynamic", pool: "POOL1", alloc: "dynamic"},
		{dn: "uni/infra/vlanns-[PROD-POOL]-static", pool: "PROD-POOL", alloc: "static"},
		{dn: "uni/infra/vlanns-LEGACY-static", pool: "LEGACY", alloc: "static"},
		{dn: "uni/infra/vlanns-OLD-dynamic/from-[vlan-10]-to-[vlan-20]", pool: "OLD", alloc: "dynamic"},
		{dn: "uni/infra", pool: "", alloc: "static"},
	}
	for _, tcase := range tests {
		assert.Equalf(t, tcase.pool, VLANPool(tcase.dn), "[%s] pool", tcase.dn)
		assert.Equalf(t, tcase.alloc, AllocMode(tcase.dn), "[%s] alloc", tcase.dn)
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		tDn  string
		name string
		kind DomainKind
	}{
		{tDn: "uni/phys-SERVERS", name: "SERVERS", kind: DomainPhysical},
		{tDn: "uni/l3dom-WAN", name: "WAN", kind: DomainL3},
		{tDn: "uni/vmmp-VMware/dom-DVS1", name: "VMware", kind: DomainVMM},
		{tDn: "uni/tn-T1", name: "", kind: ""},
	}
	for _, tcase := range tests {
		name, kind := Domain(tcase.tDn)
		assert.Equalf(t, tcase.name, name, "[%s] name", tcase.tDn)
		assert.Equalf(t, tcase.kind, kind, "[%s] kind", tcase.tDn)
	}
}

func TestL3OutSegments(t *testing.T) {
	dn := "uni/tn-T1/out-OUT-A/lnodep-NP1/lifp-IFP1"
	assert.Equal(t, "OUT-A", L3Out(dn))
	assert.Equal(t, "NP1", NodeProfile(dn))
	assert.Equal(t, "IFP1", IfProfile(dn))
	assert.Equal(t, "T1", Tenant(dn))
}

func TestVLAN(t *testing.T) {
	assert.Equal(t, "204", VLAN("vlan-204"))
	assert.Equal(t, "10", VLAN("uni/infra/vlanns-[P]-static/from-[vlan-10]-to-[vlan-20]"))
	assert.Equal(t, "", VLAN("untagged"))
}

func TestAEPAndPolicyGroup(t *testing.T) {
	assert.Equal(t, "AEP-SRV", AEP("uni/infra/attentp-AEP-SRV/gen-default"))
	assert.Equal(t, "PG-ACC", PolicyGroup("uni/infra/funcprof/accportgrp-PG-ACC"))
	assert.Equal(t, "PG-VPC", PolicyGroup("uni/infra/funcprof/accbundle-PG-VPC"))
	assert.Equal(t, "", PolicyGroup("uni/infra"))
}

func TestNodeID(t *testing.T) {
	assert.Equal(t, "101", NodeID("topology/pod-1/node-101"))
	assert.Equal(t, "", NodeID("topology/pod-1"))
}

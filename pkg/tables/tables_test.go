package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUnique(t *testing.T) {
	var list []EPG
	rec := EPG{Tenant: "T1", AppProfile: "AP1", EPG: "E1", BD: "BD1"}
	list = AppendUnique(list, rec)
	list = AppendUnique(list, rec)
	list = AppendUnique(list, EPG{Tenant: "T1", AppProfile: "AP1", EPG: "E2"})
	assert.Len(t, list, 2)
}

func TestKeyedAdds(t *testing.T) {
	ts := New()
	ts.AddVLANPool(VLANPool{Pool: "P1", AllocMode: "static"})
	// Same pool rediscovered with a different description must not duplicate.
	ts.AddVLANPool(VLANPool{Pool: "P1", AllocMode: "static", Description: "other"})
	assert.Len(t, ts.VLANPools, 1)

	ts.AddPolicyGroup(InterfacePolicyGroup{PolicyGroup: "PG1", AEP: "A1"})
	ts.AddPolicyGroup(InterfacePolicyGroup{PolicyGroup: "PG1", AEP: "A1", Description: "d"})
	ts.AddPolicyGroup(InterfacePolicyGroup{PolicyGroup: "PG1", AEP: "A2"})
	assert.Len(t, ts.PolicyGroups, 2)

	ts.AddMatchRule(MatchRule{Tenant: "T1", MatchRule: "MR1"})
	ts.AddMatchRule(MatchRule{Tenant: "T1", MatchRule: "MR1"})
	ts.AddMatchRule(MatchRule{Tenant: "T2", MatchRule: "MR1"})
	assert.Len(t, ts.MatchRules, 2)
}

func TestTablesOmitsEmpty(t *testing.T) {
	ts := New()
	assert.Empty(t, ts.Tables())

	ts.EPGs = append(ts.EPGs, EPG{Tenant: "T1", AppProfile: "AP1", EPG: "E1", BD: "BD1"})
	out := ts.Tables()
	require.Len(t, out, 1)
	assert.Equal(t, TableEPG, out[0].Name)
}

func TestProjectionColumns(t *testing.T) {
	ts := New()
	ts.BridgeDomains = append(ts.BridgeDomains, BridgeDomain{
		Tenant: "T1", BD: "BD1", VRF: "VRF1",
		EnableRouting: "true", ARPFlooding: "false", L2UnknownUnicast: "proxy",
	})
	out := ts.Tables()
	require.Len(t, out, 1)
	bd := out[0]
	assert.Equal(t, []string{"tenant", "bd", "vrf", "description", "enable_routing", "arp_flooding", "l2_unknown_unicast"}, bd.Columns)
	require.Len(t, bd.Rows, 1)
	assert.Equal(t, []interface{}{"T1", "BD1", "VRF1", "", "true", "false", "proxy"}, bd.Rows[0])
}

func TestLookup(t *testing.T) {
	tab := &Table{Columns: []string{"tenant", "bd"}}
	assert.Equal(t, 1, tab.Lookup("bd"))
	assert.Equal(t, -1, tab.Lookup("missing"))
}

func TestCanonicalOrder(t *testing.T) {
	ts := New()
	ts.L3Outs = append(ts.L3Outs, L3Out{Tenant: "T1", L3Out: "OUT-A"})
	ts.VLANPools = append(ts.VLANPools, VLANPool{Pool: "P1"})
	out := ts.Tables()
	require.Len(t, out, 2)
	assert.Equal(t, TableVLANPool, out[0].Name)
	assert.Equal(t, TableL3Out, out[1].Name)
}

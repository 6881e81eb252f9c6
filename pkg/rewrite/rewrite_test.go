package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acitools/fabricmig/pkg/tables"
)

func sampleTables() []*tables.Table {
	return []*tables.Table{
		{
			Name:    tables.TableLogicalNode,
			Columns: []string{"tenant", "l3out", "node_profile", "pod_id", "node_id", "router_id", "router_id_as_loopback", "loopback_address"},
			Rows: [][]interface{}{
				{"T1", "OUT-A", "NP1", "1", "101", "1.1.1.1", "no", ""},
				{"T1", "OUT-A", "NP1", "1", "102", "1.1.1.2", "no", ""},
			},
		},
		{
			Name:    tables.TableBDToL3Out,
			Columns: []string{"tenant", "bridge_domain", "l3out"},
			Rows: [][]interface{}{
				{"T1", "BD1", "OUT-A"},
			},
		},
		{
			Name:    tables.TableL3Out,
			Columns: []string{"tenant", "l3out", "vrf", "domain", "l3protocol", "route_control", "description"},
			Rows: [][]interface{}{
				{"T1", "OUT-A", "VRF1", "WAN", "bgp", "export", ""},
			},
		},
	}
}

// A node-id mapping produces an integer cell after substitution.
func TestApplyNumericCoercion(t *testing.T) {
	out, changes, err := Apply(sampleTables(), Mappings{NodeID: map[string]string{"101": "201"}})
	require.NoError(t, err)
	assert.Equal(t, 1, changes)
	assert.Equal(t, 201, out[0].Rows[0][4])
	assert.Equal(t, "102", out[0].Rows[1][4])
}

func TestApplyIdentityIsNoOp(t *testing.T) {
	in := sampleTables()
	out, changes, err := Apply(in, Mappings{
		Tenant: map[string]string{"T1": "T1"},
		NodeID: map[string]string{"101": "101"},
		L3Out:  map[string]string{"OUT-A": "OUT-A"},
	})
	require.NoError(t, err)
	assert.Zero(t, changes)
	assert.Equal(t, in, out)
}

// The routed-out mapping only touches the link table; the l3out column of
// every other sheet is the row's own identity and stays put.
func TestL3OutMappingRestrictedToLinkTable(t *testing.T) {
	out, changes, err := Apply(sampleTables(), Mappings{L3Out: map[string]string{"OUT-A": "OUT-NEW"}})
	require.NoError(t, err)
	assert.Equal(t, 1, changes)
	assert.Equal(t, "OUT-NEW", out[1].Rows[0][2])
	assert.Equal(t, "OUT-A", out[0].Rows[0][1])
	assert.Equal(t, "OUT-A", out[2].Rows[0][1])
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sampleTables()
	_, _, err := Apply(in, Mappings{Tenant: map[string]string{"T1": "T9"}})
	require.NoError(t, err)
	assert.Equal(t, "T1", in[0].Rows[0][0])
}

// Applying a bijective mapping and then its inverse restores the original.
func TestApplyRoundTrip(t *testing.T) {
	in := sampleTables()
	forward := Mappings{
		Tenant: map[string]string{"T1": "T9"},
		NodeID: map[string]string{"101": "201", "102": "202"},
	}
	inverse := Mappings{
		Tenant: map[string]string{"T9": "T1"},
		NodeID: map[string]string{"201": "101", "202": "102"},
	}
	mid, _, err := Apply(in, forward)
	require.NoError(t, err)
	back, _, err := Apply(mid, inverse)
	require.NoError(t, err)

	// Numeric cells stay numeric after a round trip; compare as text.
	require.Len(t, back, len(in))
	for i := range in {
		require.Equal(t, in[i].Columns, back[i].Columns)
		for r := range in[i].Rows {
			for c := range in[i].Rows[r] {
				assert.Equal(t, cellString(in[i].Rows[r][c]), cellString(back[i].Rows[r][c]))
			}
		}
	}
}

func TestDisableRouting(t *testing.T) {
	ts := []*tables.Table{{
		Name:    tables.TableBD,
		Columns: []string{"tenant", "bd", "vrf", "description", "enable_routing", "arp_flooding", "l2_unknown_unicast"},
		Rows: [][]interface{}{
			{"T1", "BD1", "VRF1", "", "true", "false", "proxy"},
			{"T1", "BD2", "VRF1", "", "true", "true", "flood"},
		},
	}}
	n := DisableRouting(ts)
	assert.Equal(t, 2, n)
	assert.Equal(t, "false", ts[0].Rows[0][4])
	assert.Equal(t, "false", ts[0].Rows[1][4])
}

func TestDiscoverAndTemplate(t *testing.T) {
	v := Discover(sampleTables())
	assert.Equal(t, []string{"T1"}, v.Role("tenant"))
	assert.Equal(t, []string{"101", "102"}, v.Role("node_id"))
	assert.Equal(t, []string{"NP1"}, v.Role("node_profile"))
	// Only the link table feeds the routed-out role.
	assert.Equal(t, []string{"OUT-A"}, v.Role("l3out"))

	tmpl := Template(v)
	assert.Contains(t, tmpl, "tenant_mapping:")
	assert.Contains(t, tmpl, `- source: "101"`)
	assert.Contains(t, tmpl, "path_ep_mapping:\n  []")
	assert.Contains(t, tmpl, "disable_bd_routing: false")
}

// Values found on the interface-policy sheets must not feed the
// interface_profile role.
func TestDiscoverExcludesPolicySheets(t *testing.T) {
	ts := []*tables.Table{
		{
			Name:    tables.TableInterfaceProfile,
			Columns: []string{"interface_profile", "description", "type"},
			Rows:    [][]interface{}{{"LEAF-PROF", "", "leaf"}},
		},
		{
			Name:    tables.TableIfProfile,
			Columns: []string{"tenant", "l3out", "node_profile", "interface_profile", "description"},
			Rows:    [][]interface{}{{"T1", "OUT-A", "NP1", "IFP1", ""}},
		},
	}
	v := Discover(ts)
	assert.Equal(t, []string{"IFP1"}, v.Role("interface_profile"))
}

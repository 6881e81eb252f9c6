// Package rewrite applies rename and renumber mappings to a projected
// table set, preparing a snapshot taken on one fabric for replay against
// another. Cells are matched by semantic role, not by table: a role owns a
// set of column names, and every table carrying one of those columns is
// rewritten.
package rewrite

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/tables"
)

// Mappings holds the old→new value maps, one per semantic role. Empty maps
// are legal and rewrite nothing.
type Mappings struct {
	Tenant              map[string]string
	VRF                 map[string]string
	AppProfile          map[string]string
	L3Out               map[string]string
	NodeID              map[string]string
	NodeProfile         map[string]string
	InterfaceProfile    map[string]string
	PathEp              map[string]string
	LocalAS             map[string]string
	MatchRule           map[string]string
	RouteControlProfile map[string]string
	RouteControlContext map[string]string
}

// Options are the rewrite extras beyond value mapping.
type Options struct {
	DisableBDRouting bool
}

// roleSpec binds one semantic role to the column names it owns. A non-empty
// table restricts the role to that one sheet; numeric roles coerce the
// replacement back to an integer cell.
type roleSpec struct {
	name    string
	columns []string
	table   string
	numeric bool
	pick    func(Mappings) map[string]string
}

var roles = []roleSpec{
	{name: "tenant", columns: []string{"tenant"},
		pick: func(m Mappings) map[string]string { return m.Tenant }},
	{name: "vrf", columns: []string{"vrf"},
		pick: func(m Mappings) map[string]string { return m.VRF }},
	{name: "ap", columns: []string{"ap"},
		pick: func(m Mappings) map[string]string { return m.AppProfile }},
	// The routed-out name is the link target here, not the row's own
	// identity, so the role stays off every other l3out column.
	{name: "l3out", columns: []string{"l3out", "l3out_name"}, table: tables.TableBDToL3Out,
		pick: func(m Mappings) map[string]string { return m.L3Out }},
	{name: "node_id", columns: []string{"node_id"}, numeric: true,
		pick: func(m Mappings) map[string]string { return m.NodeID }},
	{name: "node_profile", columns: []string{"node_profile", "logical_node_profile", "node_profile_name"},
		pick: func(m Mappings) map[string]string { return m.NodeProfile }},
	{name: "interface_profile", columns: []string{"interface_profile", "logical_interface_profile", "interface_profile_name"},
		pick: func(m Mappings) map[string]string { return m.InterfaceProfile }},
	{name: "path_ep", columns: []string{"path_ep", "path", "interface", "tDn"},
		pick: func(m Mappings) map[string]string { return m.PathEp }},
	{name: "local_as", columns: []string{"local_as", "local_asn", "asn", "local_as_number"}, numeric: true,
		pick: func(m Mappings) map[string]string { return m.LocalAS }},
	{name: "match_rule", columns: []string{"match_rule"},
		pick: func(m Mappings) map[string]string { return m.MatchRule }},
	{name: "route_control_profile", columns: []string{"route_control_profile"},
		pick: func(m Mappings) map[string]string { return m.RouteControlProfile }},
	{name: "route_control_context", columns: []string{"route_control_context"},
		pick: func(m Mappings) map[string]string { return m.RouteControlContext }},
}

// Apply rewrites every mapped cell and returns the rewritten tables with
// the number of modified cells. The input tables are never mutated.
// Identity entries (old == new) match nothing and count nothing.
func Apply(in []*tables.Table, m Mappings) ([]*tables.Table, int, error) {
	var out []*tables.Table
	if err := copier.CopyWithOption(&out, &in, copier.Option{DeepCopy: true}); err != nil {
		return nil, 0, errors.Wrap(err, "copying tables")
	}

	total := 0
	for _, t := range out {
		changed := 0
		for _, role := range roles {
			mapping := role.pick(m)
			if len(mapping) == 0 {
				continue
			}
			if role.table != "" && role.table != t.Name {
				continue
			}
			for _, col := range role.columns {
				idx := t.Lookup(col)
				if idx < 0 {
					continue
				}
				changed += rewriteColumn(t, idx, mapping, role.numeric)
			}
		}
		if changed > 0 {
			klog.V(2).Infof("%s: %d cell(s) rewritten", t.Name, changed)
			total += changed
		}
	}
	return out, total, nil
}

// rewriteColumn substitutes mapped values in one column. Keys are applied
// in sorted order for determinism; a cell is rewritten at most once.
func rewriteColumn(t *tables.Table, idx int, mapping map[string]string, numeric bool) int {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	changed := 0
	for _, row := range t.Rows {
		cur := cellString(row[idx])
		for _, src := range keys {
			dest := mapping[src]
			if src == dest {
				continue
			}
			if numeric {
				if strings.TrimSpace(cur) != strings.TrimSpace(src) {
					continue
				}
			} else if cur != src {
				continue
			}
			row[idx] = coerce(dest, numeric)
			changed++
			break
		}
	}
	return changed
}

// DisableRouting forces enable_routing to false on every bridge-domain
// row. Returns the number of rows touched.
func DisableRouting(ts []*tables.Table) int {
	for _, t := range ts {
		if t.Name != tables.TableBD {
			continue
		}
		idx := -1
		for _, col := range []string{"enable_routing", "unicast_route", "routing"} {
			if idx = t.Lookup(col); idx >= 0 {
				break
			}
		}
		if idx < 0 {
			klog.Warning("bridge-domain table has no routing column")
			return 0
		}
		for _, row := range t.Rows {
			row[idx] = "false"
		}
		return len(t.Rows)
	}
	return 0
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// coerce converts a numeric-role replacement back to an integer cell, so
// spreadsheet consumers see numbers where numbers belong. Non-numeric
// replacements stay text.
func coerce(dest string, numeric bool) interface{} {
	if numeric {
		if n, err := strconv.Atoi(strings.TrimSpace(dest)); err == nil {
			return n
		}
	}
	return dest
}

package tables

import (
	"reflect"
)

// Table is one projected output table. Rows hold cell values as produced
// by projection (strings) or by the rewrite pass (strings, or integers
// after numeric coercion).
type Table struct {
	Name    string
	Columns []string
	Rows    [][]interface{}
}

// Lookup returns the row index of a column name, or -1.
func (t *Table) Lookup(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Tables projects every non-empty record collection into one named table,
// in the canonical sheet order. Empty collections are omitted entirely so
// downstream consumers can tell "nothing found" from "found, all blank".
func (ts *TableSet) Tables() []*Table {
	ordered := []*Table{
		project(TableVLANPool, ts.VLANPools),
		project(TableEncapBlock, ts.EncapBlocks),
		project(TableDomain, ts.Domains),
		project(TableDomainToPool, ts.DomainToPools),
		project(TableAEP, ts.AEPs),
		project(TableAEPToDomain, ts.AEPToDomains),
		project(TableBD, ts.BridgeDomains),
		project(TableBDSubnet, ts.BDSubnets),
		project(TableBDToL3Out, ts.BDToL3Outs),
		project(TableEPG, ts.EPGs),
		project(TableEPGToDomain, ts.EPGToDomains),
		project(TableAEPToEPG, ts.AEPToEPGs),
		project(TablePolicyGroup, ts.PolicyGroups),
		project(TableInterfaceProfile, ts.InterfaceProfiles),
		project(TableAccessPortSelector, ts.AccessPortSelectors),
		project(TableL3Out, ts.L3Outs),
		project(TableNodeProfile, ts.NodeProfiles),
		project(TableLogicalNode, ts.LogicalNodes),
		project(TableIfProfile, ts.IfProfiles),
		project(TableL3OutInterface, ts.Interfaces),
		project(TableBGPProtocolProfile, ts.BGPProtocolProfiles),
		project(TableBGPPeer, ts.BGPPeers),
		project(TableExtEPG, ts.ExtEPGs),
		project(TableExtSubnet, ts.ExtSubnets),
		project(TableExtEPGToContract, ts.ExtEPGToContracts),
		project(TableFloatingSVI, ts.FloatingSVIs),
		project(TableFloatingSVIPath, ts.FloatingSVIPaths),
		project(TableFloatingSVISecondaryIP, ts.FloatingSVISecondaryIPs),
		project(TableFloatingBGPPeer, ts.FloatingBGPPeers),
		project(TableBFDInterfaceProfile, ts.BFDInterfaceProfiles),
		project(TableDefaultRouteLeak, ts.DefaultRouteLeaks),
		project(TableMatchRule, ts.MatchRules),
		project(TableMatchRouteDestination, ts.MatchRouteDestinations),
		project(TableRouteControlProfile, ts.RouteControlProfiles),
		project(TableRouteControlContext, ts.RouteControlContexts),
	}
	out := make([]*Table, 0, len(ordered))
	for _, t := range ordered {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// project converts a typed record slice into a Table using the col tags.
// An empty slice yields nil: the table is omitted, not emitted empty.
func project[T any](name string, records []T) *Table {
	if len(records) == 0 {
		return nil
	}
	var zero T
	rt := reflect.TypeOf(zero)
	columns := make([]string, 0, rt.NumField())
	fields := make([]int, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("col")
		if tag == "" {
			continue
		}
		columns = append(columns, tag)
		fields = append(fields, i)
	}
	t := &Table{Name: name, Columns: columns, Rows: make([][]interface{}, 0, len(records))}
	for _, rec := range records {
		rv := reflect.ValueOf(rec)
		row := make([]interface{}, len(fields))
		for i, fi := range fields {
			row[i] = rv.Field(fi).String()
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

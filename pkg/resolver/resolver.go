// Package resolver walks a decoded fabric configuration and assembles the
// cross-referenced relation records for a list of extraction requests.
// There is no persistent state across requests: each Resolve call owns one
// table set, builds it from scratch, and returns it.
package resolver

import (
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/aci"
	"github.com/acitools/fabricmig/pkg/tables"
)

// EPGRequest selects one endpoint group.
type EPGRequest struct {
	Tenant     string
	AppProfile string
	EPG        string
}

// L3OutRequest selects one routed-out construct. Floating picks the
// virtual-interface topology; the two interface representations are
// mutually exclusive per request.
type L3OutRequest struct {
	Tenant   string
	L3Out    string
	Floating bool
}

// RequestList is one extraction batch, processed in input order.
type RequestList struct {
	EPGs   []EPGRequest
	L3Outs []L3OutRequest
}

// Empty reports whether the batch selects nothing.
func (rl RequestList) Empty() bool {
	return len(rl.EPGs) == 0 && len(rl.L3Outs) == 0
}

// Options are the resolver feature toggles. The historical extraction
// script variants differed only in which optional object families they
// covered; one resolver with toggles replaces them.
type Options struct {
	IncludeRouteControl      bool
	IncludeInterfacePolicies bool
}

// DefaultOptions enables every object family.
func DefaultOptions() Options {
	return Options{IncludeRouteControl: true, IncludeInterfacePolicies: true}
}

// Resolver resolves extraction requests against one fabric.
type Resolver struct {
	fabric *aci.Fabric
	opts   Options
}

// New returns a resolver over the given fabric.
func New(fabric *aci.Fabric, opts Options) *Resolver {
	return &Resolver{fabric: fabric, opts: opts}
}

// run carries the per-invocation accumulation state.
type run struct {
	fabric *aci.Fabric
	opts   Options
	ts     *tables.TableSet

	foundEPGKeys    map[string]bool // tenant/ap/epg
	foundBDKeys     map[string]bool // tenant/bd
	requestedL3Outs map[string]bool // l3out name
	referencedRules map[string]bool // match rules referenced by a context
}

// Resolve processes the batch and returns the completed table set. Requests
// that cannot be resolved are logged and skipped; the batch continues.
func (r *Resolver) Resolve(list RequestList) *tables.TableSet {
	rn := &run{
		fabric:          r.fabric,
		opts:            r.opts,
		ts:              tables.New(),
		foundEPGKeys:    map[string]bool{},
		foundBDKeys:     map[string]bool{},
		requestedL3Outs: map[string]bool{},
		referencedRules: map[string]bool{},
	}

	for _, req := range list.EPGs {
		rn.resolveEPG(req)
	}
	for _, req := range list.L3Outs {
		rn.requestedL3Outs[req.L3Out] = true
		rn.resolveL3Out(req)
	}

	if rn.opts.IncludeRouteControl {
		rn.resolveTenantMatchRules()
	}
	rn.resolveDomainBindings()
	rn.resolveBDRelations()
	rn.resolveAEPToEPG()
	if rn.opts.IncludeInterfacePolicies {
		rn.resolvePolicyGroups()
		rn.resolveInterfaceProfiles()
	}

	klog.V(2).Infof("resolved %d EPG(s), %d L3Out(s), %d bridge domain(s)",
		len(rn.ts.EPGs), len(rn.ts.L3Outs), len(rn.ts.BridgeDomains))
	return rn.ts
}

// tenantByName finds a tenant object by exact name match.
func (rn *run) tenantByName(name string) *aci.Object {
	for _, t := range rn.fabric.ObjectsOf(aci.ClassTenant) {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

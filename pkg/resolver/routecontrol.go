package resolver

import (
	"github.com/acitools/fabricmig/pkg/aci"
	"github.com/acitools/fabricmig/pkg/tables"
)

// resolveRouteControl records the route-control profiles attached to one
// routed-out construct and marks every match rule a context references, so
// the tenant-wide rule scan can pick up their definitions afterwards.
func (rn *run) resolveRouteControl(req L3OutRequest, l3outObj *aci.Object) {
	for _, profile := range l3outObj.ChildrenOf(aci.ClassRouteControlProfile) {
		profileName := profile.Name()
		if profileName == "" {
			continue
		}
		rn.ts.RouteControlProfiles = tables.AppendUnique(rn.ts.RouteControlProfiles, tables.RouteControlProfile{
			Tenant:  req.Tenant,
			L3Out:   req.L3Out,
			Profile: profileName,
		})
		for _, ctx := range profile.ChildrenOf(aci.ClassRouteControlContext) {
			ctxName := ctx.Name()
			if ctxName == "" {
				continue
			}
			// A context without an explicit subject link matches a rule
			// named after itself, but only explicit links prove the rule
			// exists as a tenant object.
			rule := ctxName
			if rel := ctx.FirstChild(aci.ClassRsCtxToSubj); rel != nil && rel.Attr("tnRtctrlSubjPName") != "" {
				rule = rel.Attr("tnRtctrlSubjPName")
				rn.referencedRules[req.Tenant+"/"+rule] = true
			}
			rn.ts.RouteControlContexts = tables.AppendUnique(rn.ts.RouteControlContexts, tables.RouteControlContext{
				Tenant:    req.Tenant,
				L3Out:     req.L3Out,
				Profile:   profileName,
				Context:   ctxName,
				MatchRule: rule,
			})
		}
	}
}

// resolveTenantMatchRules collects the definitions of every referenced
// match rule, with their route destination children. Rules nothing
// references stay out of the output.
func (rn *run) resolveTenantMatchRules() {
	for _, tenant := range rn.fabric.ObjectsOf(aci.ClassTenant) {
		tenantName := tenant.Name()
		for _, subj := range tenant.ChildrenOf(aci.ClassMatchRule) {
			ruleName := subj.Name()
			if ruleName == "" || !rn.referencedRules[tenantName+"/"+ruleName] {
				continue
			}
			rn.ts.AddMatchRule(tables.MatchRule{
				Tenant:      tenantName,
				MatchRule:   ruleName,
				Description: subj.Attr("descr"),
			})
			for _, dest := range subj.ChildrenOf(aci.ClassMatchRouteDest) {
				if ip := dest.Attr("ip"); ip != "" {
					rn.ts.MatchRouteDestinations = tables.AppendUnique(rn.ts.MatchRouteDestinations, tables.MatchRouteDestination{
						Tenant:    tenantName,
						MatchRule: ruleName,
						IP:        ip,
					})
				}
			}
		}
	}
}

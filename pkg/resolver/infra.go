package resolver

import (
	"strings"

	"github.com/acitools/fabricmig/pkg/aci"
	"github.com/acitools/fabricmig/pkg/dn"
	"github.com/acitools/fabricmig/pkg/tables"
)

// resolveDomainBindings backfills the access-policy chain behind every
// domain the request walks discovered: VLAN pools with their encap blocks,
// and attachment entity profiles with their domain links. Virtual domains
// carry no VLAN pool binding of interest here.
func (rn *run) resolveDomainBindings() {
	domainKinds := map[string]dn.DomainKind{}
	for _, d := range rn.ts.Domains {
		kind := dn.DomainKind(d.DomainType)
		if kind == dn.DomainPhysical || kind == dn.DomainL3 {
			domainKinds[d.Domain] = kind
		}
	}

	poolDescr := map[string]string{}
	for _, pool := range rn.fabric.ObjectsOf(aci.ClassVLANPool) {
		poolDescr[pool.Name()] = pool.Attr("descr")
	}

	poolAlloc := map[string]string{}
	rels := append([]*aci.Object{}, rn.fabric.ObjectsOf(aci.ClassInfraRsVlanNs)...)
	rels = append(rels, rn.fabric.ObjectsOf(aci.ClassL3extRsVlanNs)...)
	for _, rel := range rels {
		domName, kind := dn.Domain(rel.DN())
		if domName == "" || domainKinds[domName] != kind {
			continue
		}
		tDn := rel.Attr("tDn")
		pool := dn.VLANPool(tDn)
		if pool == "" {
			continue
		}
		alloc := dn.AllocMode(tDn)
		poolAlloc[pool] = alloc
		rn.ts.DomainToPools = tables.AppendUnique(rn.ts.DomainToPools, tables.DomainToPool{
			Domain:     domName,
			DomainType: string(kind),
			VLANPool:   pool,
			AllocMode:  alloc,
		})
		rn.ts.AddVLANPool(tables.VLANPool{
			Pool:        pool,
			AllocMode:   alloc,
			Description: poolDescr[pool],
		})
	}

	for _, blk := range rn.fabric.ObjectsOf(aci.ClassEncapBlock) {
		pool := dn.VLANPool(blk.DN())
		alloc, ok := poolAlloc[pool]
		if !ok {
			continue
		}
		rn.ts.EncapBlocks = tables.AppendUnique(rn.ts.EncapBlocks, tables.EncapBlock{
			Pool:        pool,
			AllocMode:   alloc,
			BlockStart:  dn.VLAN(blk.Attr("from")),
			BlockEnd:    dn.VLAN(blk.Attr("to")),
			Description: blk.Attr("descr"),
		})
	}

	aepDescr := map[string]string{}
	for _, aep := range rn.fabric.ObjectsOf(aci.ClassAEP) {
		aepDescr[aep.Name()] = aep.Attr("descr")
	}
	for _, rel := range rn.fabric.ObjectsOf(aci.ClassRsDomP) {
		aepName := dn.AEP(rel.DN())
		if aepName == "" {
			continue
		}
		domName, kind := dn.Domain(rel.Attr("tDn"))
		if domName == "" || domainKinds[domName] != kind {
			continue
		}
		rn.ts.AddAEP(tables.AEP{AEP: aepName, Description: aepDescr[aepName]})
		rn.ts.AEPToDomains = tables.AppendUnique(rn.ts.AEPToDomains, tables.AEPToDomain{
			AEP:        aepName,
			Domain:     domName,
			DomainType: string(kind),
		})
	}
}

// resolveBDRelations collects bridge-domain children that reach outside the
// bridge domain itself: routed-out links restricted to the requested
// routed-outs, and gateway subnets for every resolved bridge domain.
func (rn *run) resolveBDRelations() {
	for _, tenant := range rn.fabric.ObjectsOf(aci.ClassTenant) {
		tenantName := tenant.Name()
		for _, bd := range tenant.ChildrenOf(aci.ClassBD) {
			bdName := bd.Name()
			for _, rel := range bd.ChildrenOf(aci.ClassRsBDToOut) {
				l3out := rel.Attr("tnL3extOutName")
				if l3out == "" || !rn.requestedL3Outs[l3out] {
					continue
				}
				rn.ts.BDToL3Outs = tables.AppendUnique(rn.ts.BDToL3Outs, tables.BDToL3Out{
					Tenant:       tenantName,
					BridgeDomain: bdName,
					L3Out:        l3out,
				})
			}
			if !rn.foundBDKeys[tenantName+"/"+bdName] {
				continue
			}
			for _, subnet := range bd.ChildrenOf(aci.ClassSubnet) {
				ip := subnet.Attr("ip")
				if ip == "" {
					continue
				}
				gateway, mask := splitGateway(ip)
				scope := subnet.Attr("scope")
				if scope == "" {
					scope = "private"
				}
				rn.ts.BDSubnets = tables.AppendUnique(rn.ts.BDSubnets, tables.BDSubnet{
					Tenant:      tenantName,
					BD:          bdName,
					Description: subnet.Attr("descr"),
					Gateway:     gateway,
					Mask:        mask,
					Scope:       scope,
				})
			}
		}
	}
}

// splitGateway splits "address/prefix" into its two parts. A bare address
// gets the /24 the provisioning sheets assume.
func splitGateway(ip string) (gateway, mask string) {
	if i := strings.LastIndex(ip, "/"); i >= 0 {
		return ip[:i], ip[i+1:]
	}
	return ip, "24"
}

// resolveAEPToEPG collects static endpoint-group bindings declared on
// attachment entity profiles, restricted to the endpoint groups this run
// resolved.
func (rn *run) resolveAEPToEPG() {
	for _, rel := range rn.fabric.ObjectsOf(aci.ClassRsFuncToEpg) {
		aepName := dn.AEP(rel.DN())
		if aepName == "" {
			continue
		}
		tDn := rel.Attr("tDn")
		tenant, ap, epg := dn.Tenant(tDn), dn.AppProfile(tDn), dn.EPG(tDn)
		if !rn.foundEPGKeys[tenant+"/"+ap+"/"+epg] {
			continue
		}
		rn.ts.AEPToEPGs = tables.AppendUnique(rn.ts.AEPToEPGs, tables.AEPToEPG{
			AEP:           aepName,
			Tenant:        tenant,
			AppProfile:    ap,
			EPG:           epg,
			Encap:         rel.Attr("encap"),
			InterfaceMode: interfaceMode(rel.Attr("mode")),
		})
	}
}

// interfaceMode translates the controller's encap mode tokens into the
// provisioning vocabulary.
func interfaceMode(mode string) string {
	switch mode {
	case "untagged":
		return "access"
	case "native":
		return "802.1p"
	default:
		return "trunk"
	}
}

// policyRelations maps the policy-group relation classes to their target
// name attributes, in output column order.
var policyRelations = []struct {
	class string
	attr  string
}{
	{aci.ClassRsHIfPol, "tnFabricHIfPolName"},
	{aci.ClassRsCdpIfPol, "tnCdpIfPolName"},
	{aci.ClassRsLldpIfPol, "tnLldpIfPolName"},
	{aci.ClassRsMcpIfPol, "tnMcpIfPolName"},
	{aci.ClassRsStpIfPol, "tnStpIfPolName"},
	{aci.ClassRsLacpPol, "tnLacpLagPolName"},
	{aci.ClassRsL2IfPol, "tnL2IfPolName"},
}

// resolvePolicyGroups collects interface policy groups bound to one of the
// attachment entity profiles this run discovered.
func (rn *run) resolvePolicyGroups() {
	aeps := map[string]bool{}
	for _, a := range rn.ts.AEPs {
		aeps[a.AEP] = true
	}
	for _, pg := range rn.fabric.ObjectsOf(aci.ClassAccPortGroup) {
		rn.addPolicyGroup(pg, "leaf", aeps)
	}
	for _, pg := range rn.fabric.ObjectsOf(aci.ClassAccBundleGroup) {
		lag := pg.Attr("lagT")
		if lag == "" {
			lag = "link"
		}
		rn.addPolicyGroup(pg, lag, aeps)
	}
}

func (rn *run) addPolicyGroup(pg *aci.Object, lagType string, aeps map[string]bool) {
	aepName := ""
	if rel := pg.FirstChild(aci.ClassRsAttEntP); rel != nil {
		aepName = dn.AEP(rel.Attr("tDn"))
	}
	if aepName == "" || !aeps[aepName] {
		return
	}
	rec := tables.InterfacePolicyGroup{
		PolicyGroup: pg.Name(),
		AEP:         aepName,
		LagType:     lagType,
		Description: pg.Attr("descr"),
	}
	policies := map[string]string{}
	for _, child := range pg.Children {
		for _, pr := range policyRelations {
			if child.Class == pr.class {
				policies[pr.class] = child.Attr(pr.attr)
			}
		}
	}
	rec.LinkLevelPolicy = policies[aci.ClassRsHIfPol]
	rec.CDPPolicy = policies[aci.ClassRsCdpIfPol]
	rec.LLDPPolicy = policies[aci.ClassRsLldpIfPol]
	rec.MCPPolicy = policies[aci.ClassRsMcpIfPol]
	rec.STPInterfacePolicy = policies[aci.ClassRsStpIfPol]
	rec.PortChannelPolicy = policies[aci.ClassRsLacpPol]
	rec.L2InterfacePolicy = policies[aci.ClassRsL2IfPol]
	rn.ts.AddPolicyGroup(rec)
}

// resolveInterfaceProfiles collects leaf and FEX interface profiles whose
// access port selectors reference one of the discovered policy groups, with
// one selector row per port block.
func (rn *run) resolveInterfaceProfiles() {
	pgs := map[string]bool{}
	for _, pg := range rn.ts.PolicyGroups {
		pgs[pg.PolicyGroup] = true
	}
	for _, ifp := range rn.fabric.ObjectsOf(aci.ClassAccPortProfile) {
		rn.addInterfaceProfile(ifp, "leaf", pgs)
	}
	for _, ifp := range rn.fabric.ObjectsOf(aci.ClassFexProfile) {
		rn.addInterfaceProfile(ifp, "fex", pgs)
	}
}

func (rn *run) addInterfaceProfile(ifp *aci.Object, profileType string, pgs map[string]bool) {
	profileName := ifp.Name()
	if profileName == "" {
		return
	}
	matched := false
	for _, sel := range ifp.ChildrenOf(aci.ClassHostPortSel) {
		pgName := ""
		if rel := sel.FirstChild(aci.ClassRsAccBaseGrp); rel != nil {
			pgName = dn.PolicyGroup(rel.Attr("tDn"))
		}
		if pgName == "" || !pgs[pgName] {
			continue
		}
		matched = true
		for _, blk := range sel.ChildrenOf(aci.ClassPortBlock) {
			rn.ts.AccessPortSelectors = tables.AppendUnique(rn.ts.AccessPortSelectors, tables.AccessPortSelector{
				InterfaceProfile: profileName,
				Selector:         sel.Name(),
				PortBlock:        blk.Name(),
				FromPort:         blk.Attr("fromPort"),
				ToPort:           blk.Attr("toPort"),
				PolicyGroup:      pgName,
				Description:      sel.Attr("descr"),
			})
		}
	}
	if matched {
		rn.ts.AddInterfaceProfile(tables.InterfaceProfile{
			InterfaceProfile: profileName,
			Description:      ifp.Attr("descr"),
			Type:             profileType,
		})
	}
}

package resolver

import (
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/aci"
	"github.com/acitools/fabricmig/pkg/dn"
	"github.com/acitools/fabricmig/pkg/tables"
)

// resolveEPG locates one endpoint group and records it with its bridge
// domain binding and domain attachments.
func (rn *run) resolveEPG(req EPGRequest) {
	epgObj := rn.findEPG(req)
	if epgObj == nil {
		klog.Warningf("EPG not found: %s/%s/%s", req.Tenant, req.AppProfile, req.EPG)
		return
	}

	bdName := ""
	if rel := epgObj.FirstChild(aci.ClassRsBD); rel != nil {
		bdName = rel.Attr("tnFvBDName")
	}

	rn.ts.EPGs = tables.AppendUnique(rn.ts.EPGs, tables.EPG{
		Tenant:      req.Tenant,
		AppProfile:  req.AppProfile,
		EPG:         req.EPG,
		BD:          bdName,
		Description: epgObj.Attr("descr"),
	})
	rn.foundEPGKeys[req.Tenant+"/"+req.AppProfile+"/"+req.EPG] = true

	for _, att := range epgObj.ChildrenOf(aci.ClassRsDomAtt) {
		name, kind := dn.Domain(att.Attr("tDn"))
		if name == "" || kind == dn.DomainVMM {
			// Endpoint-group attachments cover physical and routed
			// domains; virtual domains surface through the floating
			// interface walk instead.
			continue
		}
		rn.ts.EPGToDomains = tables.AppendUnique(rn.ts.EPGToDomains, tables.EPGToDomain{
			Tenant:     req.Tenant,
			AppProfile: req.AppProfile,
			EPG:        req.EPG,
			Domain:     name,
			DomainType: string(kind),
		})
		rn.ts.Domains = tables.AppendUnique(rn.ts.Domains, tables.Domain{
			Domain:     name,
			DomainType: string(kind),
		})
	}

	if bdName != "" {
		rn.resolveBridgeDomain(req.Tenant, bdName)
	}
}

// findEPG matches on the DN's tenant and application-profile segments plus
// the exact name, so it also works when explicit parent links are absent.
func (rn *run) findEPG(req EPGRequest) *aci.Object {
	for _, epg := range rn.fabric.ObjectsOf(aci.ClassEPG) {
		id := epg.DN()
		if dn.Tenant(id) == req.Tenant && dn.AppProfile(id) == req.AppProfile && epg.Name() == req.EPG {
			return epg
		}
	}
	// Backups with empty DNs: fall back to the tenant subtree.
	if tenant := rn.tenantByName(req.Tenant); tenant != nil {
		for _, epg := range aci.FindClass(tenant, aci.ClassEPG) {
			if epg.Name() == req.EPG && dn.AppProfile(epg.DN()) == req.AppProfile {
				return epg
			}
		}
	}
	return nil
}

// resolveBridgeDomain records the bridge domain backing an endpoint group,
// resolved through the tenant subtree so empty DNs are tolerated.
func (rn *run) resolveBridgeDomain(tenantName, bdName string) {
	tenant := rn.tenantByName(tenantName)
	if tenant == nil {
		klog.Warningf("tenant not found for bridge domain %s/%s", tenantName, bdName)
		return
	}
	for _, bd := range tenant.ChildrenOf(aci.ClassBD) {
		if bd.Name() != bdName {
			continue
		}
		vrf := ""
		if rel := bd.FirstChild(aci.ClassRsCtx); rel != nil {
			vrf = rel.Attr("tnFvCtxName")
		}
		enableRouting := "true"
		if bd.Attr("unicastRoute") == "no" {
			enableRouting = "false"
		}
		arpFlooding := "false"
		if bd.Attr("arpFlood") == "yes" {
			arpFlooding = "true"
		}
		l2Unknown := bd.Attr("unkMacUcastAct")
		if l2Unknown == "" {
			l2Unknown = "proxy"
		}
		rn.ts.BridgeDomains = tables.AppendUnique(rn.ts.BridgeDomains, tables.BridgeDomain{
			Tenant:           tenantName,
			BD:               bdName,
			VRF:              vrf,
			Description:      bd.Attr("descr"),
			EnableRouting:    enableRouting,
			ARPFlooding:      arpFlooding,
			L2UnknownUnicast: l2Unknown,
		})
		rn.foundBDKeys[tenantName+"/"+bdName] = true
		return
	}
	klog.Warningf("bridge domain not found: %s/%s", tenantName, bdName)
}

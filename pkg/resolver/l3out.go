package resolver

import (
	"strings"

	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/aci"
	"github.com/acitools/fabricmig/pkg/dn"
	"github.com/acitools/fabricmig/pkg/tables"
)

// displayDomainType is the label used on floating path rows; the internal
// kind keeps matching the infra relation DNs.
func displayDomainType(kind dn.DomainKind) string {
	if kind == dn.DomainPhysical {
		return "physical"
	}
	return string(kind)
}

// resolveL3Out locates one routed-out construct and walks its node
// profiles, interface topology, external endpoint groups, and route
// control children.
func (rn *run) resolveL3Out(req L3OutRequest) {
	tenant := rn.tenantByName(req.Tenant)
	if tenant == nil {
		klog.Warningf("tenant not found: %s", req.Tenant)
		return
	}
	var l3outObj *aci.Object
	for _, o := range aci.FindClass(tenant, aci.ClassL3Out) {
		if o.Name() == req.L3Out {
			l3outObj = o
			break
		}
	}
	if l3outObj == nil {
		klog.Warningf("L3Out not found: %s/%s", req.Tenant, req.L3Out)
		return
	}

	vrf, domainName := "", ""
	var protocols []string
	for _, child := range l3outObj.Children {
		switch child.Class {
		case aci.ClassL3OutRsEctx:
			vrf = child.Attr("tnFvCtxName")
		case aci.ClassL3OutRsDomAtt:
			if name, kind := dn.Domain(child.Attr("tDn")); kind == dn.DomainL3 {
				domainName = name
			}
		case aci.ClassBGPExtP:
			protocols = appendProtocol(protocols, "bgp")
		case aci.ClassOSPFExtP:
			protocols = appendProtocol(protocols, "ospf")
		case aci.ClassEIGRPExtP:
			protocols = appendProtocol(protocols, "eigrp")
		case aci.ClassDefRouteLeak:
			rn.ts.DefaultRouteLeaks = tables.AppendUnique(rn.ts.DefaultRouteLeaks, tables.DefaultRouteLeakPolicy{
				Tenant:   req.Tenant,
				L3Out:    req.L3Out,
				Always:   attrOr(child, "always", "yes"),
				Criteria: attrOr(child, "criteria", "only"),
				Scope:    attrOr(child, "scope", "l3-out"),
			})
		}
	}

	rn.ts.L3Outs = tables.AppendUnique(rn.ts.L3Outs, tables.L3Out{
		Tenant:       req.Tenant,
		L3Out:        req.L3Out,
		VRF:          vrf,
		Domain:       domainName,
		L3Protocol:   strings.Join(protocols, ","),
		RouteControl: attrOr(l3outObj, "enforceRtctrl", "export"),
		Description:  l3outObj.Attr("descr"),
	})
	if domainName != "" {
		rn.ts.Domains = tables.AppendUnique(rn.ts.Domains, tables.Domain{
			Domain:     domainName,
			DomainType: string(dn.DomainL3),
		})
	}

	for _, np := range aci.FindClass(l3outObj, aci.ClassNodeProfile) {
		rn.resolveNodeProfile(req, np)
	}

	rn.resolveExtEPGs(req, l3outObj)
	if rn.opts.IncludeRouteControl {
		rn.resolveRouteControl(req, l3outObj)
	}
}

func (rn *run) resolveNodeProfile(req L3OutRequest, np *aci.Object) {
	npName := np.Name()
	if npName == "" {
		return
	}
	rn.ts.NodeProfiles = tables.AppendUnique(rn.ts.NodeProfiles, tables.NodeProfile{
		Tenant:      req.Tenant,
		L3Out:       req.L3Out,
		NodeProfile: npName,
		Description: np.Attr("descr"),
	})

	for _, child := range np.Children {
		switch child.Class {
		case aci.ClassRsNodeAtt:
			tDn := child.Attr("tDn")
			nodeID := dn.NodeID(tDn)
			if nodeID == "" {
				continue
			}
			pod := dn.Pod(tDn)
			if pod == "" {
				pod = "1"
			}
			rn.ts.LogicalNodes = tables.AppendUnique(rn.ts.LogicalNodes, tables.LogicalNode{
				Tenant:             req.Tenant,
				L3Out:              req.L3Out,
				NodeProfile:        npName,
				PodID:              pod,
				NodeID:             nodeID,
				RouterID:           child.Attr("rtrId"),
				RouterIDAsLoopback: "no",
			})
		case aci.ClassBGPProtP:
			timers := ""
			if rel := child.FirstChild(aci.ClassRsPeerPfxPol); rel != nil {
				timers = rel.Attr("tnBgpPeerPfxPolName")
			}
			rn.ts.BGPProtocolProfiles = tables.AppendUnique(rn.ts.BGPProtocolProfiles, tables.BGPProtocolProfile{
				Tenant:          req.Tenant,
				L3Out:           req.L3Out,
				NodeProfile:     npName,
				BGPTimersPolicy: timers,
				Description:     child.Attr("descr"),
			})
		case aci.ClassIfProfile:
			rn.resolveIfProfile(req, npName, child)
		}
	}
}

func (rn *run) resolveIfProfile(req L3OutRequest, npName string, ifp *aci.Object) {
	ifpName := ifp.Name()
	if ifpName == "" {
		return
	}
	rn.ts.IfProfiles = tables.AppendUnique(rn.ts.IfProfiles, tables.LogicalInterfaceProfile{
		Tenant:           req.Tenant,
		L3Out:            req.L3Out,
		NodeProfile:      npName,
		InterfaceProfile: ifpName,
		Description:      ifp.Attr("descr"),
	})

	if bfd := ifp.FirstChild(aci.ClassBFDIfProfile); bfd != nil {
		if rel := bfd.FirstChild(aci.ClassRsBfdIfPol); rel != nil && rel.Attr("tnBfdIfPolName") != "" {
			rn.ts.BFDInterfaceProfiles = tables.AppendUnique(rn.ts.BFDInterfaceProfiles, tables.BFDInterfaceProfile{
				Tenant:           req.Tenant,
				L3Out:            req.L3Out,
				NodeProfile:      npName,
				InterfaceProfile: ifpName,
				BFDPolicy:        rel.Attr("tnBfdIfPolName"),
			})
		}
	}

	for _, child := range ifp.Children {
		switch {
		case child.Class == aci.ClassRsPathAtt && !req.Floating:
			rn.resolvePathAttachment(req, npName, ifpName, child)
		case child.Class == aci.ClassVirtualIf && req.Floating:
			rn.resolveVirtualInterface(req, npName, ifpName, child)
		}
	}
}

// resolvePathAttachment handles a standard routed interface attachment and
// its nested address and BGP peer children.
func (rn *run) resolvePathAttachment(req L3OutRequest, npName, ifpName string, att *aci.Object) {
	path := dn.ParsePath(att.Attr("tDn"))
	address := ""
	for _, c := range att.Children {
		switch c.Class {
		case aci.ClassL3OutIP:
			address = c.Attr("addr")
		case aci.ClassBGPPeer:
			peerIP := c.Attr("addr")
			if peerIP == "" {
				continue
			}
			remoteASN, localAS, localASConf := bgpPeerASNs(c)
			rn.ts.BGPPeers = tables.AppendUnique(rn.ts.BGPPeers, tables.BGPPeer{
				Tenant:            req.Tenant,
				L3Out:             req.L3Out,
				NodeProfile:       npName,
				InterfaceProfile:  ifpName,
				PodID:             path.Pod,
				PeerIP:            peerIP,
				RemoteASN:         remoteASN,
				NodeID:            path.Node,
				PathEp:            path.Interface,
				BGPControls:       c.Attr("ctrl"),
				PeerControls:      c.Attr("peerCtrl"),
				AdminState:        c.Attr("adminSt"),
				LocalASNumber:     localAS,
				LocalASNumberConf: localASConf,
			})
		}
	}
	rn.ts.Interfaces = tables.AppendUnique(rn.ts.Interfaces, tables.L3OutInterface{
		Tenant:           req.Tenant,
		L3Out:            req.L3Out,
		NodeProfile:      npName,
		InterfaceProfile: ifpName,
		PodID:            path.Pod,
		NodeID:           path.Node,
		PathEp:           path.Interface,
		InterfaceType:    att.Attr("ifInstT"),
		Encap:            attrOr(att, "encap", "unknown"),
		Mode:             attrOr(att, "mode", "regular"),
		Address:          address,
		MTU:              attrOr(att, "mtu", "inherit"),
	})
}

// resolveVirtualInterface handles a floating virtual interface: its dynamic
// path attachments with per-member paths, secondary addresses, and BGP
// peers bound at the virtual interface level.
func (rn *run) resolveVirtualInterface(req L3OutRequest, npName, ifpName string, vif *aci.Object) {
	anchorNode := dn.NodeID(vif.Attr("nodeDn"))
	encap := attrOr(vif, "encap", "unknown")
	anchorAddr := vif.Attr("addr")

	for _, child := range vif.Children {
		switch child.Class {
		case aci.ClassRsDynPathAtt:
			floatingIP := child.Attr("floatingAddr")
			domName, domKind := dn.Domain(child.Attr("tDn"))
			if domName != "" {
				// The floating domain participates in VLAN pool and
				// AEP resolution like any directly attached domain.
				rn.ts.Domains = tables.AppendUnique(rn.ts.Domains, tables.Domain{
					Domain:     domName,
					DomainType: string(domKind),
				})
			}
			members := child.ChildrenOf(aci.ClassMember)
			for _, m := range members {
				rn.ts.FloatingSVIPaths = tables.AppendUnique(rn.ts.FloatingSVIPaths, tables.FloatingSVIPath{
					Tenant:           req.Tenant,
					L3Out:            req.L3Out,
					NodeProfile:      npName,
					InterfaceProfile: ifpName,
					PodID:            "1",
					NodeID:           m.Attr("node"),
					Encap:            encap,
					AccessEncap:      encap,
					Domain:           domName,
					DomainType:       displayDomainType(domKind),
					FloatingIP:       floatingIP,
				})
			}
			if len(members) == 0 {
				rn.ts.FloatingSVIPaths = tables.AppendUnique(rn.ts.FloatingSVIPaths, tables.FloatingSVIPath{
					Tenant:           req.Tenant,
					L3Out:            req.L3Out,
					NodeProfile:      npName,
					InterfaceProfile: ifpName,
					PodID:            "1",
					NodeID:           anchorNode,
					Encap:            encap,
					AccessEncap:      encap,
					Domain:           domName,
					DomainType:       displayDomainType(domKind),
					FloatingIP:       floatingIP,
				})
			}
			// The anchor row carries the virtual interface's own
			// node and address, not the floating address.
			rn.ts.FloatingSVIs = tables.AppendUnique(rn.ts.FloatingSVIs, tables.FloatingSVI{
				Tenant:           req.Tenant,
				L3Out:            req.L3Out,
				NodeProfile:      npName,
				InterfaceProfile: ifpName,
				PodID:            "1",
				NodeID:           anchorNode,
				Encap:            encap,
				EncapScope:       attrOr(vif, "encapScope", "local"),
				Address:          anchorAddr,
				Mode:             attrOr(vif, "mode", "regular"),
				AutoState:        attrOr(vif, "autostate", "enabled"),
				DSCP:             attrOr(vif, "targetDscp", "unspecified"),
				IPv6DAD:          attrOr(vif, "ipv6Dad", "enabled"),
				MTU:              attrOr(vif, "mtu", "inherit"),
			})
		case aci.ClassL3OutIP:
			if ip := child.Attr("addr"); ip != "" {
				rn.ts.FloatingSVISecondaryIPs = tables.AppendUnique(rn.ts.FloatingSVISecondaryIPs, tables.FloatingSVISecondaryIP{
					Tenant:           req.Tenant,
					L3Out:            req.L3Out,
					NodeProfile:      npName,
					InterfaceProfile: ifpName,
					SecondaryIP:      ip,
					Description:      child.Attr("descr"),
				})
			}
		case aci.ClassBGPPeer:
			peerIP := child.Attr("addr")
			if peerIP == "" {
				continue
			}
			remoteASN, localAS, localASConf := bgpPeerASNs(child)
			rn.ts.FloatingBGPPeers = tables.AppendUnique(rn.ts.FloatingBGPPeers, tables.FloatingBGPPeer{
				Tenant:              req.Tenant,
				L3Out:               req.L3Out,
				NodeProfile:         npName,
				InterfaceProfile:    ifpName,
				PodID:               "1",
				NodeID:              anchorNode,
				VLAN:                dn.VLAN(vif.Attr("encap")),
				PeerIP:              peerIP,
				AdminState:          child.Attr("adminSt"),
				TTL:                 child.Attr("ttl"),
				Weight:              child.Attr("weight"),
				RemoteASN:           remoteASN,
				LocalASNumber:       localAS,
				LocalASNumberConf:   localASConf,
				BGPControls:         child.Attr("ctrl"),
				PeerControls:        child.Attr("peerCtrl"),
				AddressTypeControls: child.Attr("addrTCtrl"),
			})
		}
	}
}

func (rn *run) resolveExtEPGs(req L3OutRequest, l3outObj *aci.Object) {
	for _, extepg := range l3outObj.ChildrenOf(aci.ClassExtEPG) {
		name := extepg.Name()
		if name == "" {
			continue
		}
		importProfile, exportProfile := "", ""
		for _, rel := range extepg.ChildrenOf(aci.ClassRsInstPToProfile) {
			profile := rel.Attr("tnRtctrlProfileName")
			if profile == "" {
				continue
			}
			switch rel.Attr("direction") {
			case "import":
				importProfile = profile
			case "export":
				exportProfile = profile
			}
		}
		rn.ts.ExtEPGs = tables.AppendUnique(rn.ts.ExtEPGs, tables.ExtEPG{
			Tenant:             req.Tenant,
			L3Out:              req.L3Out,
			ExtEPG:             name,
			Description:        extepg.Attr("descr"),
			RouteControlImport: importProfile,
			RouteControlExport: exportProfile,
		})

		for _, child := range extepg.Children {
			switch child.Class {
			case aci.ClassExtSubnet:
				if ip := child.Attr("ip"); ip != "" {
					rn.ts.ExtSubnets = tables.AppendUnique(rn.ts.ExtSubnets, tables.ExtSubnet{
						Tenant:      req.Tenant,
						L3Out:       req.L3Out,
						ExtEPG:      name,
						Network:     ip,
						Scope:       "import-security",
						SubnetName:  child.Name(),
						Description: child.Attr("descr"),
					})
				}
			case aci.ClassRsCons:
				rn.addExtEPGContract(req, name, child.Attr("tnVzBrCPName"), "consumer")
			case aci.ClassRsProv:
				rn.addExtEPGContract(req, name, child.Attr("tnVzBrCPName"), "provider")
			}
		}
	}
}

func (rn *run) addExtEPGContract(req L3OutRequest, extepg, contract, contractType string) {
	if contract == "" {
		return
	}
	rn.ts.ExtEPGToContracts = tables.AppendUnique(rn.ts.ExtEPGToContracts, tables.ExtEPGToContract{
		Tenant:       req.Tenant,
		L3Out:        req.L3Out,
		ExtEPG:       extepg,
		Contract:     contract,
		ContractType: contractType,
	})
}

func bgpPeerASNs(peer *aci.Object) (remoteASN, localAS, localASConf string) {
	for _, c := range peer.Children {
		switch c.Class {
		case aci.ClassBGPAs:
			remoteASN = c.Attr("asn")
		case aci.ClassBGPLocalAsn:
			localAS = c.Attr("localAsn")
			localASConf = c.Attr("asnPropagate")
		}
	}
	return remoteASN, localAS, localASConf
}

func appendProtocol(list []string, proto string) []string {
	for _, p := range list {
		if p == proto {
			return list
		}
	}
	return append(list, proto)
}

func attrOr(o *aci.Object, name, fallback string) string {
	if v := o.Attr(name); v != "" {
		return v
	}
	return fallback
}

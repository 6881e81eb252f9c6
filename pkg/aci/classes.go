package aci

// Class tags used across the extraction pipeline.
const (
	ClassTenant     = "fvTenant"
	ClassAppProfile = "fvAp"
	ClassEPG        = "fvAEPg"
	ClassBD         = "fvBD"
	ClassVRF        = "fvCtx"
	ClassSubnet     = "fvSubnet"

	ClassRsBD       = "fvRsBd"
	ClassRsCtx      = "fvRsCtx"
	ClassRsDomAtt   = "fvRsDomAtt"
	ClassRsBDToOut  = "fvRsBDToOut"
	ClassRsCons     = "fvRsCons"
	ClassRsProv     = "fvRsProv"

	ClassVLANPool   = "fvnsVlanInstP"
	ClassEncapBlock = "fvnsEncapBlk"

	ClassPhysDomain = "physDomP"
	ClassL3Domain   = "l3extDomP"
	ClassVMMDomain  = "vmmDomP"

	ClassAEP             = "infraAttEntityP"
	ClassAccPortGroup    = "infraAccPortGrp"
	ClassAccBundleGroup  = "infraAccBndlGrp"
	ClassAccPortProfile  = "infraAccPortP"
	ClassFexProfile      = "infraFexP"
	ClassHostPortSel     = "infraHPortS"
	ClassPortBlock       = "infraPortBlk"
	ClassRsAccBaseGrp    = "infraRsAccBaseGrp"
	ClassRsAttEntP       = "infraRsAttEntP"
	ClassRsDomP          = "infraRsDomP"
	ClassRsFuncToEpg     = "infraRsFuncToEpg"
	ClassInfraRsVlanNs   = "infraRsVlanNs"
	ClassRsHIfPol        = "infraRsHIfPol"
	ClassRsCdpIfPol      = "infraRsCdpIfPol"
	ClassRsLldpIfPol     = "infraRsLldpIfPol"
	ClassRsMcpIfPol      = "infraRsMcpIfPol"
	ClassRsStpIfPol      = "infraRsStpIfPol"
	ClassRsLacpPol       = "infraRsLacpPol"
	ClassRsL2IfPol       = "infraRsL2IfPol"

	ClassL3Out            = "l3extOut"
	ClassL3OutRsEctx      = "l3extRsEctx"
	ClassL3OutRsDomAtt    = "l3extRsL3DomAtt"
	ClassL3extRsVlanNs    = "l3extRsVlanNs"
	ClassNodeProfile      = "l3extLNodeP"
	ClassRsNodeAtt        = "l3extRsNodeL3OutAtt"
	ClassIfProfile        = "l3extLIfP"
	ClassRsPathAtt        = "l3extRsPathL3OutAtt"
	ClassVirtualIf        = "l3extVirtualLIfP"
	ClassRsDynPathAtt     = "l3extRsDynPathAtt"
	ClassMember           = "l3extMember"
	ClassL3OutIP          = "l3extIp"
	ClassExtEPG           = "l3extInstP"
	ClassExtSubnet        = "l3extSubnet"
	ClassRsInstPToProfile = "l3extRsInstPToProfile"
	ClassDefRouteLeak     = "l3extDefaultRouteLeakP"

	ClassBGPExtP       = "bgpExtP"
	ClassOSPFExtP      = "ospfExtP"
	ClassEIGRPExtP     = "eigrpExtP"
	ClassBGPPeer       = "bgpPeerP"
	ClassBGPAs         = "bgpAsP"
	ClassBGPLocalAsn   = "bgpLocalAsnP"
	ClassBGPProtP      = "bgpProtP"
	ClassRsPeerPfxPol  = "bgpRsPeerPfxPol"
	ClassBFDIfProfile  = "bfdIfP"
	ClassRsBfdIfPol    = "bfdRsIfPol"

	ClassRouteControlProfile = "rtctrlProfile"
	ClassMatchRule           = "rtctrlSubjP"
	ClassRouteControlContext = "rtctrlCtxP"
	ClassRsCtxToSubj         = "rtctrlRsCtxPToSubjP"
	ClassMatchRouteDest      = "rtctrlMatchRtDest"
)

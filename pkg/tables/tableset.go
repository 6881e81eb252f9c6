package tables

// Table names double as CSV basenames and workbook sheet labels.
const (
	TableVLANPool               = "vlan_pool"
	TableEncapBlock             = "vlan_pool_encap_block"
	TableDomain                 = "domain"
	TableDomainToPool           = "domain_to_vlan_pool"
	TableAEP                    = "aep"
	TableAEPToDomain            = "aep_to_domain"
	TableBD                     = "bd"
	TableBDSubnet               = "bd_subnet"
	TableBDToL3Out              = "bd_to_l3out"
	TableEPG                    = "epg"
	TableEPGToDomain            = "epg_to_domain"
	TableAEPToEPG               = "aep_to_epg"
	TablePolicyGroup            = "interface_policy_leaf_policy_gr"
	TableInterfaceProfile       = "interface_policy_leaf_profile"
	TableAccessPortSelector     = "access_port_to_int_policy_leaf"
	TableL3Out                  = "l3out"
	TableNodeProfile            = "l3out_logical_node_profile"
	TableLogicalNode            = "l3out_logical_node"
	TableIfProfile              = "l3out_logical_interface_profile"
	TableL3OutInterface         = "l3out_interface"
	TableBGPProtocolProfile     = "l3out_bgp_protocol_profile"
	TableBGPPeer                = "l3out_bgp_peer"
	TableExtEPG                 = "l3out_extepg"
	TableExtSubnet              = "l3out_extsubnet"
	TableExtEPGToContract       = "l3out_extepg_to_contract"
	TableFloatingSVI            = "l3out_floating_svi"
	TableFloatingSVIPath        = "l3out_floating_svi_path"
	TableFloatingSVISecondaryIP = "l3out_floating_svi_secondary_ip"
	TableFloatingBGPPeer        = "l3out_bgp_peer_floating"
	TableBFDInterfaceProfile    = "l3out_bfd_interface_profile"
	TableDefaultRouteLeak       = "l3out_default_route_leak_policy"
	TableMatchRule              = "match_rule"
	TableMatchRouteDestination  = "match_route_destination"
	TableRouteControlProfile    = "route_control_profile"
	TableRouteControlContext    = "route_control_context"
)

// TableSet accumulates every record kind of one extraction run. It is built
// once per run, owned by exactly one resolver invocation, and never mutated
// after projection.
type TableSet struct {
	VLANPools               []VLANPool
	EncapBlocks             []EncapBlock
	Domains                 []Domain
	DomainToPools           []DomainToPool
	AEPs                    []AEP
	AEPToDomains            []AEPToDomain
	BridgeDomains           []BridgeDomain
	BDSubnets               []BDSubnet
	BDToL3Outs              []BDToL3Out
	EPGs                    []EPG
	EPGToDomains            []EPGToDomain
	AEPToEPGs               []AEPToEPG
	PolicyGroups            []InterfacePolicyGroup
	InterfaceProfiles       []InterfaceProfile
	AccessPortSelectors     []AccessPortSelector
	L3Outs                  []L3Out
	NodeProfiles            []NodeProfile
	LogicalNodes            []LogicalNode
	IfProfiles              []LogicalInterfaceProfile
	Interfaces              []L3OutInterface
	BGPProtocolProfiles     []BGPProtocolProfile
	BGPPeers                []BGPPeer
	ExtEPGs                 []ExtEPG
	ExtSubnets              []ExtSubnet
	ExtEPGToContracts       []ExtEPGToContract
	FloatingSVIs            []FloatingSVI
	FloatingSVIPaths        []FloatingSVIPath
	FloatingSVISecondaryIPs []FloatingSVISecondaryIP
	FloatingBGPPeers        []FloatingBGPPeer
	BFDInterfaceProfiles    []BFDInterfaceProfile
	DefaultRouteLeaks       []DefaultRouteLeakPolicy
	MatchRules              []MatchRule
	MatchRouteDestinations  []MatchRouteDestination
	RouteControlProfiles    []RouteControlProfile
	RouteControlContexts    []RouteControlContext
}

// New returns an empty table set.
func New() *TableSet { return &TableSet{} }

// AppendUnique appends rec unless a structurally equal record is already
// present. Repeated discovery paths must not produce duplicate rows.
func AppendUnique[T comparable](list []T, rec T) []T {
	for _, r := range list {
		if r == rec {
			return list
		}
	}
	return append(list, rec)
}

// AddVLANPool deduplicates by pool name: the pool row is identified by the
// pool itself, not by the path it was discovered through.
func (ts *TableSet) AddVLANPool(rec VLANPool) {
	for _, p := range ts.VLANPools {
		if p.Pool == rec.Pool {
			return
		}
	}
	ts.VLANPools = append(ts.VLANPools, rec)
}

// AddAEP deduplicates by profile name.
func (ts *TableSet) AddAEP(rec AEP) {
	for _, a := range ts.AEPs {
		if a.AEP == rec.AEP {
			return
		}
	}
	ts.AEPs = append(ts.AEPs, rec)
}

// AddPolicyGroup deduplicates by (policy group, AEP).
func (ts *TableSet) AddPolicyGroup(rec InterfacePolicyGroup) {
	for _, p := range ts.PolicyGroups {
		if p.PolicyGroup == rec.PolicyGroup && p.AEP == rec.AEP {
			return
		}
	}
	ts.PolicyGroups = append(ts.PolicyGroups, rec)
}

// AddInterfaceProfile deduplicates by profile name.
func (ts *TableSet) AddInterfaceProfile(rec InterfaceProfile) {
	for _, p := range ts.InterfaceProfiles {
		if p.InterfaceProfile == rec.InterfaceProfile {
			return
		}
	}
	ts.InterfaceProfiles = append(ts.InterfaceProfiles, rec)
}

// AddMatchRule deduplicates by (tenant, rule name).
func (ts *TableSet) AddMatchRule(rec MatchRule) {
	for _, r := range ts.MatchRules {
		if r.Tenant == rec.Tenant && r.MatchRule == rec.MatchRule {
			return
		}
	}
	ts.MatchRules = append(ts.MatchRules, rec)
}

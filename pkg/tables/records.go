package tables

// Record types, one per output table. The col tag declares the fixed
// column schema and its order; records carry no surrogate keys, so
// deduplication works on structural equality (or the keyed subset noted on
// the Add helper for the higher-volume kinds).

type VLANPool struct {
	Pool        string `col:"pool"`
	AllocMode   string `col:"pool_allocation_mode"`
	Description string `col:"description"`
}

type EncapBlock struct {
	Pool        string `col:"pool"`
	AllocMode   string `col:"pool_allocation_mode"`
	BlockStart  string `col:"block_start"`
	BlockEnd    string `col:"block_end"`
	Description string `col:"description"`
}

type Domain struct {
	Domain      string `col:"domain"`
	Description string `col:"description"`
	DomainType  string `col:"domain_type"`
}

type DomainToPool struct {
	Domain     string `col:"domain"`
	DomainType string `col:"domain_type"`
	VLANPool   string `col:"vlan_pool"`
	AllocMode  string `col:"pool_allocation_mode"`
}

type AEP struct {
	AEP         string `col:"aep"`
	Description string `col:"description"`
}

type AEPToDomain struct {
	AEP        string `col:"aep"`
	Domain     string `col:"domain"`
	DomainType string `col:"domain_type"`
}

type BridgeDomain struct {
	Tenant           string `col:"tenant"`
	BD               string `col:"bd"`
	VRF              string `col:"vrf"`
	Description      string `col:"description"`
	EnableRouting    string `col:"enable_routing"`
	ARPFlooding      string `col:"arp_flooding"`
	L2UnknownUnicast string `col:"l2_unknown_unicast"`
}

type BDSubnet struct {
	Tenant      string `col:"tenant"`
	BD          string `col:"bd"`
	Description string `col:"description"`
	Gateway     string `col:"gateway"`
	Mask        string `col:"mask"`
	Scope       string `col:"scope"`
}

type BDToL3Out struct {
	Tenant       string `col:"tenant"`
	BridgeDomain string `col:"bridge_domain"`
	L3Out        string `col:"l3out"`
}

type EPG struct {
	Tenant      string `col:"tenant"`
	AppProfile  string `col:"ap"`
	EPG         string `col:"epg"`
	BD          string `col:"bd"`
	Description string `col:"description"`
}

type EPGToDomain struct {
	Tenant     string `col:"tenant"`
	AppProfile string `col:"ap"`
	EPG        string `col:"epg"`
	Domain     string `col:"domain"`
	DomainType string `col:"domain_type"`
}

type AEPToEPG struct {
	AEP           string `col:"aep"`
	Tenant        string `col:"tenant"`
	AppProfile    string `col:"ap"`
	EPG           string `col:"epg"`
	Encap         string `col:"encap"`
	InterfaceMode string `col:"interface_mode"`
}

type InterfacePolicyGroup struct {
	PolicyGroup        string `col:"policy_group"`
	AEP                string `col:"aep"`
	LagType            string `col:"lag_type"`
	LinkLevelPolicy    string `col:"link_level_policy"`
	CDPPolicy          string `col:"cdp_policy"`
	LLDPPolicy         string `col:"lldp_policy"`
	MCPPolicy          string `col:"mcp_policy"`
	STPInterfacePolicy string `col:"stp_interface_policy"`
	PortChannelPolicy  string `col:"port_channel_policy"`
	L2InterfacePolicy  string `col:"l2_interface_policy"`
	Description        string `col:"description"`
}

type InterfaceProfile struct {
	InterfaceProfile string `col:"interface_profile"`
	Description      string `col:"description"`
	Type             string `col:"type"`
}

type AccessPortSelector struct {
	InterfaceProfile string `col:"interface_profile"`
	Selector         string `col:"access_port_selector"`
	PortBlock        string `col:"port_blk"`
	FromPort         string `col:"from_port"`
	ToPort           string `col:"to_port"`
	PolicyGroup      string `col:"policy_group"`
	Description      string `col:"description"`
}

type L3Out struct {
	Tenant       string `col:"tenant"`
	L3Out        string `col:"l3out"`
	VRF          string `col:"vrf"`
	Domain       string `col:"domain"`
	L3Protocol   string `col:"l3protocol"`
	RouteControl string `col:"route_control"`
	Description  string `col:"description"`
}

type NodeProfile struct {
	Tenant      string `col:"tenant"`
	L3Out       string `col:"l3out"`
	NodeProfile string `col:"node_profile"`
	Description string `col:"description"`
}

type LogicalNode struct {
	Tenant             string `col:"tenant"`
	L3Out              string `col:"l3out"`
	NodeProfile        string `col:"node_profile"`
	PodID              string `col:"pod_id"`
	NodeID             string `col:"node_id"`
	RouterID           string `col:"router_id"`
	RouterIDAsLoopback string `col:"router_id_as_loopback"`
	LoopbackAddress    string `col:"loopback_address"`
}

type LogicalInterfaceProfile struct {
	Tenant           string `col:"tenant"`
	L3Out            string `col:"l3out"`
	NodeProfile      string `col:"node_profile"`
	InterfaceProfile string `col:"interface_profile"`
	Description      string `col:"description"`
}

type L3OutInterface struct {
	Tenant           string `col:"tenant"`
	L3Out            string `col:"l3out"`
	NodeProfile      string `col:"node_profile"`
	InterfaceProfile string `col:"interface_profile"`
	PodID            string `col:"pod_id"`
	NodeID           string `col:"node_id"`
	PathEp           string `col:"path_ep"`
	InterfaceType    string `col:"interface_type"`
	Encap            string `col:"encap"`
	Mode             string `col:"mode"`
	Address          string `col:"address"`
	MTU              string `col:"mtu"`
}

type BGPProtocolProfile struct {
	Tenant          string `col:"tenant"`
	L3Out           string `col:"l3out"`
	NodeProfile     string `col:"node_profile"`
	BGPTimersPolicy string `col:"bgp_timers_policy"`
	Description     string `col:"description"`
}

type BGPPeer struct {
	Tenant            string `col:"tenant"`
	L3Out             string `col:"l3out"`
	NodeProfile       string `col:"node_profile"`
	InterfaceProfile  string `col:"interface_profile"`
	PodID             string `col:"pod_id"`
	PeerIP            string `col:"peer_ip"`
	RemoteASN         string `col:"remote_asn"`
	NodeID            string `col:"node_id"`
	PathEp            string `col:"path_ep"`
	BGPControls       string `col:"bgp_controls"`
	PeerControls      string `col:"peer_controls"`
	AdminState        string `col:"admin_state"`
	LocalASNumber     string `col:"local_as_number"`
	LocalASNumberConf string `col:"local_as_number_config"`
}

type ExtEPG struct {
	Tenant             string `col:"tenant"`
	L3Out              string `col:"l3out"`
	ExtEPG             string `col:"extepg"`
	Description        string `col:"description"`
	RouteControlImport string `col:"route_control_profile_import"`
	RouteControlExport string `col:"route_control_profile_export"`
}

type ExtSubnet struct {
	Tenant      string `col:"tenant"`
	L3Out       string `col:"l3out"`
	ExtEPG      string `col:"extepg"`
	Network     string `col:"network"`
	Scope       string `col:"scope"`
	SubnetName  string `col:"subnet_name"`
	Description string `col:"description"`
}

type ExtEPGToContract struct {
	Tenant       string `col:"tenant"`
	L3Out        string `col:"l3out"`
	ExtEPG       string `col:"extepg"`
	Contract     string `col:"contract"`
	ContractType string `col:"contract_type"`
}

type FloatingSVI struct {
	Tenant           string `col:"tenant"`
	L3Out            string `col:"l3out"`
	NodeProfile      string `col:"node_profile"`
	InterfaceProfile string `col:"interface_profile"`
	PodID            string `col:"pod_id"`
	NodeID           string `col:"node_id"`
	Encap            string `col:"encap"`
	EncapScope       string `col:"encap_scope"`
	Address          string `col:"address"`
	Mode             string `col:"mode"`
	AutoState        string `col:"auto_state"`
	DSCP             string `col:"dscp"`
	IPv6DAD          string `col:"ipv6_dad"`
	MTU              string `col:"mtu"`
}

type FloatingSVIPath struct {
	Tenant           string `col:"tenant"`
	L3Out            string `col:"l3out"`
	NodeProfile      string `col:"node_profile"`
	InterfaceProfile string `col:"interface_profile"`
	PodID            string `col:"pod_id"`
	NodeID           string `col:"node_id"`
	Encap            string `col:"encap"`
	AccessEncap      string `col:"access_encap"`
	Domain           string `col:"domain"`
	DomainType       string `col:"domain_type"`
	FloatingIP       string `col:"floating_ip"`
}

type FloatingSVISecondaryIP struct {
	Tenant           string `col:"tenant"`
	L3Out            string `col:"l3out"`
	NodeProfile      string `col:"node_profile"`
	InterfaceProfile string `col:"interface_profile"`
	PodID            string `col:"pod_id"`
	NodeID           string `col:"node_id"`
	SecondaryIP      string `col:"secondary_ip"`
	Encap            string `col:"encap"`
	Description      string `col:"description"`
}

type FloatingBGPPeer struct {
	Tenant              string `col:"tenant"`
	L3Out               string `col:"l3out"`
	NodeProfile         string `col:"node_profile"`
	InterfaceProfile    string `col:"interface_profile"`
	PodID               string `col:"pod_id"`
	NodeID              string `col:"node_id"`
	VLAN                string `col:"vlan"`
	PeerIP              string `col:"peer_ip"`
	AdminState          string `col:"admin_state"`
	TTL                 string `col:"ttl"`
	Weight              string `col:"weight"`
	RemoteASN           string `col:"remote_asn"`
	LocalASNumber       string `col:"local_as_number"`
	LocalASNumberConf   string `col:"local_as_number_config"`
	BGPControls         string `col:"bgp_controls"`
	PeerControls        string `col:"peer_controls"`
	AddressTypeControls string `col:"address_type_controls"`
}

type BFDInterfaceProfile struct {
	Tenant           string `col:"tenant"`
	L3Out            string `col:"l3out"`
	NodeProfile      string `col:"node_profile"`
	InterfaceProfile string `col:"interface_profile"`
	BFDPolicy        string `col:"bfd_interface_policy"`
}

type DefaultRouteLeakPolicy struct {
	Tenant   string `col:"tenant"`
	L3Out    string `col:"l3out"`
	Always   string `col:"always"`
	Criteria string `col:"criteria"`
	Scope    string `col:"scope"`
}

type MatchRule struct {
	Tenant      string `col:"tenant"`
	MatchRule   string `col:"match_rule"`
	Description string `col:"description"`
}

type MatchRouteDestination struct {
	Tenant    string `col:"tenant"`
	MatchRule string `col:"match_rule"`
	IP        string `col:"ip"`
}

type RouteControlProfile struct {
	Tenant  string `col:"tenant"`
	L3Out   string `col:"l3out"`
	Profile string `col:"route_control_profile"`
}

type RouteControlContext struct {
	Tenant    string `col:"tenant"`
	L3Out     string `col:"l3out"`
	Profile   string `col:"route_control_profile"`
	Context   string `col:"route_control_context"`
	MatchRule string `col:"match_rule"`
}

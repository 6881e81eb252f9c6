package rewrite

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/acitools/fabricmig/pkg/common"
)

// scalar accepts any YAML scalar as trimmed text, so unquoted numeric
// sources (node ids, AS numbers) decode the same as quoted ones.
type scalar string

func (s *scalar) UnmarshalYAML(value *yaml.Node) error {
	*s = scalar(strings.TrimSpace(value.Value))
	return nil
}

// mappingEntry is one old→new pair of a mapping section. Extra keys such
// as the generated context hints are ignored.
type mappingEntry struct {
	Source      scalar `yaml:"source"`
	Destination scalar `yaml:"destination"`
}

type fileConfig struct {
	Tenant              []mappingEntry `yaml:"tenant_mapping"`
	VRF                 []mappingEntry `yaml:"vrf_mapping"`
	AppProfile          []mappingEntry `yaml:"ap_mapping"`
	L3Out               []mappingEntry `yaml:"l3out_mapping"`
	NodeID              []mappingEntry `yaml:"node_id_mapping"`
	NodeProfile         []mappingEntry `yaml:"node_profile_mapping"`
	InterfaceProfile    []mappingEntry `yaml:"interface_profile_mapping"`
	PathEp              []mappingEntry `yaml:"path_ep_mapping"`
	LocalAS             []mappingEntry `yaml:"local_as_mapping"`
	MatchRule           []mappingEntry `yaml:"match_rule_mapping"`
	RouteControlProfile []mappingEntry `yaml:"route_control_profile_mapping"`
	RouteControlContext []mappingEntry `yaml:"route_control_context_mapping"`
	Options             struct {
		DisableBDRouting bool `yaml:"disable_bd_routing"`
	} `yaml:"options"`
}

// LoadConfig reads a declarative mapping configuration. Entries with an
// empty source or destination are dropped rather than treated as errors,
// matching the hand-edited-template workflow.
func LoadConfig(path string) (Mappings, Options, error) {
	data, err := common.ReadFile(path)
	if err != nil {
		return Mappings{}, Options{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Mappings{}, Options{}, errors.Wrapf(err, "parsing mapping config %s", path)
	}
	m := Mappings{
		Tenant:              toMap(fc.Tenant),
		VRF:                 toMap(fc.VRF),
		AppProfile:          toMap(fc.AppProfile),
		L3Out:               toMap(fc.L3Out),
		NodeID:              toMap(fc.NodeID),
		NodeProfile:         toMap(fc.NodeProfile),
		InterfaceProfile:    toMap(fc.InterfaceProfile),
		PathEp:              toMap(fc.PathEp),
		LocalAS:             toMap(fc.LocalAS),
		MatchRule:           toMap(fc.MatchRule),
		RouteControlProfile: toMap(fc.RouteControlProfile),
		RouteControlContext: toMap(fc.RouteControlContext),
	}
	return m, Options{DisableBDRouting: fc.Options.DisableBDRouting}, nil
}

func toMap(entries []mappingEntry) map[string]string {
	m := map[string]string{}
	for _, e := range entries {
		src, dest := string(e.Source), string(e.Destination)
		if src != "" && dest != "" {
			m[src] = dest
		}
	}
	return m
}

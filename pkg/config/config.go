// Package config loads the extraction request list. The list is a YAML
// multi-document stream: each document selects either the endpoint groups
// of one application profile or one routed-out construct.
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/acitools/fabricmig/pkg/common"
	"github.com/acitools/fabricmig/pkg/resolver"
)

// requestDoc is the union of both document shapes. A document naming a
// routed-out construct is a routed-out request; anything else is an
// endpoint-group request.
type requestDoc struct {
	Tenant     string     `yaml:"tenant"`
	AppProfile string     `yaml:"ap"`
	EPGs       []string   `yaml:"epgs"`
	L3Out      string     `yaml:"l3out"`
	Floating   yaml.Node  `yaml:"floating"`
}

// Load reads an extraction request list from a file.
func Load(path string) (resolver.RequestList, error) {
	data, err := common.ReadFile(path)
	if err != nil {
		return resolver.RequestList{}, errors.Wrapf(err, "reading extraction list %s", path)
	}
	return Parse(data)
}

// Parse decodes the multi-document stream. Empty documents are skipped;
// documents missing their identifying fields are skipped too, matching the
// permissive hand-edited-list workflow.
func Parse(data []byte) (resolver.RequestList, error) {
	var list resolver.RequestList
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc requestDoc
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return resolver.RequestList{}, errors.Wrap(err, "parsing extraction list")
		}
		if doc.L3Out != "" {
			if doc.Tenant == "" {
				continue
			}
			floating := false
			if doc.Floating.Kind != 0 {
				floating = truthy(doc.Floating.Value)
			}
			list.L3Outs = append(list.L3Outs, resolver.L3OutRequest{
				Tenant:   doc.Tenant,
				L3Out:    doc.L3Out,
				Floating: floating,
			})
			continue
		}
		for _, epg := range doc.EPGs {
			if doc.Tenant == "" || epg == "" {
				continue
			}
			list.EPGs = append(list.EPGs, resolver.EPGRequest{
				Tenant:     doc.Tenant,
				AppProfile: doc.AppProfile,
				EPG:        epg,
			})
		}
	}
	return list, nil
}

// truthy normalizes the floating flag: booleans decode to "true"/"false"
// node values, and the string forms yes/true/1 are accepted as well.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

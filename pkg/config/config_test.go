package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acitools/fabricmig/pkg/resolver"
)

const requestYAML = `tenant: T1
ap: AP1
epgs:
  - EPG1
  - EPG2
---
tenant: T1
l3out: OUT-A
floating: false
---
tenant: T1
l3out: OUT-F
floating: "yes"
---
tenant: T1
l3out: OUT-C
---
# empty document below
---
l3out: MISSING-TENANT
floating: true
`

func TestParse(t *testing.T) {
	list, err := Parse([]byte(requestYAML))
	require.NoError(t, err)

	assert.Equal(t, []resolver.EPGRequest{
		{Tenant: "T1", AppProfile: "AP1", EPG: "EPG1"},
		{Tenant: "T1", AppProfile: "AP1", EPG: "EPG2"},
	}, list.EPGs)

	// The document without a tenant is dropped.
	assert.Equal(t, []resolver.L3OutRequest{
		{Tenant: "T1", L3Out: "OUT-A", Floating: false},
		{Tenant: "T1", L3Out: "OUT-F", Floating: true},
		{Tenant: "T1", L3Out: "OUT-C", Floating: false},
	}, list.L3Outs)
	assert.False(t, list.Empty())
}

func TestParseFloatingForms(t *testing.T) {
	tests := []struct {
		value string
		exp   bool
	}{
		{value: "true", exp: true},
		{value: `"true"`, exp: true},
		{value: `"yes"`, exp: true},
		{value: `"1"`, exp: true},
		{value: "false", exp: false},
		{value: `"no"`, exp: false},
		{value: `"anything"`, exp: false},
	}
	for _, tcase := range tests {
		doc := "tenant: T1\nl3out: OUT-A\nfloating: " + tcase.value + "\n"
		list, err := Parse([]byte(doc))
		require.NoErrorf(t, err, "[%s]", tcase.value)
		require.Lenf(t, list.L3Outs, 1, "[%s]", tcase.value)
		assert.Equalf(t, tcase.exp, list.L3Outs[0].Floating, "[%s]", tcase.value)
	}
}

func TestParseEmptyAndInvalid(t *testing.T) {
	list, err := Parse(nil)
	require.NoError(t, err)
	assert.True(t, list.Empty())

	_, err = Parse([]byte("tenant: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(requestYAML), 0o644))
	list, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, list.EPGs, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

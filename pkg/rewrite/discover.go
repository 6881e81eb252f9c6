package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/acitools/fabricmig/pkg/tables"
)

// Interface-policy sheets reuse the interface_profile column name for
// access-policy objects that the rename pass must not touch, so value
// discovery skips them for that role.
var discoverExcludes = map[string][]string{
	"interface_profile": {tables.TableInterfaceProfile, tables.TableAccessPortSelector},
}

// Values holds the distinct source values found per role, sorted. It seeds
// the identity template a user then edits into a real mapping.
type Values struct {
	byRole map[string][]string
}

// Role returns the discovered values of one role.
func (v Values) Role(name string) []string { return v.byRole[name] }

// Discover scans the tables for every value a mapping role could rewrite.
func Discover(ts []*tables.Table) Values {
	v := Values{byRole: map[string][]string{}}
	for _, role := range roles {
		seen := map[string]bool{}
		for _, t := range ts {
			if role.table != "" && role.table != t.Name {
				continue
			}
			if excluded(discoverExcludes[role.name], t.Name) {
				continue
			}
			for _, col := range role.columns {
				idx := t.Lookup(col)
				if idx < 0 {
					continue
				}
				for _, row := range t.Rows {
					if s := strings.TrimSpace(cellString(row[idx])); s != "" {
						seen[s] = true
					}
				}
			}
		}
		values := make([]string, 0, len(seen))
		for s := range seen {
			values = append(values, s)
		}
		sort.Strings(values)
		v.byRole[role.name] = values
	}
	return v
}

func excluded(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}

// Template renders an editable YAML mapping configuration with identity
// entries for every discovered value. Leaving destination equal to source
// keeps the value unchanged.
func Template(v Values) string {
	var b strings.Builder
	b.WriteString("# Mapping configuration.\n")
	b.WriteString("# Edit the destination fields; destination = source keeps the value.\n\n")
	for _, role := range roles {
		section(&b, role.name+"_mapping", v.Role(role.name))
	}
	b.WriteString("options:\n  disable_bd_routing: false\n")
	return b.String()
}

func section(b *strings.Builder, name string, values []string) {
	fmt.Fprintf(b, "%s:\n", name)
	if len(values) == 0 {
		b.WriteString("  []\n\n")
		return
	}
	for _, val := range values {
		fmt.Fprintf(b, "  - source: %q\n    destination: %q\n", val, val)
	}
	b.WriteString("\n")
}

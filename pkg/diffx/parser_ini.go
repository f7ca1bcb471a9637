// parser_ini.go - INI → Value (spec.md §4.7).
//
// gopkg.in/ini.v1 is a named ecosystem dependency: no repo in the example
// pack parses INI, so there is no pack file to ground this against beyond
// the parser contract in spec.md §4.7 itself (DESIGN.md). AllowShadows is
// turned on specifically so duplicate keys within a section can be
// detected and rejected, since ini.v1's default behaviour is silently
// last-value-wins.
package diffx

import (
	"gopkg.in/ini.v1"
)

// ParseINI parses INI content into a Value (spec.md §4.7). Every value is
// a String; sections become nested Mappings; keys outside any section
// live directly on the root Mapping. A key repeated within one section is
// a parse error rather than a silent overwrite.
func ParseINI(content []byte) (Value, error) {
	file, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, content)
	if err != nil {
		return Value{}, newDiffError("parse_ini", "", err)
	}

	root := NewMapping()

	for _, section := range file.Sections() {
		sectionValue, err := iniSectionToValue(section)
		if err != nil {
			return Value{}, err
		}

		if section.Name() == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}

		if section.Name() == ini.DefaultSection {
			for _, k := range sectionValue.Keys {
				root.Set(k, sectionValue.Map[k])
			}
			continue
		}

		root.Set(section.Name(), sectionValue)
	}

	return root, nil
}

func iniSectionToValue(section *ini.Section) (Value, error) {
	m := NewMapping()

	for _, key := range section.Keys() {
		if len(key.ValueWithShadows()) > 1 {
			return Value{}, newConfigError("parse_ini", "duplicate key %q in section %q", key.Name(), section.Name())
		}
		m.Set(key.Name(), NewString(key.Value()))
	}

	return m, nil
}

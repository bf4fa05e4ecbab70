package recipe

import "sort"

// A Matrix describes the build-variant space of a recipe: the platform
// settings it is built for crossed with the values of its options.
type Matrix struct {
	Settings map[string][]string // e.g. "os": {"baremetal"}, "arch": {"cortex-m4", ...}
	Options  map[string][]string // e.g. "use_picolibc": {"on", "off"}
}

// cartesian builds the cross product of a keyed value map. Keys are walked
// in sorted order and values of one combination are joined with "-".
func cartesian(kvs map[string][]string) []string {
	if len(kvs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	combos := append([]string(nil), kvs[keys[0]]...)
	for _, k := range keys[1:] {
		next := make([]string, 0, len(combos)*len(kvs[k]))
		for _, prefix := range combos {
			for _, v := range kvs[k] {
				next = append(next, prefix+"-"+v)
			}
		}
		combos = next
	}
	return combos
}

// Combinations returns every settings × options combination. Setting and
// option parts are separated with "|"; a matrix with only one side present
// returns that side alone.
func (m *Matrix) Combinations() []string {
	settings := cartesian(m.Settings)
	options := cartesian(m.Options)

	if len(settings) == 0 {
		return options
	}
	if len(options) == 0 {
		return settings
	}

	combos := make([]string, 0, len(settings)*len(options))
	for _, s := range settings {
		for _, o := range options {
			combos = append(combos, s+"|"+o)
		}
	}
	return combos
}

// CombinationCount returns the number of combinations without building them.
func (m *Matrix) CombinationCount() int {
	count := func(kvs map[string][]string) int {
		if len(kvs) == 0 {
			return 0
		}
		n := 1
		for _, vs := range kvs {
			n *= len(vs)
		}
		return n
	}

	s, o := count(m.Settings), count(m.Options)
	if s == 0 {
		return o
	}
	if o == 0 {
		return s
	}
	return s * o
}

// VariantMatrix builds the variant matrix of a recipe: its supported
// architectures crossed with on/off values for each declared option.
func VariantMatrix(r *Recipe, os string) *Matrix {
	m := &Matrix{
		Settings: map[string][]string{},
		Options:  map[string][]string{},
	}
	if os != "" {
		m.Settings["os"] = []string{os}
	}
	if len(r.Arches) > 0 {
		m.Settings["arch"] = append([]string(nil), r.Arches...)
	}
	for _, name := range r.Options.Names() {
		m.Options[name] = []string{name + "=on", name + "=off"}
	}
	return m
}

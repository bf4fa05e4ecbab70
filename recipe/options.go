package recipe

import "sort"

// Options maps option names to boolean values.
type Options map[string]bool

// Clone returns an independent copy of the option set.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Merge returns a copy of o with values from over applied on top. Keys in
// over that o does not declare are carried through untouched.
func (o Options) Merge(over Options) Options {
	c := o.Clone()
	for k, v := range over {
		c[k] = v
	}
	return c
}

// Without returns a copy of o with the given keys removed.
func (o Options) Without(keys ...string) Options {
	c := o.Clone()
	for _, k := range keys {
		delete(c, k)
	}
	return c
}

// Names returns the option names in sorted order.
func (o Options) Names() []string {
	names := make([]string, 0, len(o))
	for k := range o {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

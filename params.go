package mimetype

// Parameters holds the parameters of a media type as an ordered
// collection of name/value pairs. Names are unique and stored
// lower-cased; insertion order is preserved and is significant when the
// media type is serialized. Values keep their original case.
//
// A Parameters is read-only from outside this package. To change the
// parameters of a MimeType, use Modify() with the Set and Delete
// modifiers, which produce a new MimeType rather than changing one in
// place.
type Parameters struct {
	names  []string
	values map[string]string
}

// Len returns the number of parameters.
func (ps *Parameters) Len() int {
	return len(ps.names)
}

// Has reports whether a parameter with the given name is present.
func (ps *Parameters) Has(name string) bool {
	_, found := ps.values[name]
	return found
}

// Get returns the value of the named parameter and whether it is
// present. The second return distinguishes an absent parameter from one
// whose value is the empty string, which is a legal value that a quoted
// parameter may carry.
func (ps *Parameters) Get(name string) (string, bool) {
	v, found := ps.values[name]
	return v, found
}

// Names returns the parameter names in insertion order. The returned
// slice is a copy and may be modified freely.
func (ps *Parameters) Names() []string {
	names := make([]string, len(ps.names))
	copy(names, ps.names)
	return names
}

// Map returns the parameters as a plain map, losing their order. The
// returned map is a copy and may be modified freely.
func (ps *Parameters) Map() map[string]string {
	m := make(map[string]string, len(ps.names))
	for k, v := range ps.values {
		m[k] = v
	}
	return m
}

// add appends a parameter. The caller is expected to have checked that
// the name is not already present.
func (ps *Parameters) add(name, value string) {
	if ps.values == nil {
		ps.values = make(map[string]string)
	}
	ps.names = append(ps.names, name)
	ps.values[name] = value
}

// put replaces the value of an existing parameter in place or appends a
// new one.
func (ps *Parameters) put(name, value string) {
	if ps.Has(name) {
		ps.values[name] = value
		return
	}
	ps.add(name, value)
}

// del removes the named parameter, if present.
func (ps *Parameters) del(name string) {
	if !ps.Has(name) {
		return
	}
	delete(ps.values, name)
	for i, n := range ps.names {
		if n == name {
			ps.names = append(ps.names[:i], ps.names[i+1:]...)
			break
		}
	}
}

// clone returns a deep copy.
func (ps *Parameters) clone() Parameters {
	var copied Parameters
	for _, name := range ps.names {
		copied.add(name, ps.values[name])
	}
	return copied
}

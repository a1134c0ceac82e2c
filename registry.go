package docnotes

// Registry is a host documentation store:
// a mapping from (identifier, kind) to live documentation text.
//
// Implementations decide which identifiers they accept.
// Lookup never fails;
// an identifier without documentation simply reports ok == false.
// Set may reject identifiers the store does not know about,
// and its error is surfaced untranslated by everything in this package.
type Registry interface {
	// Lookup returns the live documentation text for the identifier,
	// and whether any text is stored for it.
	Lookup(name string, kind Kind) (doc string, ok bool)

	// Set replaces the live documentation text for the identifier.
	Set(name string, kind Kind, doc string) error
}

// docKey identifies a single documentation slot in a registry.
type docKey struct {
	name string
	kind Kind
}

// MapRegistry is an in-memory [Registry] backed by a map.
// It accepts any identifier.
//
// The zero value is empty and ready to use.
type MapRegistry struct {
	docs map[docKey]string
}

var _ Registry = (*MapRegistry)(nil)

// Lookup returns the documentation text stored for the identifier, if any.
func (r *MapRegistry) Lookup(name string, kind Kind) (string, bool) {
	doc, ok := r.docs[docKey{name, kind}]
	return doc, ok
}

// Set stores documentation text for the identifier,
// replacing any prior text. It never fails.
func (r *MapRegistry) Set(name string, kind Kind, doc string) error {
	if r.docs == nil {
		r.docs = make(map[docKey]string)
	}
	r.docs[docKey{name, kind}] = doc
	return nil
}

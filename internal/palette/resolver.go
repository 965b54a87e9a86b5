package palette

// Origin records which path produced a palette.
type Origin int

const (
	// OriginCatalog marks palettes served from the curated table.
	OriginCatalog Origin = iota
	// OriginSynthesized marks palettes derived from the keyword hash.
	OriginSynthesized
)

func (o Origin) String() string {
	if o == OriginCatalog {
		return "catalog"
	}
	return "generated"
}

// Resolver maps keywords to palettes: catalog entries first, synthesis for
// everything else. A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	catalog *Catalog
}

// NewResolver returns a resolver backed by the given catalog.
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve maps any keyword to a palette. Curated entries take precedence for
// their exact case-folded keys; everything else is synthesized from the
// keyword as supplied, so the description keeps the caller's spelling. The
// function is total: every string, including "", yields a valid palette.
func (r *Resolver) Resolve(keyword string) Palette {
	p, _ := r.ResolveOrigin(keyword)
	return p
}

// ResolveOrigin is Resolve plus a marker for which path produced the result.
func (r *Resolver) ResolveOrigin(keyword string) (Palette, Origin) {
	if p, ok := r.catalog.Lookup(keyword); ok {
		return p, OriginCatalog
	}
	return Synthesize(keyword), OriginSynthesized
}

// Catalog exposes the resolver's backing catalog (read-only by construction).
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// defaultResolver backs the package-level Resolve. The builtins map is never
// mutated, so sharing it here is safe.
var defaultResolver = NewResolver(&Catalog{entries: builtins})

// Resolve maps a keyword to a palette using the built-in catalog alone. It is
// the convenience entry point for callers that carry no user configuration.
func Resolve(keyword string) Palette {
	return defaultResolver.Resolve(keyword)
}

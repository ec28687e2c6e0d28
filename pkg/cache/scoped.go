package cache

// ScopedKeyer prefixes every key of an inner Keyer. The server uses it to
// keep its entries apart from other tenants of a shared Redis database:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "geosvg:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(inputHash, styleHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, styleHash, opts)
}

func (k *ScopedKeyer) BoundsKey(inputHash, styleHash string) string {
	return k.prefix + k.inner.BoundsKey(inputHash, styleHash)
}

// Prefix returns the scope prefix.
func (k *ScopedKeyer) Prefix() string { return k.prefix }

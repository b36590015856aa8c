package style

// Scheme identifies the ambient color scheme supplied by the host.
type Scheme int

const (
	SchemeLight Scheme = iota
	SchemeDark
)

// SizeCategory is the ordinal content-size scale supplied by the host.
// Categories above SizeLarge trigger padding and font scaling during
// resolution; the scale is monotonic by construction.
type SizeCategory int

const (
	SizeExtraSmall SizeCategory = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeExtraLarge
	SizeDoubleExtraLarge
	SizeTripleExtraLarge
)

// scaleThreshold is the category above which size scaling kicks in.
const scaleThreshold = SizeLarge

// Context carries the ambient environment for a single resolution pass.
// The host supplies it as plain values on every render; the resolver never
// queries the terminal or OS itself, which keeps resolution testable without
// a UI host. Context is read-only during resolution.
type Context struct {
	Scheme             Scheme
	SizeCategory       SizeCategory
	ReduceMotion       bool
	ReduceTransparency bool
}

// DefaultContext returns the context used when the host supplies nothing:
// light scheme, medium size, no accessibility reductions.
func DefaultContext() Context {
	return Context{
		Scheme:       SchemeLight,
		SizeCategory: SizeMedium,
	}
}

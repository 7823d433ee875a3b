package configvars

// Separator joins the segments of a hierarchical key.
const Separator = ":"

// Variables is a read-only key/value source.
type Variables interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)
}

// Map is a dictionary-backed Variables source. Keys are case-sensitive.
type Map map[string]string

// Get implements Variables.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Func adapts an ordinary function to the Variables interface.
type Func func(key string) (string, bool)

// Get implements Variables.
func (f Func) Get(key string) (string, bool) {
	return f(key)
}

type prefixView struct {
	inner  Variables
	prefix string
}

func (p *prefixView) Get(key string) (string, bool) {
	return p.inner.Get(p.prefix + key)
}

// WithPrefix returns a view of v in which Get(key) resolves v.Get(prefix+key).
// Nothing is copied; later changes visible through v are visible through the view.
func WithPrefix(v Variables, prefix string) Variables {
	return &prefixView{inner: v, prefix: prefix}
}

type layered []Variables

func (l layered) Get(key string) (string, bool) {
	for _, src := range l {
		if v, ok := src.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Builder composes an ordered list of sources into one layered source.
type Builder struct {
	sources []Variables
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a source. Sources added earlier take precedence. Nil sources are ignored.
func (b *Builder) Add(v Variables) *Builder {
	if v != nil {
		b.sources = append(b.sources, v)
	}
	return b
}

// Build returns the layered source. The builder may keep being used afterwards
// without affecting sources it already built.
func (b *Builder) Build() Variables {
	out := make(layered, len(b.sources))
	copy(out, b.sources)
	return out
}

// Merge is shorthand for adding every source to a new Builder in order.
// Get on the result returns the value from the first source that has the key.
func Merge(sources ...Variables) Variables {
	b := NewBuilder()
	for _, s := range sources {
		b.Add(s)
	}
	return b.Build()
}

// Empty is a source with no keys.
var Empty Variables = Map(nil)

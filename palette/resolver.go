package palette

import (
	"sort"
	"strings"
	"sync"
)

// ResolveFunc computes the color for one key. The dark flag is true when the
// surrounding UI renders on a dark background.
type ResolveFunc func(dark bool) Color

// Resolver maps semantic color keys to concrete colors for a light or dark
// theme. The zero value serves the built-in catalog; Register adds or
// overrides keys at runtime. Resolvers are safe for concurrent use: lookups
// take a read lock and registrations a write lock, with the expectation that
// registrations happen at startup and lookups dominate.
//
// There is no package-level resolver. Construct one with New and hand it to
// whatever needs colors.
type Resolver struct {
	mu     sync.RWMutex
	custom map[string]ResolveFunc
}

// New returns a resolver backed by the built-in catalog with no custom
// registrations.
func New() *Resolver {
	return &Resolver{custom: make(map[string]ResolveFunc)}
}

// Resolve returns the color for key in the given theme. Custom registrations
// shadow built-in entries; keys known to neither resolve to fallback. Resolve
// never fails.
func (r *Resolver) Resolve(key string, dark bool, fallback Color) Color {
	if c, ok := r.Lookup(key, dark); ok {
		return c
	}
	return fallback
}

// Lookup is Resolve without a fallback: it reports whether the key was known.
func (r *Resolver) Lookup(key string, dark bool) (Color, bool) {
	r.mu.RLock()
	fn := r.custom[key]
	r.mu.RUnlock()
	if fn != nil {
		return fn(dark), true
	}
	if e, ok := builtins[key]; ok {
		return e.resolve(dark), true
	}
	return Color{}, false
}

// Register installs fn as the resolver for key, overriding any built-in entry
// and any earlier registration for the same key. Registering a nil fn is a
// no-op at lookup time; the key falls through to the built-in table. Keys are
// opaque: any non-namespaced or novel key is accepted.
func (r *Resolver) Register(key string, fn ResolveFunc) {
	r.mu.Lock()
	if r.custom == nil {
		r.custom = make(map[string]ResolveFunc)
	}
	r.custom[key] = fn
	r.mu.Unlock()
}

// RegisterFixed registers a theme-invariant color for key.
func (r *Resolver) RegisterFixed(key string, c Color) {
	r.Register(key, func(bool) Color { return c })
}

// RegisterPair registers a light/dark color pair for key.
func (r *Resolver) RegisterPair(key string, light, dark Color) {
	r.Register(key, func(d bool) Color {
		if d {
			return dark
		}
		return light
	})
}

// Has reports whether key resolves without falling back.
func (r *Resolver) Has(key string) bool {
	r.mu.RLock()
	fn := r.custom[key]
	r.mu.RUnlock()
	if fn != nil {
		return true
	}
	_, ok := builtins[key]
	return ok
}

// IsCustom reports whether key is served by a custom registration rather than
// the built-in table.
func (r *Resolver) IsCustom(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.custom[key] != nil
}

// Keys returns every resolvable key, sorted: the built-in catalog plus all
// custom registrations.
func (r *Resolver) Keys() []string {
	seen := make(map[string]struct{}, len(builtins))
	for k := range builtins {
		seen[k] = struct{}{}
	}
	r.mu.RLock()
	for k, fn := range r.custom {
		if fn != nil {
			seen[k] = struct{}{}
		}
	}
	r.mu.RUnlock()
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CustomKeys returns the sorted custom registrations.
func (r *Resolver) CustomKeys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.custom))
	for k, fn := range r.custom {
		if fn != nil {
			keys = append(keys, k)
		}
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// BuiltinKeys returns the sorted keys of the built-in catalog.
func BuiltinKeys() []string {
	keys := make([]string, 0, len(builtins))
	for k := range builtins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Namespace returns the first dot-separated segment of a key ("text" for
// "text.primary"), or the whole key when it has no dot.
func Namespace(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return key
}

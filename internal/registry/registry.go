package registry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidQueueName is returned for names that fail syntax validation or
// are not in the configured set.
var ErrInvalidQueueName = errors.New("registry: invalid queue name")

var nameRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks queue name syntax: non-empty, characters limited to
// [A-Za-z0-9_-].
func ValidateName(name string) error {
	if !nameRE.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidQueueName, name)
	}
	return nil
}

// Handle identifies one configured queue. It always carries the exact
// configured spelling, regardless of how the request spelled the name.
type Handle struct {
	name string
}

// Name returns the configured queue name.
func (h Handle) Name() string { return h.name }

// Registry resolves request queue names against the configured set. It is
// immutable after construction and safe for concurrent use.
type Registry struct {
	names  []string
	exact  map[string]Handle
	folded map[string]Handle
}

// New builds a Registry from the configured queue names. Construction fails
// on syntactically invalid or duplicated names so a bad configuration stops
// the process at startup.
func New(names []string) (*Registry, error) {
	r := &Registry{
		exact:  make(map[string]Handle, len(names)),
		folded: make(map[string]Handle, len(names)),
	}
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		if _, ok := r.exact[name]; ok {
			return nil, fmt.Errorf("registry: duplicate queue name %q", name)
		}
		h := Handle{name: name}
		r.exact[name] = h
		// First configured name wins for requests that are ambiguous
		// under '_'/'-' folding.
		if key := fold(name); r.foldedAbsent(key) {
			r.folded[key] = h
		}
		r.names = append(r.names, name)
	}
	return r, nil
}

func (r *Registry) foldedAbsent(key string) bool {
	_, ok := r.folded[key]
	return !ok
}

// Resolve maps a request name to the handle of a configured queue.
// Underscore and hyphen are interchangeable when matching, but an exact
// match always wins, so two configured names differing only in '_'/'-'
// stay distinct.
func (r *Registry) Resolve(name string) (Handle, error) {
	if err := ValidateName(name); err != nil {
		return Handle{}, err
	}
	if h, ok := r.exact[name]; ok {
		return h, nil
	}
	if h, ok := r.folded[fold(name)]; ok {
		return h, nil
	}
	return Handle{}, fmt.Errorf("%w: %q is not a configured queue", ErrInvalidQueueName, name)
}

// Names returns the configured queue names in configuration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func fold(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

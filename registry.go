package jsonget

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Formatter renders a value to w.
type Formatter func(w io.Writer, v any) error

// Registry maps format names to formatters. Names are either bare ("text")
// or carry a single namespace ("std.text"); a namespaced format can also be
// reached by its short name as long as no other namespace registers it.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Formatter
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[string]Formatter)}
}

func validateName(name string) error {
	if strings.Count(name, ".") > 1 || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("format %q invalid namespace (expected name or ns.name)", name)
	}
	return nil
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn Formatter) error {
	if err := validateName(name); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("format %q nil formatter", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("format %q already registered", name)
	}
	r.entries[name] = fn
	return nil
}

// resolve finds the formatter for name. An exact match wins; otherwise a
// bare name matches the unique "ns.name" entry.
func (r *Registry) resolve(name string) (string, Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if fn, ok := r.entries[name]; ok {
		return name, fn, nil
	}
	if !strings.Contains(name, ".") {
		var matches []string
		for full := range r.entries {
			if strings.HasSuffix(full, "."+name) {
				matches = append(matches, full)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], r.entries[matches[0]], nil
		case 0:
		default:
			sort.Strings(matches)
			return "", nil, fmt.Errorf("format %q ambiguous (candidates: %s)", name, strings.Join(matches, ", "))
		}
	}
	return "", nil, fmt.Errorf("format %q not registered", name)
}

// Format renders v to w with the formatter registered under name.
func (r *Registry) Format(name string, w io.Writer, v any) error {
	full, fn, err := r.resolve(name)
	if err != nil {
		return err
	}
	logger.Debug("format", "name", name, "resolved", full)
	if err := fn(w, v); err != nil {
		return fmt.Errorf("format %q: %w", full, err)
	}
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package module

import "sync"

// process registry of module port sets, filled while main composes the API
var (
	mu    sync.RWMutex
	reg   = map[string]any{}
	order []string
)

// Register stores a port set for a module name; re-registering replaces it in place
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := reg[name]; !ok {
		order = append(order, name)
	}
	reg[name] = ports
}

// PortsAs fetches and type asserts a port set for name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Names lists registered modules in registration order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), order...)
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	order = nil
	mu.Unlock()
}

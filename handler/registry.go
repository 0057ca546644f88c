package handler

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[string]Handler{}
)

// Register binds a handler to a tag, process-wide. The four built-in tags
// (start/top, end/bottom, any/middle, stack) are registered once at package
// init; hosts register custom handlers the same way before validating any
// configuration that references them.
func Register(tag string, h Handler) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tag] = h
}

// Get looks up a handler by tag.
func Get(tag string) (Handler, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[tag]
	return h, ok
}

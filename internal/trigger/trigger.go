package trigger

import (
	"sync/atomic"

	"github.com/skillscout/cli/internal/registry"
)

// CompiledTrigger aggregates every compiled pattern for one skill across all
// of its concepts and languages, in registry declaration order. Never mutated
// after construction.
type CompiledTrigger struct {
	SkillName   string
	Priority    int
	Description string
	Patterns    []Pattern
}

// Build compiles triggers for every skill in the registry. Skills keep their
// declaration order; within a skill, patterns follow concept order crossed
// with the canonical language order. Pure function of the registry.
func Build(reg *registry.Registry) []CompiledTrigger {
	skills := reg.All()
	out := make([]CompiledTrigger, 0, len(skills))
	for _, sk := range skills {
		ct := CompiledTrigger{
			SkillName:   sk.Name,
			Priority:    sk.Priority,
			Description: sk.Description,
		}
		for _, c := range sk.Concepts {
			for _, lang := range registry.Languages() {
				re, ok := Compile(c.Keywords[lang], lang)
				if !ok {
					continue
				}
				ct.Patterns = append(ct.Patterns, Pattern{
					ID: c.Name + "/" + string(lang),
					re: re,
				})
			}
		}
		out = append(out, ct)
	}
	return out
}

// Cache memoizes Build for the lifetime of its owner. The first Get compiles
// the triggers; later calls return the same slice. Reset discards the cached
// value so the next Get rebuilds.
//
// Concurrent first calls may both run Build; that is harmless because Build
// is pure and its results are interchangeable, so whichever store wins is
// equivalent.
type Cache struct {
	reg      *registry.Registry
	compiled atomic.Pointer[[]CompiledTrigger]
}

// NewCache creates a cache over the given registry. Nothing is compiled
// until the first Get.
func NewCache(reg *registry.Registry) *Cache {
	return &Cache{reg: reg}
}

// Get returns the compiled triggers, building them on first use.
func (c *Cache) Get() []CompiledTrigger {
	if p := c.compiled.Load(); p != nil {
		return *p
	}
	built := Build(c.reg)
	c.compiled.Store(&built)
	return built
}

// Reset discards the cached triggers. Used by tests and by config hot-reload.
func (c *Cache) Reset() {
	c.compiled.Store(nil)
}

// Package catalog exposes the skill registry as a filterable listing.
//
// The listing deliberately projects away keyword data: callers see each
// skill's name, priority, description, and concept names only. Keywords stay
// an implementation detail of the matching engine.
package catalog

import (
	"sort"

	"github.com/skillscout/cli/internal/registry"
)

// SkillInfo is the catalog projection of one skill.
type SkillInfo struct {
	Name        string   `json:"name"`
	Priority    int      `json:"priority"`
	Description string   `json:"description"`
	Concepts    []string `json:"concepts"`
}

// Filter restricts a listing to a priority range. Both bounds are inclusive
// and independently optional; nil means unbounded.
type Filter struct {
	MinPriority *int
	MaxPriority *int
}

// Listing is the result of one List call. Total is the length of the
// filtered list, not the full registry size.
type Listing struct {
	Skills []SkillInfo `json:"skills"`
	Total  int         `json:"total"`
}

// Service lists skills from a registry.
type Service struct {
	reg *registry.Registry
}

// NewService creates a catalog service over the given registry.
func NewService(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

// List returns every skill within the filter's priority range, sorted by
// priority descending with lexicographic name as the tie-break. A nil filter
// lists everything.
func (s *Service) List(f *Filter) Listing {
	skills := make([]SkillInfo, 0, s.reg.Len())
	for _, sk := range s.reg.All() {
		if f != nil {
			if f.MinPriority != nil && sk.Priority < *f.MinPriority {
				continue
			}
			if f.MaxPriority != nil && sk.Priority > *f.MaxPriority {
				continue
			}
		}
		concepts := make([]string, 0, len(sk.Concepts))
		for _, c := range sk.Concepts {
			concepts = append(concepts, c.Name)
		}
		skills = append(skills, SkillInfo{
			Name:        sk.Name,
			Priority:    sk.Priority,
			Description: sk.Description,
			Concepts:    concepts,
		})
	}

	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Priority != skills[j].Priority {
			return skills[i].Priority > skills[j].Priority
		}
		return skills[i].Name < skills[j].Name
	})

	return Listing{Skills: skills, Total: len(skills)}
}

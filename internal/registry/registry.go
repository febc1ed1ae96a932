// Package registry defines the static skill table that drives skill
// recommendation.
//
// A skill is a named behavioral workflow an AI coding agent can adopt for a
// class of tasks. Each skill declares a priority (used to rank competing
// recommendations) and a set of concepts; a concept is a semantic keyword
// category ("error", "fix") with keyword lists for every supported language.
// The table is defined entirely at compile time and never mutated.
package registry

import "strings"

// Language identifies one of the supported prompt languages.
type Language string

// Supported languages. Keyword matching rules differ by language family:
// English and Spanish delimit words with spaces, so their patterns carry
// word-boundary anchors; Korean, Japanese, and Chinese do not, so their
// keywords match as plain substrings.
const (
	English  Language = "en"
	Korean   Language = "ko"
	Japanese Language = "ja"
	Chinese  Language = "zh"
	Spanish  Language = "es"
)

// Languages returns the supported languages in canonical order. Trigger
// compilation and pattern identifiers follow this order, so it must stay
// stable.
func Languages() []Language {
	return []Language{English, Korean, Japanese, Chinese, Spanish}
}

// SpaceDelimited reports whether the language marks word boundaries with
// whitespace. Only these languages get \b anchors in compiled patterns.
func (l Language) SpaceDelimited() bool {
	return l == English || l == Spanish
}

// Concept is one keyword category within a skill. Every supported language
// has an entry in Keywords; a language with no usable keywords carries an
// empty list rather than a missing key, so a forgotten translation can never
// silently disable matching for that language.
type Concept struct {
	Name     string
	Keywords map[Language][]string
}

// Skill is one recommendable workflow.
type Skill struct {
	Name        string
	Priority    int
	Description string
	Concepts    []Concept
}

// Registry is an immutable ordered collection of skills. The declaration
// order is the matcher's iteration order.
type Registry struct {
	skills []Skill
}

// New builds a registry from the given skills. The slice is copied; callers
// cannot mutate the registry afterwards.
func New(skills []Skill) *Registry {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return &Registry{skills: out}
}

// Bundled returns the registry of built-in skills.
func Bundled() *Registry {
	return New(bundledSkills)
}

// All returns the skills in declaration order. The returned slice is a copy.
func (r *Registry) All() []Skill {
	out := make([]Skill, len(r.skills))
	copy(out, r.skills)
	return out
}

// Len returns the number of skills.
func (r *Registry) Len() int {
	return len(r.skills)
}

// Get returns one skill by exact name.
func (r *Registry) Get(name string) (Skill, bool) {
	name = strings.TrimSpace(name)
	for _, sk := range r.skills {
		if sk.Name == name {
			return sk, true
		}
	}
	return Skill{}, false
}

// Names returns all skill names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.skills))
	for _, sk := range r.skills {
		names = append(names, sk.Name)
	}
	return names
}

// Package recommend implements the skill recommendation engine.
//
// Given a free-text task description, the engine finds every skill whose
// compiled triggers match, labels each with a confidence derived from the
// number of distinct matched patterns, and ranks the results by declared
// skill priority. Matching is substring/keyword based; there is no semantic
// inference.
package recommend

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/skillscout/cli/internal/registry"
	"github.com/skillscout/cli/internal/trigger"
)

// Confidence labels how strongly a skill matched the prompt.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"

	// ConfidenceLow is reserved. The scoring rule only produces high and
	// medium: skills with zero matches are dropped before scoring, and any
	// surviving skill has at least one match, which already rates medium.
	ConfidenceLow Confidence = "low"
)

// Recommendation is one ranked skill suggestion.
type Recommendation struct {
	SkillName       string     `json:"skill_name"`
	Confidence      Confidence `json:"confidence"`
	MatchedPatterns []string   `json:"matched_patterns"`
	Description     string     `json:"description"`
}

// Result is the full response for one recommendation request.
// OriginalPrompt echoes the input exactly as received; trimming happens only
// internally for matching.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	OriginalPrompt  string           `json:"original_prompt"`
}

// Engine owns the trigger cache and answers recommendation requests. Safe
// for concurrent use: the registry is immutable, the cache tolerates
// redundant concurrent builds, and everything else is call-local.
type Engine struct {
	cache atomic.Pointer[trigger.Cache]
}

// NewEngine creates an engine over the given registry. Triggers compile
// lazily on the first request.
func NewEngine(reg *registry.Registry) *Engine {
	e := &Engine{}
	e.cache.Store(trigger.NewCache(reg))
	return e
}

// Reset discards the compiled triggers; the next request recompiles them.
func (e *Engine) Reset() {
	e.cache.Load().Reset()
}

// Reload swaps in a new registry, discarding all compiled state. Used when
// the config file changes under a running MCP server.
func (e *Engine) Reload(reg *registry.Registry) {
	e.cache.Store(trigger.NewCache(reg))
}

// Recommend returns ranked skill recommendations for a task description.
// Total for every input: empty or whitespace-only prompts yield an empty
// recommendation list, never an error.
func (e *Engine) Recommend(prompt string) Result {
	result := Result{
		Recommendations: []Recommendation{},
		OriginalPrompt:  prompt,
	}

	text := strings.TrimSpace(prompt)
	if text == "" {
		return result
	}

	matches := match(text, e.cache.Load().Get())
	rank(matches)

	for _, m := range matches {
		result.Recommendations = append(result.Recommendations, Recommendation{
			SkillName:       m.trigger.SkillName,
			Confidence:      score(len(m.patternIDs)),
			MatchedPatterns: m.patternIDs,
			Description:     m.trigger.Description,
		})
	}
	return result
}

// skillMatch records one matched skill with the IDs of every pattern that
// fired, in trigger pattern order.
type skillMatch struct {
	trigger    trigger.CompiledTrigger
	patternIDs []string
}

// match tests every trigger against the trimmed text, in registry
// declaration order. Skills with no matching pattern are omitted entirely;
// a skill is recorded at most once.
func match(text string, triggers []trigger.CompiledTrigger) []skillMatch {
	matches := make([]skillMatch, 0, 4)
	seen := make(map[string]bool, len(triggers))

	for _, tr := range triggers {
		if seen[tr.SkillName] {
			continue
		}
		var ids []string
		for _, p := range tr.Patterns {
			if p.Matches(text) {
				ids = append(ids, p.ID)
			}
		}
		if len(ids) == 0 {
			continue
		}
		seen[tr.SkillName] = true
		matches = append(matches, skillMatch{trigger: tr, patternIDs: ids})
	}
	return matches
}

// score maps a distinct-match count to a confidence label. Three or more
// matched patterns rate high; one or two rate medium. Zero never reaches
// here (zero-match skills are filtered out by match).
func score(matched int) Confidence {
	if matched >= 3 {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

// rank orders matches by declared priority, highest first. Equal priorities
// fall back to lexicographic skill name so ties are stable rather than an
// accident of iteration order.
func rank(matches []skillMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].trigger, matches[j].trigger
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.SkillName < b.SkillName
	})
}

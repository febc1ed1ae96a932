package recommend

import (
	"reflect"
	"testing"

	"github.com/skillscout/cli/internal/registry"
)

func newTestEngine() *Engine {
	return NewEngine(registry.Bundled())
}

func TestRecommendEchoesPrompt(t *testing.T) {
	e := newTestEngine()

	prompts := []string{
		"",
		"   ",
		"  fix this bug  ",
		"\tтекст\n",
		"로그인에 버그가 있어",
	}
	for _, p := range prompts {
		if got := e.Recommend(p).OriginalPrompt; got != p {
			t.Errorf("OriginalPrompt = %q, want %q (verbatim echo)", got, p)
		}
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	e := newTestEngine()

	for _, p := range []string{"", "   ", "\t\n  "} {
		res := e.Recommend(p)
		if len(res.Recommendations) != 0 {
			t.Errorf("Recommend(%q) returned %d recommendations, want 0", p, len(res.Recommendations))
		}
		if res.Recommendations == nil {
			t.Errorf("Recommend(%q) returned nil slice, want empty", p)
		}
	}
}

func TestRecommendNoMatch(t *testing.T) {
	e := newTestEngine()

	res := e.Recommend("hello world")
	if len(res.Recommendations) != 0 {
		t.Errorf("Recommend(\"hello world\") = %+v, want no recommendations", res.Recommendations)
	}
}

func TestRecommendFixThisBug(t *testing.T) {
	e := newTestEngine()

	res := e.Recommend("I need to fix this bug")
	if len(res.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}

	first := res.Recommendations[0]
	if first.SkillName != "systematic-debugging" {
		t.Errorf("first skill = %q, want systematic-debugging", first.SkillName)
	}
	if first.Confidence != ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", first.Confidence)
	}
	want := []string{"fix/en", "bug/en"}
	if !reflect.DeepEqual(first.MatchedPatterns, want) {
		t.Errorf("matched patterns = %v, want %v", first.MatchedPatterns, want)
	}
}

// TestRecommendKoreanSubstring: Korean keywords match as plain substrings,
// so "버그" fires even when glued to the particle "가".
func TestRecommendKoreanSubstring(t *testing.T) {
	e := newTestEngine()

	res := e.Recommend("로그인에 버그가 있어")
	if len(res.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}

	first := res.Recommendations[0]
	if first.SkillName != "systematic-debugging" {
		t.Errorf("first skill = %q, want systematic-debugging", first.SkillName)
	}
	want := []string{"bug/ko"}
	if !reflect.DeepEqual(first.MatchedPatterns, want) {
		t.Errorf("matched patterns = %v, want %v", first.MatchedPatterns, want)
	}
}

// TestRecommendWordBoundary: English keywords only match as standalone
// tokens.
func TestRecommendWordBoundary(t *testing.T) {
	e := newTestEngine()

	if res := e.Recommend("an error occurred"); len(res.Recommendations) == 0 {
		t.Error("standalone \"error\" did not match")
	}
	if res := e.Recommend("they were terrorized"); len(res.Recommendations) != 0 {
		t.Errorf("embedded \"error\" matched: %+v", res.Recommendations)
	}
}

func TestRecommendHighConfidence(t *testing.T) {
	e := newTestEngine()

	// error (en+es, "error" is a keyword in both), fix, bug: four distinct
	// patterns for systematic-debugging.
	res := e.Recommend("the crash error needs a fix for this bug")
	if len(res.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}

	first := res.Recommendations[0]
	if first.SkillName != "systematic-debugging" {
		t.Fatalf("first skill = %q, want systematic-debugging", first.SkillName)
	}
	if first.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %q with %d matches, want high", first.Confidence, len(first.MatchedPatterns))
	}
	want := []string{"error/en", "error/es", "fix/en", "bug/en"}
	if !reflect.DeepEqual(first.MatchedPatterns, want) {
		t.Errorf("matched patterns = %v, want %v", first.MatchedPatterns, want)
	}
}

// TestRecommendPriorityBeatsMatchCount: a higher-priority skill ranks first
// even when a lower-priority skill matched more patterns.
func TestRecommendPriorityBeatsMatchCount(t *testing.T) {
	e := newTestEngine()

	res := e.Recommend("review the feedback on quality before the test lands")
	if len(res.Recommendations) < 2 {
		t.Fatalf("got %d recommendations, want at least 2", len(res.Recommendations))
	}

	if res.Recommendations[0].SkillName != "test-driven-development" {
		t.Errorf("first = %q, want test-driven-development (priority 22)", res.Recommendations[0].SkillName)
	}
	if res.Recommendations[1].SkillName != "code-review" {
		t.Errorf("second = %q, want code-review (priority 20)", res.Recommendations[1].SkillName)
	}
	if res.Recommendations[1].Confidence != ConfidenceHigh {
		t.Errorf("code-review confidence = %q, want high (three concepts matched)", res.Recommendations[1].Confidence)
	}
}

// TestRecommendTieBreak: equal priorities order lexicographically by skill
// name, not by match count or registry position.
func TestRecommendTieBreak(t *testing.T) {
	e := newTestEngine()

	res := e.Recommend("write docs for the api")

	var tied []string
	for _, r := range res.Recommendations {
		if r.SkillName == "api-design" || r.SkillName == "documentation-first" {
			tied = append(tied, r.SkillName)
		}
	}
	want := []string{"api-design", "documentation-first"}
	if !reflect.DeepEqual(tied, want) {
		t.Errorf("tied skills ordered %v, want %v", tied, want)
	}
}

func TestRecommendIdempotent(t *testing.T) {
	e := newTestEngine()

	prompt := "review the slow api and fix the error"
	first := e.Recommend(prompt)
	second := e.Recommend(prompt)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\n%+v\n%+v", first, second)
	}
}

func TestRecommendAfterReset(t *testing.T) {
	e := newTestEngine()

	prompt := "I need to fix this bug"
	before := e.Recommend(prompt)
	e.Reset()
	after := e.Recommend(prompt)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Reset changed behavior:\n%+v\n%+v", before, after)
	}
}

func TestRecommendReload(t *testing.T) {
	e := newTestEngine()

	custom := registry.New([]registry.Skill{
		{
			Name:        "only-skill",
			Priority:    5,
			Description: "test skill",
			Concepts: []registry.Concept{
				{
					Name: "greeting",
					Keywords: map[registry.Language][]string{
						registry.English:  {"hello"},
						registry.Korean:   {},
						registry.Japanese: {},
						registry.Chinese:  {},
						registry.Spanish:  {},
					},
				},
			},
		},
	})
	e.Reload(custom)

	res := e.Recommend("hello world")
	if len(res.Recommendations) != 1 || res.Recommendations[0].SkillName != "only-skill" {
		t.Errorf("after Reload, Recommend = %+v, want only-skill", res.Recommendations)
	}
	if res := e.Recommend("fix this bug"); len(res.Recommendations) != 0 {
		t.Errorf("old registry still active after Reload: %+v", res.Recommendations)
	}
}

func TestScoreBoundaries(t *testing.T) {
	tests := []struct {
		matched int
		want    Confidence
	}{
		{1, ConfidenceMedium},
		{2, ConfidenceMedium},
		{3, ConfidenceHigh},
		{7, ConfidenceHigh},
	}
	for _, tt := range tests {
		if got := score(tt.matched); got != tt.want {
			t.Errorf("score(%d) = %q, want %q", tt.matched, got, tt.want)
		}
	}
}

// TestRecommendConcurrent exercises the lazy cache population race: many
// goroutines hitting a fresh engine must all see consistent results.
func TestRecommendConcurrent(t *testing.T) {
	e := newTestEngine()
	want := e.Recommend("fix this bug")
	e.Reset()

	done := make(chan Result, 16)
	for i := 0; i < 16; i++ {
		go func() {
			done <- e.Recommend("fix this bug")
		}()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Errorf("concurrent result differs: %+v", got)
		}
	}
}

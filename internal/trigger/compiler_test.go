package trigger

import (
	"testing"

	"github.com/skillscout/cli/internal/registry"
)

func TestCompileWordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		lang     registry.Language
		text     string
		want     bool
	}{
		{
			name:     "english keyword as standalone token",
			keywords: []string{"error"},
			lang:     registry.English,
			text:     "an error occurred",
			want:     true,
		},
		{
			name:     "english keyword inside larger token",
			keywords: []string{"error"},
			lang:     registry.English,
			text:     "they were terrorized",
			want:     false,
		},
		{
			name:     "english match is case-insensitive",
			keywords: []string{"error"},
			lang:     registry.English,
			text:     "ERROR: something failed",
			want:     true,
		},
		{
			name:     "spanish keyword bounded",
			keywords: []string{"lento"},
			lang:     registry.Spanish,
			text:     "el servidor va lento hoy",
			want:     true,
		},
		{
			name:     "spanish keyword embedded",
			keywords: []string{"lento"},
			lang:     registry.Spanish,
			text:     "violentos",
			want:     false,
		},
		{
			name:     "korean keyword adjacent to particles",
			keywords: []string{"버그"},
			lang:     registry.Korean,
			text:     "로그인에 버그가 있어",
			want:     true,
		},
		{
			name:     "japanese keyword in running text",
			keywords: []string{"バグ"},
			lang:     registry.Japanese,
			text:     "このバグを直してください",
			want:     true,
		},
		{
			name:     "chinese keyword in running text",
			keywords: []string{"错误"},
			lang:     registry.Chinese,
			text:     "程序有个错误需要处理",
			want:     true,
		},
		{
			name:     "multi-word keyword with collapsed whitespace",
			keywords: []string{"not working"},
			lang:     registry.English,
			text:     "the button is not  working",
			want:     true,
		},
		{
			name:     "multi-word keyword across tab",
			keywords: []string{"not working"},
			lang:     registry.English,
			text:     "still not\tworking after restart",
			want:     true,
		},
		{
			name:     "regex metacharacters are literal",
			keywords: []string{"c++"},
			lang:     registry.English,
			text:     "porting the c++ module",
			want:     true,
		},
		{
			name:     "non-word trailing edge keeps leading anchor",
			keywords: []string{"c++"},
			lang:     registry.English,
			text:     "basic++ tricks",
			want:     false,
		},
		{
			name:     "non-word leading edge keeps trailing anchor",
			keywords: []string{".net"},
			lang:     registry.English,
			text:     "the .net runtime",
			want:     true,
		},
		{
			name:     "alternation matches any keyword",
			keywords: []string{"fix", "debug", "solve"},
			lang:     registry.English,
			text:     "please debug the service",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, ok := Compile(tt.keywords, tt.lang)
			if !ok {
				t.Fatal("Compile() returned no pattern")
			}
			if got := re.MatchString(tt.text); got != tt.want {
				t.Errorf("pattern %q on %q = %v, want %v", re.String(), tt.text, got, tt.want)
			}
		})
	}
}

func TestCompileEmptyKeywords(t *testing.T) {
	if _, ok := Compile(nil, registry.English); ok {
		t.Error("Compile(nil) produced a pattern")
	}
	if _, ok := Compile([]string{"", "   "}, registry.Korean); ok {
		t.Error("Compile of blank keywords produced a pattern")
	}
}

// TestCompileDeterministic: identical input compiles to a pattern with
// identical matching behavior.
func TestCompileDeterministic(t *testing.T) {
	a, _ := Compile([]string{"fix", "not working"}, registry.English)
	b, _ := Compile([]string{"fix", "not working"}, registry.English)
	if a.String() != b.String() {
		t.Errorf("expressions differ: %q vs %q", a.String(), b.String())
	}
}

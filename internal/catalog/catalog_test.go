package catalog

import (
	"reflect"
	"testing"

	"github.com/skillscout/cli/internal/registry"
)

func intPtr(v int) *int { return &v }

func names(l Listing) []string {
	out := make([]string, 0, len(l.Skills))
	for _, s := range l.Skills {
		out = append(out, s.Name)
	}
	return out
}

func TestListAll(t *testing.T) {
	svc := NewService(registry.Bundled())

	listing := svc.List(nil)
	if listing.Total != 8 {
		t.Fatalf("Total = %d, want 8", listing.Total)
	}
	if len(listing.Skills) != listing.Total {
		t.Errorf("len(Skills) = %d, Total = %d; must agree", len(listing.Skills), listing.Total)
	}

	// Priority descending, name ascending within the tie at 12.
	want := []string{
		"systematic-debugging",
		"test-driven-development",
		"code-review",
		"refactoring-patterns",
		"performance-tuning",
		"api-design",
		"documentation-first",
		"dependency-auditing",
	}
	if got := names(listing); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestListFilters(t *testing.T) {
	svc := NewService(registry.Bundled())

	tests := []struct {
		name      string
		filter    *Filter
		wantNames []string
	}{
		{
			name:      "min 25 keeps only the top skill",
			filter:    &Filter{MinPriority: intPtr(25)},
			wantNames: []string{"systematic-debugging"},
		},
		{
			name:      "inclusive band 20..22",
			filter:    &Filter{MinPriority: intPtr(20), MaxPriority: intPtr(22)},
			wantNames: []string{"test-driven-development", "code-review"},
		},
		{
			name:      "max only",
			filter:    &Filter{MaxPriority: intPtr(12)},
			wantNames: []string{"api-design", "documentation-first", "dependency-auditing"},
		},
		{
			name:      "band excluding everything",
			filter:    &Filter{MinPriority: intPtr(23), MaxPriority: intPtr(24)},
			wantNames: []string{},
		},
		{
			name:      "nil bounds behave as absent",
			filter:    &Filter{},
			wantNames: nil, // checked by Total below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := svc.List(tt.filter)
			if tt.wantNames == nil {
				if listing.Total != 8 {
					t.Errorf("Total = %d, want 8", listing.Total)
				}
				return
			}
			if got := names(listing); !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("skills = %v, want %v", got, tt.wantNames)
			}
			if listing.Total != len(tt.wantNames) {
				t.Errorf("Total = %d, want %d", listing.Total, len(tt.wantNames))
			}
		})
	}
}

// TestListProjectsConceptNamesOnly: the catalog must never leak keyword
// lists, only concept names.
func TestListProjectsConceptNamesOnly(t *testing.T) {
	svc := NewService(registry.Bundled())

	listing := svc.List(&Filter{MinPriority: intPtr(25)})
	if listing.Total != 1 {
		t.Fatalf("Total = %d, want 1", listing.Total)
	}

	got := listing.Skills[0].Concepts
	want := []string{"error", "fix", "bug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("concepts = %v, want %v", got, want)
	}
}

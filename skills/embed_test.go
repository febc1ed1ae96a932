package skills

import (
	"strings"
	"testing"

	"github.com/skillscout/cli/internal/registry"
)

// TestContentCoversRegistry: every skill in the bundled registry has an
// embedded document, and every document opens with frontmatter naming the
// skill it belongs to.
func TestContentCoversRegistry(t *testing.T) {
	for _, name := range registry.Bundled().Names() {
		content, ok := Content(name)
		if !ok {
			t.Errorf("no embedded SKILL.md for %q", name)
			continue
		}
		if !strings.HasPrefix(content, "---\n") {
			t.Errorf("%s: document does not start with frontmatter", name)
		}
		if !strings.Contains(content, "name: "+name) {
			t.Errorf("%s: frontmatter does not name the skill", name)
		}
	}
}

func TestContentUnknown(t *testing.T) {
	if _, ok := Content("no-such-skill"); ok {
		t.Error("Content returned a document for an unknown skill")
	}
}

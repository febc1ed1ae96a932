package util

import "testing"

func TestSanitizeForFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "parentheses and spaces", input: "Systematic Debugging (v2)", want: "systematic-debugging-v2"},
		{name: "parens no space", input: "my-skill(v2)", want: "my-skillv2"},
		{name: "brackets", input: "Review [draft]", want: "review-draft"},
		{name: "leading trailing spaces", input: "  spaces  ", want: "spaces"},
		{name: "uppercase", input: "UPPERCASE", want: "uppercase"},
		{name: "already valid", input: "already-valid", want: "already-valid"},
		{name: "collapse hyphens", input: "a--b", want: "a-b"},
		{name: "empty string", input: "", want: ""},
		{name: "underscores preserved", input: "my_test_name", want: "my_test_name"},
		{name: "mixed special chars", input: "test!@#$%^&*name", want: "testname"},
		{name: "trailing hyphen after strip", input: "test-", want: "test"},
		{name: "leading hyphen after strip", input: "-test", want: "test"},
		{name: "only special chars", input: "()", want: ""},
		{name: "numbers", input: "test-123", want: "test-123"},
		{name: "tab gap", input: "a\tb", want: "a-b"},
		{name: "dropped rune does not open a gap", input: "c++builder", want: "cbuilder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeForFilename(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeForFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Package project inspects a working directory and derives hint keywords
// for the recommendation engine.
//
// The analyzer looks at well-known manifest files (package.json, go.mod,
// pyproject.toml, Cargo.toml) to figure out the project's stack and the
// tooling it carries. Detected tooling maps to English hint phrases that the
// recommend command can append to the user's prompt, so a task typed in a
// Jest project leans toward the testing skill without the user naming it.
// Pure file reads and string assembly; no matching semantics live here.
package project

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Report describes what the analyzer found in a directory.
type Report struct {
	// Languages are detected implementation languages ("javascript", "go").
	Languages []string

	// Frameworks are notable frameworks found in manifests ("react", "gin").
	Frameworks []string

	// Hints are English phrases derived from detected tooling, suitable for
	// appending to a recommendation prompt.
	Hints []string
}

// testTools are package.json dependencies that indicate a test setup.
var testTools = []string{"jest", "vitest", "mocha", "ava", "cypress", "playwright"}

// lintTools are package.json dependencies that indicate review tooling.
var lintTools = []string{"eslint", "prettier", "biome"}

// jsFrameworks are package.json dependencies worth reporting as frameworks.
var jsFrameworks = []string{"react", "vue", "svelte", "next", "express", "fastify"}

// Analyze inspects dir and returns a stack report. Missing or unreadable
// manifests are simply skipped; an empty directory yields an empty report.
func Analyze(dir string) Report {
	var rep Report

	if data, err := os.ReadFile(filepath.Join(dir, "package.json")); err == nil {
		rep.Languages = append(rep.Languages, "javascript")
		analyzePackageJSON(data, &rep)
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		rep.Languages = append(rep.Languages, "go")
	}
	if hasAny(dir, "pyproject.toml", "requirements.txt") {
		rep.Languages = append(rep.Languages, "python")
	}
	if _, err := os.Stat(filepath.Join(dir, "Cargo.toml")); err == nil {
		rep.Languages = append(rep.Languages, "rust")
	}

	return rep
}

// analyzePackageJSON pulls dependency names out of package.json without
// unmarshalling the whole document.
func analyzePackageJSON(data []byte, rep *Report) {
	deps := make(map[string]bool)
	for _, section := range []string{"dependencies", "devDependencies"} {
		gjson.GetBytes(data, section).ForEach(func(key, _ gjson.Result) bool {
			deps[key.String()] = true
			return true
		})
	}

	if deps["typescript"] {
		rep.Languages = append(rep.Languages, "typescript")
	}
	for _, fw := range jsFrameworks {
		if deps[fw] {
			rep.Frameworks = append(rep.Frameworks, fw)
		}
	}
	for _, tool := range testTools {
		if deps[tool] {
			rep.Hints = append(rep.Hints, "test")
			break
		}
	}
	for _, tool := range lintTools {
		if deps[tool] {
			rep.Hints = append(rep.Hints, "code review")
			break
		}
	}
}

func hasAny(dir string, names ...string) bool {
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

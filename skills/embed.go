// Package skills provides the embedded SKILL.md documents for every bundled
// skill.
//
// Each document is embedded at compile time via go:embed so that every
// distribution channel can install or print a skill without network access
// or extra files on disk.
package skills

import (
	_ "embed"
)

// SkillFileName is the expected file name within an installed skill
// directory.
const SkillFileName = "SKILL.md"

const (
	SystematicDebuggingName   = "systematic-debugging"
	TestDrivenDevelopmentName = "test-driven-development"
	CodeReviewName            = "code-review"
	RefactoringPatternsName   = "refactoring-patterns"
	PerformanceTuningName     = "performance-tuning"
	APIDesignName             = "api-design"
	DocumentationFirstName    = "documentation-first"
	DependencyAuditingName    = "dependency-auditing"
)

//go:embed systematic-debugging/SKILL.md
var SystematicDebuggingContent string

//go:embed test-driven-development/SKILL.md
var TestDrivenDevelopmentContent string

//go:embed code-review/SKILL.md
var CodeReviewContent string

//go:embed refactoring-patterns/SKILL.md
var RefactoringPatternsContent string

//go:embed performance-tuning/SKILL.md
var PerformanceTuningContent string

//go:embed api-design/SKILL.md
var APIDesignContent string

//go:embed documentation-first/SKILL.md
var DocumentationFirstContent string

//go:embed dependency-auditing/SKILL.md
var DependencyAuditingContent string

// contents maps skill names to their embedded documents.
var contents = map[string]string{
	SystematicDebuggingName:   SystematicDebuggingContent,
	TestDrivenDevelopmentName: TestDrivenDevelopmentContent,
	CodeReviewName:            CodeReviewContent,
	RefactoringPatternsName:   RefactoringPatternsContent,
	PerformanceTuningName:     PerformanceTuningContent,
	APIDesignName:             APIDesignContent,
	DocumentationFirstName:    DocumentationFirstContent,
	DependencyAuditingName:    DependencyAuditingContent,
}

// Content returns the embedded SKILL.md for a skill name.
func Content(name string) (string, bool) {
	c, ok := contents[name]
	return c, ok
}

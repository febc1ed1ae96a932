// Package mcp provides the MCP (Model Context Protocol) server implementation.
//
// This package implements an MCP server that exposes the skill
// recommendation engine as tools that can be called by AI agents via the
// MCP protocol.
package mcp

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillscout/cli/internal/catalog"
	"github.com/skillscout/cli/internal/config"
	"github.com/skillscout/cli/internal/recommend"
	"github.com/skillscout/cli/internal/registry"
	"github.com/skillscout/cli/skills"
)

// Server wraps the MCP server with the recommendation engine.
type Server struct {
	mcpServer  *mcp.Server
	engine     *recommend.Engine
	reg        atomic.Pointer[registry.Registry]
	configPath string
	sessionID  string
	version    string
}

// NewServer creates a new skillscout MCP server.
//
// configPath points at the optional .skillscout/config.yaml; a missing file
// means the bundled skill table is served unmodified, while a malformed one
// is an error so a typo cannot silently serve the wrong catalog.
func NewServer(version, configPath string) (*Server, error) {
	reg, err := loadRegistry(configPath)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:     recommend.NewEngine(reg),
		configPath: configPath,
		sessionID:  uuid.NewString(),
		version:    version,
	}
	s.reg.Store(reg)

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    "skillscout",
			Version: version,
		},
		nil,
	)

	s.registerTools()

	log.Debug("MCP server created", "session", s.sessionID, "skills", reg.Len())
	return s, nil
}

// Run starts the MCP server over stdio. Blocks until the client disconnects
// or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// reload re-reads the config file and swaps in the resulting registry.
// Called by the config watcher; a broken config keeps the old registry.
func (s *Server) reload() {
	reg, err := loadRegistry(s.configPath)
	if err != nil {
		log.Warn("config reload failed, keeping previous registry", "err", err)
		return
	}
	s.reg.Store(reg)
	s.engine.Reload(reg)
	log.Info("registry reloaded", "session", s.sessionID, "skills", reg.Len())
}

// loadRegistry reads the config file and applies it to the bundled table,
// logging lint warnings for skill names the config mentions but the table
// does not have. A missing file serves the bundled table unmodified.
func loadRegistry(path string) (*registry.Registry, error) {
	cfg, err := config.LoadProjectConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return registry.Bundled(), nil
		}
		return nil, err
	}
	for _, w := range cfg.Lint(registry.Bundled()) {
		log.Warn("config lint", "issue", w)
	}
	return cfg.Apply(registry.Bundled()), nil
}

// registerTools registers all skillscout tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recommend_skills",
		Description: "Recommend agent skills for a task description. Accepts English, Korean, Japanese, Chinese, or Spanish text and returns skills ranked by priority with a confidence level per match.",
	}, s.handleRecommendSkills)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_skills",
		Description: "List all available skills with name, priority, description, and concept names. Supports inclusive min/max priority filtering.",
	}, s.handleListSkills)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_skill",
		Description: "Get the full SKILL.md workflow document for a skill by name.",
	}, s.handleGetSkill)
}

// RecommendSkillsInput defines the input parameters for the
// recommend_skills tool.
type RecommendSkillsInput struct {
	Prompt string `json:"prompt" jsonschema:"Free-text task description in any supported language"`
}

// RecommendSkillsOutput defines the output for the recommend_skills tool.
type RecommendSkillsOutput struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	OriginalPrompt  string                     `json:"original_prompt"`
	ErrorMessage    string                     `json:"error_message,omitempty"`
}

// handleRecommendSkills handles the recommend_skills tool call.
func (s *Server) handleRecommendSkills(ctx context.Context, req *mcp.CallToolRequest, input RecommendSkillsInput) (*mcp.CallToolResult, RecommendSkillsOutput, error) {
	// The engine itself accepts any string; only a truly absent prompt is a
	// caller error. Whitespace-only prompts are valid and yield no matches.
	if input.Prompt == "" {
		return nil, RecommendSkillsOutput{
			Recommendations: []recommend.Recommendation{},
			ErrorMessage:    "prompt is required",
		}, nil
	}

	result := s.engine.Recommend(input.Prompt)
	return nil, RecommendSkillsOutput{
		Recommendations: result.Recommendations,
		OriginalPrompt:  result.OriginalPrompt,
	}, nil
}

// ListSkillsInput defines the input parameters for the list_skills tool.
// Both bounds are optional; absent values leave that side unbounded.
type ListSkillsInput struct {
	MinPriority *int `json:"min_priority,omitempty" jsonschema:"Only include skills with priority >= this value (inclusive)"`
	MaxPriority *int `json:"max_priority,omitempty" jsonschema:"Only include skills with priority <= this value (inclusive)"`
}

// ListSkillsOutput defines the output for the list_skills tool.
type ListSkillsOutput struct {
	Skills []catalog.SkillInfo `json:"skills"`
	Total  int                 `json:"total"`
}

// handleListSkills handles the list_skills tool call.
func (s *Server) handleListSkills(ctx context.Context, req *mcp.CallToolRequest, input ListSkillsInput) (*mcp.CallToolResult, ListSkillsOutput, error) {
	svc := catalog.NewService(s.reg.Load())
	listing := svc.List(&catalog.Filter{
		MinPriority: input.MinPriority,
		MaxPriority: input.MaxPriority,
	})
	return nil, ListSkillsOutput{
		Skills: listing.Skills,
		Total:  listing.Total,
	}, nil
}

// GetSkillInput defines the input parameters for the get_skill tool.
type GetSkillInput struct {
	Name string `json:"name" jsonschema:"Exact skill name, e.g. systematic-debugging"`
}

// GetSkillOutput defines the output for the get_skill tool.
type GetSkillOutput struct {
	Name         string `json:"name"`
	Content      string `json:"content,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// handleGetSkill handles the get_skill tool call.
func (s *Server) handleGetSkill(ctx context.Context, req *mcp.CallToolRequest, input GetSkillInput) (*mcp.CallToolResult, GetSkillOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, GetSkillOutput{
			ErrorMessage: "name is required",
		}, nil
	}

	content, ok := skills.Content(name)
	if !ok {
		return nil, GetSkillOutput{
			Name:         name,
			ErrorMessage: "unknown skill: " + name,
		}, nil
	}

	return nil, GetSkillOutput{
		Name:    name,
		Content: content,
	}, nil
}

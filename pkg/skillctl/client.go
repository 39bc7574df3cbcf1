// Package skillctl provides a public API for the skillctl CLI.
//
// This package exposes the lookup and update operations as a Go
// library, for callers that want the reconciliation logic without the
// command-line surface.
//
// Example usage:
//
//	client, err := skillctl.NewClient(skillctl.WithBaseURL("http://localhost:3001/api/strapi"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := client.Find(ctx, "rpa-challenge")
//	if result.FoundBoth() {
//	    fmt.Printf("skill %s is at version %s\n", result.SkillID, result.Version)
//	}
package skillctl

import (
	"context"

	"github.com/agentui/skillctl/internal/api"
	"github.com/agentui/skillctl/internal/config"
	"github.com/agentui/skillctl/internal/skill"
)

// Client is the main entry point for the skillctl public API.
type Client struct {
	apiClient *api.Client
	cfg       *config.Config
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL sets the skills API base URL, including the path prefix.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		c.cfg.APIBaseURL = baseURL
		return nil
	}
}

// WithSkillsRoot sets the directory holding local skill documents.
func WithSkillsRoot(root string) Option {
	return func(c *Client) error {
		c.cfg.SkillsRoot = root
		return nil
	}
}

// WithSavePath sets the destination for saved document bodies.
func WithSavePath(path string) Option {
	return func(c *Client) error {
		c.cfg.SavePath = path
		return nil
	}
}

// NewClient creates a new client with the given options applied over
// the built-in defaults.
//
// Parameters:
//   - opts: Configuration options
//
// Returns:
//   - *Client: A new client instance
//   - error: If an option fails to apply
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{cfg: config.Default(false)}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.apiClient = api.NewClient(c.cfg.APIBaseURL)
	return c, nil
}

// Result is the outcome of a skill lookup.
type Result = skill.LookupResult

// Find looks a skill up by name in the remote store and the local
// skills directory. Remote failures are recorded on the result rather
// than returned; see Result.RemoteErr.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: The skill name, matched exactly and case-sensitively
//
// Returns:
//   - *Result: The merged lookup result, never nil
func (c *Client) Find(ctx context.Context, name string) *Result {
	return skill.Lookup(ctx, c.apiClient, c.cfg, name)
}

// SaveBody writes a fetched document body to the configured save path.
//
// Parameters:
//   - body: The document body to write
//
// Returns:
//   - error: If the file cannot be written
func (c *Client) SaveBody(body string) error {
	return skill.SaveBody(c.cfg.SavePath, body)
}

// UpdateRequest holds the content fields sent by Update.
type UpdateRequest struct {
	// SkillMD is the full document body.
	SkillMD string

	// Version is the version string to record.
	Version string

	// Description is the short description to record.
	Description string
}

// Update replaces the content fields of a skill record by id.
//
// Parameters:
//   - ctx: Context for cancellation
//   - id: The skill record identifier
//   - req: The update payload
//
// Returns:
//   - error: An *api.APIError on non-success status, a transport error,
//     or nil on success
func (c *Client) Update(ctx context.Context, id string, req UpdateRequest) error {
	return c.apiClient.UpdateSkill(ctx, id, &api.UpdateSkillRequest{
		SkillMD:     req.SkillMD,
		Version:     req.Version,
		Description: req.Description,
	})
}

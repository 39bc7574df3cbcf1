package skill

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agentui/skillctl/internal/api"
	"github.com/agentui/skillctl/internal/config"
)

// RemoteTimeout bounds the read request against the skill collection.
const RemoteTimeout = 5 * time.Second

// LookupResult is the outcome of searching for a skill in both the
// remote store and the local filesystem.
type LookupResult struct {
	// Name is the skill name that was searched for.
	Name string

	// SkillID is the remote record identifier, when found remotely.
	SkillID string

	// Path is the local document path, when found locally.
	Path string

	// Version is the resolved version: the remote version when present,
	// else the local front-matter version, else DefaultVersion for a
	// remote record with no version anywhere.
	Version string

	// SkillMD is the full remote document body, when found remotely.
	SkillMD string

	// Preview is the truncated remote body preview.
	Preview string

	// FoundRemote reports whether a record matched in the remote store.
	FoundRemote bool

	// FoundLocal reports whether the local document exists.
	FoundLocal bool

	// RemoteErr records why the remote side failed: a transport error,
	// an *api.APIError (non-success status), or an *api.ShapeError
	// (unexpected body shape). Nil when the request succeeded, even if
	// no record matched.
	RemoteErr error

	// LocalErr records a local document read failure. The document
	// still counts as found; only version extraction is lost.
	LocalErr error
}

// FoundBoth reports whether the skill was found in both sources, the
// overall success condition for a lookup.
func (r *LookupResult) FoundBoth() bool {
	return r.FoundRemote && r.FoundLocal
}

// Lookup searches for a skill by name in the remote store and the local
// skills directory.
//
// The remote request is bounded by RemoteTimeout. A remote failure of
// any kind is recorded in RemoteErr and never aborts the local check.
//
// Parameters:
//   - ctx: Context for cancellation
//   - client: The skills API client
//   - cfg: The effective configuration (skills root)
//   - name: The skill name, matched exactly and case-sensitively
//
// Returns:
//   - *LookupResult: The merged result, never nil
func Lookup(ctx context.Context, client *api.Client, cfg *config.Config, name string) *LookupResult {
	result := &LookupResult{Name: name}

	lookupRemote(ctx, client, name, result)
	lookupLocal(cfg.SkillsRoot, name, result)

	// A found record with no version anywhere gets the default.
	if result.FoundRemote && result.Version == "" {
		result.Version = DefaultVersion
	}

	return result
}

// lookupRemote fills the remote-side fields of result.
func lookupRemote(ctx context.Context, client *api.Client, name string, result *LookupResult) {
	ctx, cancel := context.WithTimeout(ctx, RemoteTimeout)
	defer cancel()

	match, err := client.FindSkillByName(ctx, name)
	if err != nil {
		log.Debug("remote skill lookup failed", "name", name, "err", err)
		result.RemoteErr = err
		return
	}
	if match == nil {
		return
	}

	result.FoundRemote = true
	result.SkillID = match.ID
	result.Version = match.Version
	result.SkillMD = match.SkillMD
	result.Preview = Preview(match.SkillMD)
}

// lookupLocal fills the local-side fields of result and applies the
// version fallback when the remote record had no version.
func lookupLocal(root, name string, result *LookupResult) {
	path := LocalPath(root, name)

	if _, err := os.Stat(path); err != nil {
		return
	}
	result.FoundLocal = true
	result.Path = path

	content, err := os.ReadFile(path)
	if err != nil {
		log.Debug("local skill read failed", "path", path, "err", err)
		result.LocalErr = err
	} else if result.Version == "" {
		if version, ok := FrontMatterVersion(string(content)); ok {
			result.Version = version
		}
	}
}

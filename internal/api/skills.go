package api

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/tidwall/gjson"
)

// Skill represents one skill record in the remote store.
type Skill struct {
	// ID is the record identifier. Strapi returns numeric ids, so the
	// value is normalized to its string form.
	ID string

	// Name is the skill name, the lookup key.
	Name string

	// Version is the semantic version string. May be empty when the
	// record has no version set.
	Version string

	// SkillMD is the free-text document body. May be empty.
	SkillMD string

	// Description is the short human-readable description.
	Description string
}

// skillFromJSON builds a Skill from one JSON element of the collection.
func skillFromJSON(v gjson.Result) Skill {
	return Skill{
		ID:          v.Get("id").String(),
		Name:        v.Get("name").String(),
		Version:     v.Get("version").String(),
		SkillMD:     v.Get("skillmd").String(),
		Description: v.Get("description").String(),
	}
}

// describeShape names a JSON value's shape for ShapeError messages.
func describeShape(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "JSON array"
	case v.IsObject():
		return "JSON object"
	default:
		return fmt.Sprintf("JSON %s", v.Type)
	}
}

// normalizeSkills turns a response body into a flat skill list.
//
// The backend returns either a bare array of skill objects or an object
// exposing the array under a "data" key (the Strapi envelope). Both are
// accepted; anything else is a ShapeError so callers can distinguish a
// wrong shape from an empty collection.
func normalizeSkills(body []byte) ([]Skill, error) {
	const expected = "array of skills or object with data array"

	if !gjson.ValidBytes(body) {
		return nil, &ShapeError{Expected: expected, Got: "invalid JSON"}
	}

	parsed := gjson.ParseBytes(body)

	var elems []gjson.Result
	switch {
	case parsed.IsArray():
		elems = parsed.Array()
	case parsed.IsObject():
		data := parsed.Get("data")
		if !data.IsArray() {
			return nil, &ShapeError{Expected: expected, Got: "JSON object without data array"}
		}
		elems = data.Array()
	default:
		return nil, &ShapeError{Expected: expected, Got: describeShape(parsed)}
	}

	skills := make([]Skill, 0, len(elems))
	for _, elem := range elems {
		if !elem.IsObject() {
			continue
		}
		skills = append(skills, skillFromJSON(elem))
	}
	return skills, nil
}

// ListSkills fetches the full skill collection.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - []Skill: The skill records, normalized from either accepted shape
//   - error: An *APIError for non-success statuses, a *ShapeError for an
//     unexpected body shape, or a transport error
func (c *Client) ListSkills(ctx context.Context) ([]Skill, error) {
	resp, err := c.doRequest(ctx, "GET", "/skills", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errorFromResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return normalizeSkills(body)
}

// FindSkillByName fetches the collection and returns the first record
// whose name matches exactly (case-sensitive). Duplicate names are not
// assumed impossible; the first match wins.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - name: The skill name to match
//
// Returns:
//   - *Skill: The first matching record, or nil if none matched
//   - error: Any error from ListSkills
func (c *Client) FindSkillByName(ctx context.Context, name string) (*Skill, error) {
	skills, err := c.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	for i := range skills {
		if skills[i].Name == name {
			return &skills[i], nil
		}
	}
	return nil, nil
}

// UpdateSkillRequest represents a skill update payload.
// The update has replace semantics; all three fields are sent.
type UpdateSkillRequest struct {
	SkillMD     string `json:"skillmd"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// UpdateSkill replaces the content fields of a skill record by id.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - id: The skill record identifier
//   - req: The update payload
//
// Returns:
//   - error: An *APIError with status and body text on non-success, a
//     transport error, or nil on success
func (c *Client) UpdateSkill(ctx context.Context, id string, req *UpdateSkillRequest) error {
	resp, err := c.doRequest(ctx, "PUT", "/skills/"+url.PathEscape(id), req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

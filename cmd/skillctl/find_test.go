package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/agentui/skillctl/internal/skill"
)

func TestSummarize_FoundBoth(t *testing.T) {
	result := &skill.LookupResult{
		Name:        "rpa-challenge",
		SkillID:     "7",
		Path:        ".claude/skills/rpa-challenge/SKILL.md",
		Version:     "3.2.1",
		SkillMD:     "# RPA challenge content",
		FoundRemote: true,
		FoundLocal:  true,
	}

	summary := summarize(result)
	if summary.SkillID != "7" || summary.CurrentVersion != "3.2.1" {
		t.Errorf("summarize() = %+v, want id 7 and version 3.2.1", summary)
	}
	if summary.SkillMDLength != len(result.SkillMD) {
		t.Errorf("SkillMDLength = %d, want %d", summary.SkillMDLength, len(result.SkillMD))
	}
	if !summary.FoundInStrapi || !summary.FoundLocally {
		t.Error("found flags not set")
	}
	if summary.Error != "" {
		t.Errorf("Error = %q, want empty", summary.Error)
	}
}

func TestSummarize_RemoteError(t *testing.T) {
	result := &skill.LookupResult{
		Name:      "x",
		RemoteErr: errors.New("connection refused"),
	}

	summary := summarize(result)
	if summary.Error != "connection refused" {
		t.Errorf("Error = %q, want connection refused", summary.Error)
	}
	if summary.FoundInStrapi {
		t.Error("FoundInStrapi = true, want false")
	}
}

func TestSummarize_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(summarize(&skill.LookupResult{SkillID: "1", FoundRemote: true}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"skill_id", "found_in_strapi", "found_locally", "skillmd_length"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing field %q in %s", key, data)
		}
	}
}

func TestIndent(t *testing.T) {
	got := indent("a\nb", "  ")
	if got != "  a\n  b" {
		t.Errorf("indent() = %q, want %q", got, "  a\n  b")
	}
}

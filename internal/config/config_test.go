package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	cfgDir := filepath.Join(dir, ConfigDirName)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	cfgPath := filepath.Join(cfgDir, ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return cfgPath
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SKILLCTL_API_URL", "")
	t.Setenv("SKILLCTL_SKILLS_ROOT", "")
	t.Setenv("SKILLCTL_SAVE_PATH", "")
	t.Setenv("SKILLCTL_API_PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir(), false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:3001/api/strapi" {
		t.Errorf("APIBaseURL = %q, want default localhost URL", cfg.APIBaseURL)
	}
	if cfg.SkillsRoot != DefaultSkillsRoot {
		t.Errorf("SkillsRoot = %q, want %q", cfg.SkillsRoot, DefaultSkillsRoot)
	}
	if cfg.SavePath != DefaultSavePath {
		t.Errorf("SavePath = %q, want %q", cfg.SavePath, DefaultSavePath)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: http://example.test/api\nskills_root: my/skills\n")

	cfg, err := Load(dir, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://example.test/api" {
		t.Errorf("APIBaseURL = %q, want file value", cfg.APIBaseURL)
	}
	if cfg.SkillsRoot != "my/skills" {
		t.Errorf("SkillsRoot = %q, want file value", cfg.SkillsRoot)
	}
	// Field absent from the file keeps its default.
	if cfg.SavePath != DefaultSavePath {
		t.Errorf("SavePath = %q, want %q", cfg.SavePath, DefaultSavePath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: http://file.test/api\n")
	t.Setenv("SKILLCTL_API_URL", "http://env.test/api")

	cfg, err := Load(dir, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://env.test/api" {
		t.Errorf("APIBaseURL = %q, want env value", cfg.APIBaseURL)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: [\n")

	if _, err := Load(dir, false); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestGetAPIPort_EnvOverride(t *testing.T) {
	t.Setenv("SKILLCTL_API_PORT", "4500")
	if got := GetAPIPort(); got != "4500" {
		t.Errorf("GetAPIPort() = %q, want 4500", got)
	}

	t.Setenv("SKILLCTL_API_PORT", "")
	if got := GetAPIPort(); got != DefaultAPIPort {
		t.Errorf("GetAPIPort() = %q, want %q", got, DefaultAPIPort)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	cfg := &Config{
		APIBaseURL: "http://saved.test/api",
		SkillsRoot: "saved/skills",
		SavePath:   "saved/out.md",
	}
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(dir, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIBaseURL != cfg.APIBaseURL || loaded.SkillsRoot != cfg.SkillsRoot || loaded.SavePath != cfg.SavePath {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", 250)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: ""},
		{name: "short body unchanged", body: "hello", want: "hello"},
		{name: "exactly 200 chars no marker", body: strings.Repeat("a", 200), want: strings.Repeat("a", 200)},
		{name: "201 chars truncated", body: strings.Repeat("a", 201), want: strings.Repeat("a", 200) + "..."},
		{name: "long body truncated", body: long, want: long[:200] + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.body); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreview_MultibyteRunes(t *testing.T) {
	body := strings.Repeat("é", 300)
	got := Preview(body)
	if want := strings.Repeat("é", 200) + "..."; got != want {
		t.Errorf("Preview() kept %d runes, want 200 plus marker", len([]rune(got))-3)
	}
}

func TestFrontMatterVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		found   bool
	}{
		{
			name:    "front matter block",
			content: "---\nname: demo\nversion: 3.2.1\n---\n# Demo\n",
			want:    "3.2.1",
			found:   true,
		},
		{
			name:    "indented line trimmed",
			content: "  version:   1.5.0  \n",
			want:    "1.5.0",
			found:   true,
		},
		{
			name:    "first version line wins",
			content: "version: 1.0.0\nversion: 2.0.0\n",
			want:    "1.0.0",
			found:   true,
		},
		{
			name:    "no version line",
			content: "# Demo\njust text\n",
			want:    "",
			found:   false,
		},
		{
			name:    "empty value",
			content: "version:\n",
			want:    "",
			found:   true,
		},
		{
			name:    "empty document",
			content: "",
			want:    "",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FrontMatterVersion(tt.content)
			if got != tt.want || found != tt.found {
				t.Errorf("FrontMatterVersion() = (%q, %v), want (%q, %v)", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestLocalPath(t *testing.T) {
	got := LocalPath(".claude/skills", "rpa-challenge")
	want := filepath.Join(".claude/skills", "rpa-challenge", "SKILL.md")
	if got != want {
		t.Errorf("LocalPath() = %q, want %q", got, want)
	}
}

func TestSaveBody_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp", "nested", "skillmd.md")
	if err := SaveBody(path, "# Body"); err != nil {
		t.Fatalf("SaveBody() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "# Body" {
		t.Errorf("saved body = %q, want %q", data, "# Body")
	}
}

func TestSaveBody_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillmd.md")
	if err := SaveBody(path, "old"); err != nil {
		t.Fatalf("SaveBody() error = %v", err)
	}
	if err := SaveBody(path, "new"); err != nil {
		t.Fatalf("SaveBody() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "new" {
		t.Errorf("saved body = %q, want %q", data, "new")
	}
}

func TestTemplateContent(t *testing.T) {
	if !strings.Contains(TemplateContent, "version: 2.0.0") {
		t.Error("embedded template missing version front matter")
	}
	if version, ok := FrontMatterVersion(TemplateContent); !ok || version != TemplateVersion {
		t.Errorf("template front-matter version = %q, want %q", version, TemplateVersion)
	}
}

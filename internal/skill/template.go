package skill

import (
	_ "embed"
)

// Compiled-in defaults for the update command. The template is a
// placeholder meant to be replaced (via --file or by editing) before
// each update run.
const (
	TemplateVersion     = "2.0.0"
	TemplateDescription = "Optimized skill description"
)

//go:embed template/SKILL.md
var TemplateContent string

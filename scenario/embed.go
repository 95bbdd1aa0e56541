package scenario

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is the on-disk directory that overrides the embedded scripts.
const Dir = "scenario/scripts"

// LoadScript returns the named script, preferring the on-disk copy. The
// .tengo extension is optional.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptName(name)
	if data, err := os.ReadFile(filepath.Join(Dir, clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile("scripts/" + clean)
}

// Names lists the embedded scripts.
func Names() []string {
	entries, err := ScriptsFS.ReadDir("scripts")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	return out
}

func cleanScriptName(name string) string {
	s := filepath.Base(filepath.ToSlash(strings.TrimSpace(name)))
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return s
}

package scene

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var scenesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// readSpec returns the raw bytes for a scene spec. An on-disk copy under
// scene/ wins over the embedded default so hot-reload picks up edits.
func readSpec(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scenesFS.ReadFile(clean)
}

// LoadScript returns a policy script by scene-relative name, again
// preferring the on-disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanSpecPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scene/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scene/")
	s = strings.TrimPrefix(s, "scripts/")
	return fmt.Sprintf("scripts/%s", s)
}

func diskPath(clean string) string {
	return filepath.Join("scene", filepath.FromSlash(clean))
}

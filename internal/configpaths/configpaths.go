// Package configpaths resolves the candidate locations of joypad config
// files.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "joypad"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// ConfigCandidatePaths returns config file candidates per format, lowest
// priority first. A user-supplied path, when set, is appended last to its
// format's list so it overrides the defaults.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if os.Geteuid() == 0 {
		dirs = append(dirs, filepath.Join(string(os.PathSeparator), "etc", appDir))
	}
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, ".")

	for _, d := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(d, "joypad.json"))
		yamlPaths = append(yamlPaths,
			filepath.Join(d, "joypad.yaml"),
			filepath.Join(d, "joypad.yml"),
		)
		tomlPaths = append(tomlPaths, filepath.Join(d, "joypad.toml"))
	}

	switch strings.ToLower(filepath.Ext(userCfg)) {
	case ".json":
		jsonPaths = append(jsonPaths, userCfg)
	case ".yaml", ".yml":
		yamlPaths = append(yamlPaths, userCfg)
	case ".toml":
		tomlPaths = append(tomlPaths, userCfg)
	}
	return jsonPaths, yamlPaths, tomlPaths
}

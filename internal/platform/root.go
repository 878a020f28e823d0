package platform

import (
	"os"
	"path/filepath"
)

// ConfigFileNames are the accepted config file names, in lookup order.
var ConfigFileNames = []string{"fitbook.yaml", "fitbook.yml", "fitbook.toml"}

// FindConfigFile returns the first config file found in dirs, searched in
// order. It returns "" when there is none.
func FindConfigFile(dirs ...string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range ConfigFileNames {
			if path := filepath.Join(dir, name); hasFile(path) {
				return path
			}
		}
	}
	return ""
}

// ConfigDirs returns the default search path: the working directory, then
// $HOME/.fitbook.
func ConfigDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fitbook"))
	}
	return dirs
}

func hasFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

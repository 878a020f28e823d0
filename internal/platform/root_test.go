package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigFile(t *testing.T) {
	// base/
	//   work/   (fitbook.toml)
	//   home/   (fitbook.yaml, fitbook.toml)
	//   empty/
	baseDir := t.TempDir()
	workDir := filepath.Join(baseDir, "work")
	homeDir := filepath.Join(baseDir, "home")
	emptyDir := filepath.Join(baseDir, "empty")

	for _, dir := range []string{workDir, homeDir, emptyDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{
		filepath.Join(workDir, "fitbook.toml"),
		filepath.Join(homeDir, "fitbook.yaml"),
		filepath.Join(homeDir, "fitbook.toml"),
	} {
		if err := os.WriteFile(f, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(emptyDir, "fitbook.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		dirs []string
		want string
	}{
		{name: "Working Directory First", dirs: []string{workDir, homeDir}, want: filepath.Join(workDir, "fitbook.toml")},
		{name: "YAML Before TOML", dirs: []string{homeDir}, want: filepath.Join(homeDir, "fitbook.yaml")},
		{name: "Falls Through", dirs: []string{emptyDir, "", homeDir}, want: filepath.Join(homeDir, "fitbook.yaml")},
		{name: "Directories Are Ignored", dirs: []string{emptyDir}, want: ""},
		{name: "Nothing To Search", dirs: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindConfigFile(tt.dirs...); got != tt.want {
				t.Errorf("FindConfigFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDataPath(t *testing.T) {
	inTemp := filepath.Join(os.TempDir(), "some", "fitbook.yaml")

	tests := []struct {
		name      string
		path      string
		forceTemp bool
		want      string
	}{
		{"Default Path", "", false, DefaultDataFile},
		{"Real Path Untouched", "clients.json", false, "clients.json"},
		{"Sandboxed", "/home/coach/clients.json", true, filepath.Join(os.TempDir(), "fitbook-dev", "clients.json")},
		{"Already In Temp", inTemp, true, inTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDataPath(tt.path, tt.forceTemp); got != tt.want {
				t.Errorf("ResolveDataPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

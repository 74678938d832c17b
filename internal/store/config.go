package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type GlobalConfig struct {
	CurrentWorkspace string `json:"currentWorkspace,omitempty"`

	// Workspaces is an optional registry of named workspace roots.
	// When set, these entries take precedence over ~/.reelist/workspaces/<name>.
	Workspaces map[string]WorkspaceRef `json:"workspaces,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme forces the palette ("dark" or "light"); empty means auto-detect.
	Theme string `json:"theme,omitempty"`
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

type WorkspaceRef struct {
	// Path is the workspace root directory.
	Path string `json:"path"`

	// Kind is an optional hint for the UI ("local", ...).
	Kind string `json:"kind,omitempty"`

	// LastOpened is an optional timestamp for MRU selection in UIs.
	LastOpened string `json:"lastOpened,omitempty"`
}

type WorkspaceEntry struct {
	Name   string       `json:"name"`
	Ref    WorkspaceRef `json:"ref"`
	Legacy bool         `json:"legacy"`
}

// ConfigDir resolves the global config directory. REELIST_CONFIG_DIR overrides
// it, which also keeps unit tests away from the real ~/.reelist.
func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("REELIST_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".reelist"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig never fails on a missing file; first run has no config yet.
func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &GlobalConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "config.json")

	// Keep one backup generation of the previous config. Failing to write the
	// backup never blocks the save itself.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	// The CLI and the TUI can save at the same time, hence a unique temp file
	// per writer plus an atomic rename.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// NormalizeWorkspaceName validates a workspace name. Names double as directory
// names under the config dir, so empty is the only thing rejected here.
func NormalizeWorkspaceName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("workspace name is empty")
	}
	return name, nil
}

// LegacyWorkspaceDir is the registry-independent location under the config
// dir. `workspace init` always creates here; registry entries may point
// anywhere else.
func LegacyWorkspaceDir(name string) (string, error) {
	name, err := NormalizeWorkspaceName(name)
	if err != nil {
		return "", err
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "workspaces", name), nil
}

// ListWorkspaces returns the sorted names of every known workspace, whether it
// lives under ~/.reelist/workspaces or only in the registry.
func ListWorkspaces() ([]string, error) {
	entries, err := ListWorkspaceEntries()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// legacyWorkspaceEntries scans the on-disk workspace directories under wsRoot.
// A missing root is normal and yields an empty map.
func legacyWorkspaceEntries(wsRoot string) (map[string]WorkspaceEntry, error) {
	out := map[string]WorkspaceEntry{}
	ents, err := os.ReadDir(wsRoot)
	if errors.Is(err, os.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		name := strings.TrimSpace(e.Name())
		if name == "" {
			continue
		}
		out[name] = WorkspaceEntry{
			Name: name,
			Ref: WorkspaceRef{
				Path: filepath.Join(wsRoot, name),
				Kind: "legacy",
			},
			Legacy: true,
		}
	}
	return out, nil
}

// ListWorkspaceEntries returns a stable list of known workspaces with path details.
//
// It unions directory workspaces under `~/.reelist/workspaces/<name>` and the
// global registry in `config.json`. If a name exists in both places, the
// registry entry wins (Legacy=false).
func ListWorkspaceEntries() ([]WorkspaceEntry, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	byName, err := legacyWorkspaceEntries(filepath.Join(dir, "workspaces"))
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	for name, ref := range cfg.Workspaces {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ref.Path = filepath.Clean(strings.TrimSpace(ref.Path))
		byName[name] = WorkspaceEntry{Name: name, Ref: ref, Legacy: false}
	}

	out := make([]WorkspaceEntry, 0, len(byName))
	for _, entry := range byName {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

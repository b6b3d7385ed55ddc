package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	zenithDir   = ".zenith"
	projectsDir = "projects"
)

// WorkDir returns the workspace data directory.
func WorkDir() string {
	return zenithDir
}

// ResolveProjectName checks for name collisions in the projects directory
// and returns a unique name. If the baseName is not taken, it returns
// as-is. If taken, it appends -2, -3, etc. until a unique name is found.
func ResolveProjectName(baseName string) (string, error) {
	projectsPath := filepath.Join(zenithDir, projectsDir)

	entries, err := os.ReadDir(projectsPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Directory doesn't exist yet, so no collisions possible
			return baseName, nil
		}
		return "", fmt.Errorf("failed to read projects directory: %w", err)
	}

	// Build a set of existing names (extracted from folder names)
	existingNames := make(map[string]bool)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// Folder format is <id>-<name>, so we split on first hyphen
		parts := strings.SplitN(entry.Name(), "-", 2)
		if len(parts) == 2 {
			existingNames[parts[1]] = true
		}
	}

	if !existingNames[baseName] {
		return baseName, nil
	}

	for suffix := 2; ; suffix++ {
		candidate := fmt.Sprintf("%s-%d", baseName, suffix)
		if !existingNames[candidate] {
			return candidate, nil
		}
	}
}

// CreateProjectFolder creates the project folder with project.json and an
// empty activity log. The folder is created at .zenith/projects/<id>-<name>/
func CreateProjectFolder(p *Project) error {
	folderPath := projectFolderPath(p)

	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return fmt.Errorf("failed to create project folder: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.WriteFile(filepath.Join(folderPath, "project.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write project.json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(folderPath, activityLogFileName), []byte{}, 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", activityLogFileName, err)
	}

	return nil
}

func projectFolderPath(p *Project) string {
	folderName := fmt.Sprintf("%s-%s", p.ID, p.Name)
	return filepath.Join(zenithDir, projectsDir, folderName)
}

// FindProjectFolder finds a project folder by name suffix in
// .zenith/projects/. Returns the full path to the project folder.
func FindProjectFolder(name string) (string, error) {
	projectsPath := filepath.Join(zenithDir, projectsDir)

	entries, err := os.ReadDir(projectsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no projects found. Run 'zenith project create <name>' first")
		}
		return "", fmt.Errorf("failed to read projects directory: %w", err)
	}

	var matches []string
	suffix := "-" + name

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			matches = append(matches, entry.Name())
		}
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("project not found: %s", name)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("multiple projects match '%s': %v", name, matches)
	}

	return filepath.Join(projectsPath, matches[0]), nil
}

// ListProjectFolders returns the folder paths of every stored project.
func ListProjectFolders() ([]string, error) {
	projectsPath := filepath.Join(zenithDir, projectsDir)

	entries, err := os.ReadDir(projectsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, filepath.Join(projectsPath, entry.Name()))
		}
	}
	return folders, nil
}

// Load reads and parses project.json from a project directory.
func Load(projectDir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(projectDir, "project.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read project.json: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project.json: %w", err)
	}

	return &p, nil
}

// Save atomically writes project.json to the project directory.
// Uses a temp file + rename to ensure atomic writes.
func Save(projectDir string, p *Project) error {
	path := filepath.Join(projectDir, "project.json")
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
)

var packageNameExpr = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	// Project root marker files/directories, in priority order
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New(markers ...string) *Detector {
	if len(markers) == 0 {
		markers = []string{
			"package.json",     // Node projects
			"vue.config.js",    // Vue CLI projects
			"vite.config.ts",   // Vite projects
			"vite.config.js",   // Vite projects
			"svelte.config.js", // SvelteKit projects
			".git",             // Generic VCS marker
		}
	}
	return &Detector{markers: markers, fs: afs.New()}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	// If it's a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	info := &Project{
		Type:     "unknown",
		RootPath: startDir,
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	info.Name = d.extractProjectName(info.RootPath)
	return info, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return "", ""
}

// extractProjectName reads package name or falls back to the directory name
func (d *Detector) extractProjectName(rootPath string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), filepath.Join(rootPath, "package.json"))
	if err != nil {
		return filepath.Base(rootPath)
	}
	matches := packageNameExpr.FindSubmatch(content)
	if len(matches) < 2 {
		return filepath.Base(rootPath)
	}
	return string(matches[1])
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "package.json", "vue.config.js", "vite.config.ts", "vite.config.js", "svelte.config.js":
		return "javascript"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

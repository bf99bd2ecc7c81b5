package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Workspace naming
const (
	WorkspacePrefix = "clipcut-"

	VideoFileName = "video.mp4"
	AudioFileName = "audio.mp4"
)

// Workspace is a scoped temporary directory owned by a single run. It is
// acquired at the start of the run and removed, with everything in it, on
// every exit path.
type Workspace struct {
	Dir string
}

// NewWorkspace creates a uniquely named temp directory under the system
// temp dir.
func NewWorkspace() (*Workspace, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workspace id: %w", err)
	}

	dir, err := os.MkdirTemp("", WorkspacePrefix+id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// Path returns the absolute path of a file inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Cleanup removes the workspace directory and all of its contents.
func (w *Workspace) Cleanup() error {
	if w == nil || w.Dir == "" {
		return nil
	}
	return os.RemoveAll(w.Dir)
}

// CreateDirectoryIfNotExists creates the directory if it doesn't exist.
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" || dirPath == "." {
		return nil
	}
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// EnsureOutputDirectory creates the parent directory of an output file path.
func EnsureOutputDirectory(outputPath string) error {
	return CreateDirectoryIfNotExists(filepath.Dir(outputPath))
}

// LookupTool resolves an external tool on PATH. Absolute paths are checked
// directly so a configured ffmpeg location outside PATH still works.
func LookupTool(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("tool not found at %s: %w", name, err)
		}
		return name, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("tool %q not found on PATH: %w", name, err)
	}
	return path, nil
}

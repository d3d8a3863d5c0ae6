// Package filesystem reads and rewrites target files inside the project
// directory being patched.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/webchat-preview/internal/pathfilter"
)

// Service provides file operations rooted at a target directory.
type Service struct {
	root       string
	pathFilter *pathfilter.PathFilter
}

// Staged is a file's new content written beside it, waiting to replace it.
type Staged struct {
	Path     string
	fullPath string
	tempPath string
}

// New creates a new Service rooted at root.
func New(root string, pf *pathfilter.PathFilter) *Service {
	absPath, _ := filepath.Abs(root)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		root:       absPath,
		pathFilter: pf,
	}
}

// ResolvePath resolves a relative path within the target directory and
// validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	if relativePath == "" {
		return "", fmt.Errorf("empty path")
	}
	if filepath.IsAbs(relativePath) {
		return "", fmt.Errorf("absolute path not allowed: %s", relativePath)
	}

	fullPath := filepath.Join(s.root, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within the target directory
	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

func (s *Service) resolveAllowed(path string) (string, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return "", err
	}
	if !s.pathFilter.IsAllowed(path) {
		return "", fmt.Errorf("access denied: %s", path)
	}
	return fullPath, nil
}

// Read returns the full text of a target file.
func (s *Service) Read(path string) (string, error) {
	fullPath, err := s.resolveAllowed(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(fullPath)
	if err == nil && info.IsDir() {
		return "", fmt.Errorf("cannot patch a directory: %s", path)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("permission denied: %s", path)
		}
		return "", fmt.Errorf("failed to read file: %s - %w", path, err)
	}

	return string(content), nil
}

// Stage writes content to a temporary file beside path. The target
// itself is not touched until Commit.
func (s *Service) Stage(path, content string) (Staged, error) {
	fullPath, err := s.resolveAllowed(path)
	if err != nil {
		return Staged{}, err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(fullPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), "."+filepath.Base(fullPath)+".preview-*")
	if err != nil {
		return Staged{}, fmt.Errorf("failed to stage file: %s - %w", path, err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return Staged{}, fmt.Errorf("failed to stage file: %s - %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return Staged{}, fmt.Errorf("failed to stage file: %s - %w", path, err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return Staged{}, fmt.Errorf("failed to stage file: %s - %w", path, err)
	}

	return Staged{Path: path, fullPath: fullPath, tempPath: tempPath}, nil
}

// Commit moves every staged file over its target.
func (s *Service) Commit(staged []Staged) error {
	for i, st := range staged {
		if err := os.Rename(st.tempPath, st.fullPath); err != nil {
			s.Discard(staged[i:])
			return fmt.Errorf("failed to write file: %s - %w", st.Path, err)
		}
	}
	return nil
}

// Discard removes staged temporary files.
func (s *Service) Discard(staged []Staged) {
	for _, st := range staged {
		os.Remove(st.tempPath)
	}
}

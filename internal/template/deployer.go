package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/earlbalai/rn-blitz/internal/defs"
)

// Deployer writes embedded file sets into a project directory.
type Deployer interface {
	// Deploy writes every file of the named set under projectRoot,
	// overwriting existing files. It returns the written paths relative to
	// projectRoot, in walk order.
	Deploy(ctx context.Context, projectRoot, set string) ([]string, error)
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys fs.FS
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from EmbeddedTemplates; in tests use
// testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys}
}

// Deploy walks the set and writes each file to projectRoot.
func (d *deployer) Deploy(ctx context.Context, projectRoot, set string) ([]string, error) {
	projectRoot = filepath.Clean(projectRoot)

	sub, err := d.subtree(set)
	if err != nil {
		return nil, err
	}

	var written []string
	walkErr := fs.WalkDir(sub, ".", func(rel string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if entry.IsDir() {
			return nil
		}

		if err := validateDeployPath(projectRoot, rel); err != nil {
			return err
		}

		content, err := fs.ReadFile(sub, rel)
		if err != nil {
			return fmt.Errorf("template deploy read %q: %w", rel, err)
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return fmt.Errorf("template deploy write %q: %w", destPath, err)
		}

		written = append(written, rel)
		return nil
	})
	if walkErr != nil {
		return written, walkErr
	}
	return written, nil
}

func (d *deployer) subtree(set string) (fs.FS, error) {
	set = path.Clean(set)
	info, err := fs.Stat(d.fsys, set)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: set %q", ErrTemplateNotFound, set)
	}
	return fs.Sub(d.fsys, set)
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}

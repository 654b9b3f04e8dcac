package codegen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// FS is a pseudo-filesystem that supports batch-writing its contents to the
// real filesystem, or batch-comparing its contents to the real filesystem.
// Its intended use is for code generators whose output is committed to
// version control.
//
// In such cases, the normal behavior of a generator is to write files to
// disk, but in CI, that behavior should change to verify that what is
// already on disk is identical to the results of code generation. FS
// supports these related behaviors through its Write() and Verify() methods,
// respectively.
//
// Files may not be removed once [FS.Add]ed. If a path conflict occurs when
// adding a new file or merging another FS, an error is returned.
type FS struct {
	mu    sync.Mutex
	files map[string]fsEntry
}

type fsEntry struct {
	data  []byte
	owner string
}

// NewFS creates a new FS, ready for use.
func NewFS() *FS {
	return &FS{
		files: make(map[string]fsEntry),
	}
}

// Add adds one or more files to the FS. An error is returned if any of the
// provided files would conflict with a file already added.
func (wd *FS) Add(owner string, fl ...File) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.add(owner, fl...)
}

func (wd *FS) add(owner string, fl ...File) error {
	var result *multierror.Error
	for _, f := range fl {
		if rf, has := wd.files[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("cannot create %s for %q, already created for %q", f.RelativePath, owner, rf.owner))
		}
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, fmt.Errorf("files added to an FS must have relative paths, got %s from %q", f.RelativePath, owner))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, f := range fl {
		wd.files[f.RelativePath] = fsEntry{data: f.Data, owner: owner}
	}
	return nil
}

// Merge combines all the entries from the provided FS into the callee FS.
// Duplicate paths result in an error.
func (wd *FS) Merge(wd2 *FS) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	var result *multierror.Error

	for _, it := range wd2.toSlice() {
		result = multierror.Append(result, wd.add(wd2.files[it.path].owner, File{RelativePath: it.path, Data: it.contents}))
	}

	return result.ErrorOrNil()
}

// Len returns the number of files in the FS.
func (wd *FS) Len() int {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return len(wd.files)
}

// AsFiles returns the contents of the FS as a Files, sorted by path.
func (wd *FS) AsFiles() Files {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	fl := make(Files, 0, len(wd.files))
	for _, it := range wd.toSlice() {
		fl = append(fl, File{RelativePath: it.path, Data: it.contents})
	}
	return fl
}

// Paths returns the sorted relative paths of all files in the FS.
func (wd *FS) Paths() []string {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	paths := make([]string, 0, len(wd.files))
	for _, it := range wd.toSlice() {
		paths = append(paths, it.path)
	}
	return paths
}

// Verify checks the contents of each file against the filesystem. It emits
// an error if any of its contained files differ.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map for comparison. prefix may be an absolute path.
func (wd *FS) Verify(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)
	var mu sync.Mutex
	var result *multierror.Error

	for _, it := range wd.toSlice() {
		item := it
		g.Go(func() error {
			ipath := filepath.Join(prefix, item.path)
			if _, err := os.Stat(ipath); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					mu.Lock()
					result = multierror.Append(result, fmt.Errorf("%s: generated file should exist, but does not", ipath))
					mu.Unlock()
					return nil
				}
				return fmt.Errorf("%s: could not stat generated file: %w", ipath, err)
			}

			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}
			dstr := cmp.Diff(string(ob), string(item.contents))
			if dstr != "" {
				mu.Lock()
				result = multierror.Append(result, fmt.Errorf("%s would have changed:\n\n%s", ipath, dstr))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}

	return result.ErrorOrNil()
}

// Write writes all of the files to their indicated paths.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map for writing. prefix may be an absolute path.
func (wd *FS) Write(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	for _, item := range wd.toSlice() {
		it := item
		g.Go(func() error {
			path := filepath.Join(prefix, it.path)
			err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
			if err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}

			if err := os.WriteFile(path, it.contents, 0644); err != nil {
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

type writeSlice []struct {
	path     string
	contents []byte
}

func (wd *FS) toSlice() writeSlice {
	sl := make(writeSlice, 0, len(wd.files))
	type ws struct {
		path     string
		contents []byte
	}

	for k, v := range wd.files {
		sl = append(sl, ws{
			path:     k,
			contents: v.data,
		})
	}

	sort.Slice(sl, func(i, j int) bool {
		return sl[i].path < sl[j].path
	})

	return sl
}

package codegen

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// File represents a single generated file, prior to being written to disk.
type File struct {
	// RelativePath is the path to which the generated file should be
	// written, relative to some externally chosen output root.
	RelativePath string

	// Data is the contents of the generated file.
	Data []byte

	// From is the stack of jennies responsible for producing this File.
	From []NamedJenny
}

// NewFile returns a File with the provided path, contents and provenance.
func NewFile(path string, data []byte, from ...NamedJenny) *File {
	return &File{
		RelativePath: path,
		Data:         data,
		From:         from,
	}
}

// Exists indicates whether the File is populated. The zero value of a File
// is returned by jennies to indicate a no-op.
func (f File) Exists() bool {
	return f.RelativePath != ""
}

// Owner returns the name of the jenny that produced this File, or an empty
// string if provenance was not recorded.
func (f File) Owner() string {
	if len(f.From) == 0 {
		return ""
	}
	return f.From[len(f.From)-1].JennyName()
}

func (f File) validate() error {
	var result *multierror.Error
	if !f.Exists() {
		result = multierror.Append(result, fmt.Errorf("file with empty RelativePath"))
	}
	if filepath.IsAbs(f.RelativePath) {
		result = multierror.Append(result, fmt.Errorf("%s: generated files must have relative paths", f.RelativePath))
	}
	if len(f.Data) == 0 {
		result = multierror.Append(result, fmt.Errorf("%s: generated file has no contents", f.RelativePath))
	}
	return result.ErrorOrNil()
}

// Files is a set of File objects sharing one relative path namespace.
type Files []File

// Validate checks that every File has a nonempty relative path and contents,
// and that no two Files share a path.
func (fl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]int, len(fl))
	for i, f := range fl {
		if err := f.validate(); err != nil {
			result = multierror.Append(result, err)
		}
		if j, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s: duplicate path, produced by both %q and %q", f.RelativePath, fl[j].Owner(), f.Owner()))
			continue
		}
		seen[f.RelativePath] = i
	}
	return result.ErrorOrNil()
}

// FileMapper takes a File and transforms it into a new File, for use as a
// postprocessing step after generation.
type FileMapper func(File) (File, error)

// Package codegen provides the substrate for this repository's code
// generators: a File/FS model with batch write and CI verify modes, and
// small generator ("jenny") interfaces for composing generation pipelines.
package codegen

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// NamedJenny is the interface shared by all jennies, requiring them to
// report their name. Jenny names appear in error messages and in the
// provenance recorded on each generated File.
type NamedJenny interface {
	// JennyName returns the name of the generator.
	JennyName() string
}

// OneToMany is a jenny that takes one Input and produces zero to n files.
//
// A nil, nil return is used to indicate the jenny had nothing to do for the
// provided Input.
type OneToMany[Input any] interface {
	NamedJenny

	Generate(Input) (Files, error)
}

// ManyToMany is a jenny that takes all Inputs together and produces zero to
// n files.
//
// A nil, nil return is used to indicate the jenny had nothing to do for the
// provided Inputs.
type ManyToMany[Input any] interface {
	NamedJenny

	Generate([]Input) (Files, error)
}

// GenerateFS runs a OneToMany jenny over each provided input, validates the
// emitted files, applies any postprocessors, and accumulates everything into
// a single FS. Path uniqueness is enforced across the aggregate set.
//
// Errors from individual inputs are accumulated; generation continues across
// the remaining inputs so that one bad input reports alongside its peers.
func GenerateFS[Input any](j OneToMany[Input], inputs []Input, post ...FileMapper) (*FS, error) {
	jfs := NewFS()
	result := new(multierror.Error)

	for _, in := range inputs {
		fl, err := j.Generate(in)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", j.JennyName(), err))
			continue
		}
		if err := addFiles(jfs, j, fl, post); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, multierror.Flatten(result)
	}
	return jfs, nil
}

func addFiles[Input any](jfs *FS, j OneToMany[Input], fl Files, post []FileMapper) error {
	if len(fl) == 0 {
		return nil
	}
	if err := fl.Validate(); err != nil {
		return fmt.Errorf("%s returned invalid Files: %w", j.JennyName(), err)
	}

	for i, f := range fl {
		for _, p := range post {
			of, err := p(f)
			if err != nil {
				return fmt.Errorf("postprocessing of %s from %s failed: %w", f.RelativePath, j.JennyName(), err)
			}
			f = of
		}
		fl[i] = f
	}

	return jfs.Add(j.JennyName(), fl...)
}

package javagen

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dkleszyk/java-function-extra/codegen"
	"github.com/dkleszyk/java-function-extra/shape"
	"github.com/dkleszyk/java-function-extra/sig"
)

// Options configures a Generator. The zero value generates the standard
// interface set.
type Options struct {
	// BasePackage overrides DefaultBasePackage.
	BasePackage string
	// Author overrides DefaultAuthor in emitted @author lines.
	Author string
	// Reserved lists additional names to exclude from generation, on top
	// of the built-in JDK set.
	Reserved []string
}

// Result is the outcome of one generation run.
type Result struct {
	// FS holds every emitted file.
	FS *codegen.FS
	// Names lists the emitted interface names in enumeration order.
	Names []string
}

// Generator runs the full pipeline: enumerate the candidate signature
// space, filter it, synthesize a descriptor per survivor, drop reserved
// names, derive capabilities, and render everything into an FS.
//
// A run is deterministic: the same options always produce byte-identical
// files.
type Generator struct {
	opts     Options
	rules    []sig.Rule
	reserved map[string]bool
}

// New returns a Generator for the given options.
func New(opts Options) *Generator {
	reserved := shape.ReservedNames()
	for _, n := range opts.Reserved {
		reserved[n] = true
	}
	return &Generator{
		opts:     opts,
		rules:    sig.DefaultRules(),
		reserved: reserved,
	}
}

func (g *Generator) JennyName() string {
	return "JavaFunctionGenerator"
}

// Generate runs the pipeline. Descriptor synthesis runs one goroutine per
// argument count; the name accumulator is shared under a lock so that a
// name collision between two non-reserved descriptors fails the run
// deterministically instead of silently overwriting.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	var mu sync.Mutex
	names := make(map[string]string)
	strata := make([][]*shape.Descriptor, sig.MaxArgc+1)

	eg, ctx := errgroup.WithContext(ctx)
	for argc := 0; argc <= sig.MaxArgc; argc++ {
		eg.Go(func() error {
			var local []*shape.Descriptor
			for s := range sig.EnumerateArgc(argc) {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !sig.Admit(s, g.rules) {
					continue
				}
				d, err := shape.Synthesize(s)
				if err != nil {
					return err
				}
				if g.reserved[d.Name] {
					continue
				}

				mu.Lock()
				prev, dup := names[d.Name]
				if !dup {
					names[d.Name] = s.String()
				}
				mu.Unlock()
				if dup {
					return fmt.Errorf("name %s derived for both %s and %s", d.Name, prev, s)
				}

				local = append(local, d)
			}
			strata[argc] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var descriptors []*shape.Descriptor
	for _, stratum := range strata {
		descriptors = append(descriptors, stratum...)
	}

	jenny := &InterfaceJenny{BasePackage: g.opts.BasePackage, Author: g.opts.Author}
	fs, err := codegen.GenerateFS(jenny, descriptors)
	if err != nil {
		return nil, err
	}

	emitted := make([]string, len(descriptors))
	for i, d := range descriptors {
		emitted[i] = d.Name
	}
	return &Result{FS: fs, Names: emitted}, nil
}

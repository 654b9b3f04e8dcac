package javagen

import (
	"strings"

	"github.com/dkleszyk/java-function-extra/codegen"
	"github.com/dkleszyk/java-function-extra/shape"
)

// DefaultBasePackage is the package the core group is emitted into; the
// primitive and array groups land in subpackages of it.
const DefaultBasePackage = "me.dkleszyk.java.function.extra"

// DefaultAuthor is the @author credited on emitted interfaces.
const DefaultAuthor = "David Kleszyk <dkleszyk@gmail.com>"

// InterfaceJenny renders one descriptor into one Java interface file,
// routed to the package directory for the descriptor's group.
type InterfaceJenny struct {
	BasePackage string
	Author      string
}

func (j *InterfaceJenny) JennyName() string {
	return "JavaInterfaceJenny"
}

// PackageFor returns the Java package a group is emitted into.
func (j *InterfaceJenny) PackageFor(g shape.Group) string {
	base := j.BasePackage
	if base == "" {
		base = DefaultBasePackage
	}
	switch g {
	case shape.GroupPrimitive:
		return base + ".primitive"
	case shape.GroupArray:
		return base + ".array"
	default:
		return base
	}
}

// PathFor returns the file path of a descriptor's emitted interface,
// relative to the source root.
func (j *InterfaceJenny) PathFor(d *shape.Descriptor) string {
	return strings.ReplaceAll(j.PackageFor(d.Group), ".", "/") + "/" + d.Name + ".java"
}

// Generate renders the descriptor and returns its single file.
func (j *InterfaceJenny) Generate(d *shape.Descriptor) (codegen.Files, error) {
	author := j.Author
	if author == "" {
		author = DefaultAuthor
	}
	data := renderInterface(d, j.PackageFor(d.Group), author)
	return codegen.Files{{
		RelativePath: j.PathFor(d),
		Data:         data,
		From:         []codegen.NamedJenny{j},
	}}, nil
}

package codegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestFSAdd(t *testing.T) {
	is := is.New(t)

	fs := NewFS()
	is.NoErr(fs.Add("first", File{RelativePath: "x/a.txt", Data: []byte("a")}))
	is.Equal(fs.Len(), 1)

	err := fs.Add("second", File{RelativePath: "x/a.txt", Data: []byte("b")})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `already created for "first"`))
	is.Equal(fs.Len(), 1)

	err = fs.Add("third", File{RelativePath: "/abs/a.txt", Data: []byte("c")})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "relative paths"))
}

func TestFSMerge(t *testing.T) {
	is := is.New(t)

	fs := NewFS()
	is.NoErr(fs.Add("one", File{RelativePath: "a.txt", Data: []byte("a")}))

	other := NewFS()
	is.NoErr(other.Add("two", File{RelativePath: "b.txt", Data: []byte("b")}))
	is.NoErr(fs.Merge(other))
	is.Equal(fs.Len(), 2)

	conflict := NewFS()
	is.NoErr(conflict.Add("three", File{RelativePath: "a.txt", Data: []byte("dup")}))
	err := fs.Merge(conflict)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `already created for "one"`))
}

func TestFSAsFilesSorted(t *testing.T) {
	is := is.New(t)

	fs := NewFS()
	is.NoErr(fs.Add("j",
		File{RelativePath: "z.txt", Data: []byte("z")},
		File{RelativePath: "a.txt", Data: []byte("a")},
		File{RelativePath: "m/n.txt", Data: []byte("n")},
	))

	is.Equal(fs.Paths(), []string{"a.txt", "m/n.txt", "z.txt"})

	fl := fs.AsFiles()
	is.Equal(len(fl), 3)
	is.Equal(fl[0].RelativePath, "a.txt")
	is.Equal(string(fl[2].Data), "z")
}

func TestFSWriteThenVerify(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	fs := NewFS()
	is.NoErr(fs.Add("j",
		File{RelativePath: "pkg/A.java", Data: []byte("class A {}\n")},
		File{RelativePath: "pkg/sub/B.java", Data: []byte("class B {}\n")},
	))

	is.NoErr(fs.Write(ctx, dir))

	b, err := os.ReadFile(filepath.Join(dir, "pkg", "A.java"))
	is.NoErr(err)
	is.Equal(string(b), "class A {}\n")

	is.NoErr(fs.Verify(ctx, dir))
}

func TestFSVerifyMissingFile(t *testing.T) {
	is := is.New(t)

	fs := NewFS()
	is.NoErr(fs.Add("j", File{RelativePath: "gone.txt", Data: []byte("x")}))

	err := fs.Verify(context.Background(), t.TempDir())
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "should exist, but does not"))
}

func TestFSVerifyChangedFile(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	fs := NewFS()
	is.NoErr(fs.Add("j", File{RelativePath: "f.txt", Data: []byte("generated")}))
	is.NoErr(fs.Write(ctx, dir))

	is.NoErr(os.WriteFile(filepath.Join(dir, "f.txt"), []byte("edited by hand"), 0644))

	err := fs.Verify(ctx, dir)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "would have changed"))
}

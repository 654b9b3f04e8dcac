package javagen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/dkleszyk/java-function-extra/shape"
)

const licenseHeader = `/*
 * The MIT License
 *
 * Copyright 2022 David Kleszyk <dkleszyk@gmail.com>.
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
 * THE SOFTWARE.
 */
`

// Lambda bodies longer than this many characters break onto a continuation
// line after the arrow.
const lambdaSplitWidth = 64

// renderInterface produces the complete Java source of one interface.
// Method order is fixed: static methods before instance methods,
// alphabetical within each group.
func renderInterface(d *shape.Descriptor, pkg, author string) []byte {
	methods := append(d.Capabilities(), d.PrimaryMethod())

	var statics, instances []shape.Method
	importSet := map[string]bool{}
	for _, m := range methods {
		if m.Static {
			statics = append(statics, m)
		} else {
			instances = append(instances, m)
		}
		for _, imp := range m.Imports {
			importSet[imp] = true
		}
	}
	byName := func(ms []shape.Method) {
		sort.Slice(ms, func(i, j int) bool { return ms[i].Name < ms[j].Name })
	}
	byName(statics)
	byName(instances)

	var b bytes.Buffer
	b.WriteString(licenseHeader)
	fmt.Fprintf(&b, "package %s;\n\n", pkg)

	if len(importSet) > 0 {
		imports := make([]string, 0, len(importSet))
		for imp := range importSet {
			imports = append(imports, imp)
		}
		sort.Strings(imports)
		for _, imp := range imports {
			fmt.Fprintf(&b, "import %s;\n", imp)
		}
		b.WriteString("\n")
	}

	params := make([]docParam, len(d.TypeParams))
	for i, p := range d.TypeParams {
		params[i] = docParam{name: "<" + p.Symbol + ">", desc: p.Desc}
	}
	for _, l := range docBlock(0, d.Summary, []string{author}, params, "") {
		b.WriteString(l + "\n")
	}

	b.WriteString("@FunctionalInterface\n")
	fmt.Fprintf(&b, "public interface %s%s\n{\n", d.Name, d.GenericDecl())

	all := append(statics, instances...)
	for i, m := range all {
		writeMethod(&b, m)
		if i < len(all)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("}\n")
	return b.Bytes()
}

func writeMethod(b *bytes.Buffer, m shape.Method) {
	params := make([]docParam, len(m.Doc.Params))
	for i, p := range m.Doc.Params {
		params[i] = docParam{name: p.Name, desc: p.Desc}
	}
	for _, l := range docBlock(4, m.Doc.Desc, nil, params, m.Doc.Result) {
		b.WriteString(l + "\n")
	}

	if m.Abstract {
		if len(m.Params) == 0 {
			fmt.Fprintf(b, "    %s %s();\n", m.Returns, m.Name)
			return
		}
		fmt.Fprintf(b, "    %s %s(\n", m.Returns, m.Name)
		writeParams(b, m.Params, ");")
		return
	}

	kw := "default "
	if m.Static {
		kw = "static "
	}
	decl := "    " + kw
	if m.Generics != "" {
		decl += m.Generics + " "
	}
	decl += m.Returns + " " + m.Name

	if len(m.Params) == 0 {
		b.WriteString(decl + "()\n")
	} else {
		b.WriteString(decl + "(\n")
		writeParams(b, m.Params, ")")
	}

	b.WriteString("    {\n")
	for _, n := range m.NullChecks {
		fmt.Fprintf(b, "        Objects.requireNonNull(%s);\n", n)
	}
	writeBody(b, m.Body)
	b.WriteString("    }\n")
}

func writeParams(b *bytes.Buffer, params []shape.Param, closer string) {
	for i, p := range params {
		term := ","
		if i == len(params)-1 {
			term = closer
		}
		fmt.Fprintf(b, "        final %s %s%s\n", p.JavaType, p.Name, term)
	}
}

func writeBody(b *bytes.Buffer, l *shape.Lambda) {
	par := strings.Join(l.Params, ", ")
	if len(l.Params) != 1 {
		par = "(" + par + ")"
	}

	if l.Stmts != nil {
		fmt.Fprintf(b, "        return %s ->\n        {\n", par)
		for _, st := range l.Stmts {
			fmt.Fprintf(b, "            %s;\n", renderExpr(st))
		}
		b.WriteString("        };\n")
		return
	}

	body := renderExpr(l.Expr)
	sep := " "
	if len(par)+4+len(body) > lambdaSplitWidth {
		sep = "\n            "
	}
	fmt.Fprintf(b, "        return %s ->%s%s;\n", par, sep, body)
}

func renderExpr(e shape.Expr) string {
	switch x := e.(type) {
	case shape.ArgRef:
		return string(x)
	case shape.Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = renderExpr(a)
		}
		call := x.Name + "(" + strings.Join(args, ", ") + ")"
		if x.Recv != "" {
			return x.Recv + "." + call
		}
		return call
	case shape.Not:
		return "!" + renderExpr(x.X)
	case shape.AndAnd:
		return renderExpr(x.X) + " && " + renderExpr(x.Y)
	case shape.OrOr:
		return renderExpr(x.X) + " || " + renderExpr(x.Y)
	default:
		panic(fmt.Sprintf("javagen: unknown expression node %T", e))
	}
}

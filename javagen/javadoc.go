// Package javagen renders interface descriptors into Java source files and
// drives the generation pipeline that produces them.
package javagen

import "strings"

// Documentation prose arrives with "~" standing in for a non-breaking space
// inside javadoc inline tags ({@code~int}), so that wrapping treats each tag
// as a single word and never splits it. The substitution back to a real
// space happens per emitted line, after wrapping.

type docParam struct {
	name string
	desc string
}

// wrapText greedily wraps s into lines of at most width columns, splitting
// only at spaces. Words longer than the width are kept whole.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	cur := ""
	for _, w := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func nbsp(s string) string {
	return strings.ReplaceAll(s, "~", " ")
}

// docBlock renders a javadoc comment at the given indent: the wrapped
// description, then optional @author, @param, and @return sections, each
// separated by a bare " *" line. @param descriptions are aligned in a
// column past the longest parameter name and wrap with a hanging indent;
// @return continuation lines hang past the tag.
func docBlock(indent int, description string, authors []string, params []docParam, result string) []string {
	pad := strings.Repeat(" ", indent)
	base := 80 - 3 - indent

	lines := []string{pad + "/**"}
	for _, l := range wrapText(description, base) {
		lines = append(lines, pad+" * "+nbsp(l))
	}

	if len(authors) > 0 {
		lines = append(lines, pad+" *")
		for _, a := range authors {
			lines = append(lines, pad+" * @author "+a)
		}
	}

	if len(params) > 0 {
		lines = append(lines, pad+" *")
		align := 0
		for _, p := range params {
			if len(p.name) > align {
				align = len(p.name)
			}
		}
		align++
		for _, p := range params {
			prefix := "@param " + p.name + strings.Repeat(" ", align-len(p.name))
			cont := strings.Repeat(" ", len(prefix))
			for i, l := range wrapText(p.desc, base-7-align) {
				if i == 0 {
					lines = append(lines, pad+" * "+prefix+nbsp(l))
				} else {
					lines = append(lines, pad+" * "+cont+nbsp(l))
				}
			}
		}
	}

	if result != "" {
		lines = append(lines, pad+" *")
		for i, l := range wrapText(result, base-8) {
			if i == 0 {
				lines = append(lines, pad+" * @return "+nbsp(l))
			} else {
				lines = append(lines, pad+" *         "+nbsp(l))
			}
		}
	}

	lines = append(lines, pad+" */")
	return lines
}

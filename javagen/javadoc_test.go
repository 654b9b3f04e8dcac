package javagen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrapText mismatch (-want +got):\n%s", diff)
	}

	if got := wrapText("", 10); got != nil {
		t.Errorf("expected no lines for empty input, got %v", got)
	}

	// A word longer than the width stays whole on its own line.
	got = wrapText("a extraordinarily b", 5)
	want = []string{"a", "extraordinarily", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrapText long word mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapTextKeepsInlineTagsWhole(t *testing.T) {
	// The tilde makes the whole tag one word; no line may contain a
	// partial tag once wrapped.
	desc := strings.Repeat("pad ", 16) + "{@code~boolean[]} tail"
	for _, l := range wrapText(desc, 30) {
		line := nbsp(l)
		if strings.Contains(line, "{@code") && !strings.Contains(line, "{@code boolean[]}") {
			t.Errorf("inline tag split across lines: %q", line)
		}
	}
}

func TestDocBlockClassLevel(t *testing.T) {
	got := docBlock(0,
		"Represents an operator that takes a single {@code~byte}-valued argument and produces a {@code~byte}-valued result.",
		[]string{"David Kleszyk <dkleszyk@gmail.com>"},
		nil, "")
	want := []string{
		"/**",
		" * Represents an operator that takes a single {@code byte}-valued argument and",
		" * produces a {@code byte}-valued result.",
		" *",
		" * @author David Kleszyk <dkleszyk@gmail.com>",
		" */",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("docBlock mismatch (-want +got):\n%s", diff)
	}
}

func TestDocBlockParamAlignment(t *testing.T) {
	got := docBlock(4, "Does a thing.", nil,
		[]docParam{
			{name: "x", desc: "The first."},
			{name: "longer", desc: "The second."},
		},
		"The result.")
	want := []string{
		"    /**",
		"     * Does a thing.",
		"     *",
		"     * @param x      The first.",
		"     * @param longer The second.",
		"     *",
		"     * @return The result.",
		"     */",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("docBlock mismatch (-want +got):\n%s", diff)
	}
}

func TestDocBlockHangingIndent(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 30))
	lines := docBlock(4, "Desc.", nil, []docParam{{name: "after", desc: long}}, long)

	var paramCont, returnCont bool
	for i, l := range lines {
		if strings.Contains(l, "@param after ") && i+1 < len(lines) {
			next := lines[i+1]
			paramCont = strings.HasPrefix(next, "     * "+strings.Repeat(" ", len("@param after ")))
		}
		if strings.Contains(l, "@return ") && i+1 < len(lines) {
			next := lines[i+1]
			returnCont = strings.HasPrefix(next, "     *         ")
		}
	}
	if !paramCont {
		t.Error("expected @param continuation lines to hang past the name column")
	}
	if !returnCont {
		t.Error("expected @return continuation lines to hang past the tag")
	}
}

func TestDocBlockLineWidth(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 40))
	for _, l := range docBlock(4, long, nil, []docParam{{name: "x", desc: long}}, long) {
		if len(l) > 80 {
			t.Errorf("line exceeds 80 columns (%d): %q", len(l), l)
		}
	}
}

package mdast

import (
	"testing"
)

func TestParse_BlockKinds(t *testing.T) {
	input := "# Title\n\nA paragraph.\n\n---\n\n```\ncode\n```\n"
	nodes, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(nodes))
	}

	h, ok := nodes[0].(*Heading)
	if !ok {
		t.Fatalf("expected heading first, got %T", nodes[0])
	}
	if h.Level != 1 {
		t.Errorf("expected level 1, got %d", h.Level)
	}
	if got := PlainText(h.Children); got != "Title" {
		t.Errorf("expected heading text %q, got %q", "Title", got)
	}

	if _, ok := nodes[1].(*Paragraph); !ok {
		t.Errorf("expected paragraph second, got %T", nodes[1])
	}
	if _, ok := nodes[2].(*ThematicBreak); !ok {
		t.Errorf("expected thematic break third, got %T", nodes[2])
	}

	code, ok := nodes[3].(*CodeBlock)
	if !ok {
		t.Fatalf("expected code block fourth, got %T", nodes[3])
	}
	if code.Raw != "code\n" {
		t.Errorf("expected raw %q, got %q", "code\n", code.Raw)
	}
}

func TestParse_InlineKinds(t *testing.T) {
	nodes, err := Parse("a **b** *i* `c` [l](http://u)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 block, got %d", len(nodes))
	}
	para, ok := nodes[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", nodes[0])
	}

	var strongs, emphases, spans, links int
	for _, n := range para.Children {
		switch n := n.(type) {
		case *Strong:
			strongs++
			if got := PlainText(n.Children); got != "b" {
				t.Errorf("expected strong text %q, got %q", "b", got)
			}
		case *Emphasis:
			emphases++
			if got := PlainText(n.Children); got != "i" {
				t.Errorf("expected emphasis text %q, got %q", "i", got)
			}
		case *CodeSpan:
			spans++
			if n.Raw != "c" {
				t.Errorf("expected codespan raw %q, got %q", "c", n.Raw)
			}
		case *Link:
			links++
			if n.URL != "http://u" {
				t.Errorf("expected url %q, got %q", "http://u", n.URL)
			}
			if got := PlainText(n.Children); got != "l" {
				t.Errorf("expected link text %q, got %q", "l", got)
			}
		}
	}
	if strongs != 1 || emphases != 1 || spans != 1 || links != 1 {
		t.Errorf("expected one of each inline kind, got strong=%d emphasis=%d codespan=%d link=%d",
			strongs, emphases, spans, links)
	}
}

func TestParse_NestedList(t *testing.T) {
	nodes, err := Parse("- a\n- b\n  - nested\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 block, got %d", len(nodes))
	}
	list, ok := nodes[0].(*List)
	if !ok {
		t.Fatalf("expected list, got %T", nodes[0])
	}
	if list.Ordered {
		t.Errorf("expected unordered list")
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}

	second := list.Items[1]
	var nested *List
	for _, c := range second.Children {
		if l, ok := c.(*List); ok {
			nested = l
		}
	}
	if nested == nil {
		t.Fatalf("expected nested list inside second item")
	}
	if len(nested.Items) != 1 {
		t.Fatalf("expected 1 nested item, got %d", len(nested.Items))
	}
	if got := PlainText(nested.Items[0].Children); got != "nested" {
		t.Errorf("expected nested item text %q, got %q", "nested", got)
	}
}

func TestParse_OrderedList(t *testing.T) {
	nodes, err := Parse("1. first\n2. second\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := nodes[0].(*List)
	if !ok {
		t.Fatalf("expected list, got %T", nodes[0])
	}
	if !list.Ordered {
		t.Errorf("expected ordered list")
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
}

func TestParse_Blockquote(t *testing.T) {
	nodes, err := Parse("> quoted text\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bq, ok := nodes[0].(*Blockquote)
	if !ok {
		t.Fatalf("expected blockquote, got %T", nodes[0])
	}
	if got := PlainText(bq.Children); got != "quoted text" {
		t.Errorf("expected quoted text, got %q", got)
	}
}

func TestParse_InlineHTMLStripped(t *testing.T) {
	nodes, err := Parse("before <span>inside</span> after")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	para, ok := nodes[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", nodes[0])
	}
	got := PlainText(para.Children)
	if got != "before inside after" {
		t.Errorf("expected tags stripped, got %q", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	nodes, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("expected 0 blocks, got %d", len(nodes))
	}
}

func TestPlainText_Recursive(t *testing.T) {
	nodes := []Node{
		&Strong{Children: []Node{
			&Text{Raw: "a "},
			&Emphasis{Children: []Node{&Text{Raw: "b"}}},
		}},
		&LineBreak{},
		&Text{Raw: "c"},
	}
	if got := PlainText(nodes); got != "a b\nc" {
		t.Errorf("expected %q, got %q", "a b\nc", got)
	}
}

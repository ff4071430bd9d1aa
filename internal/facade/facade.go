// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package facade writes a generated docblock into a facade source file.
//
// The file is parsed with tree-sitter to find the facade class declaration.
// A doc comment directly above the declaration is replaced; otherwise the
// block is inserted before it, indented like the declaration. Splicing the
// same block twice leaves the file unchanged.
package facade

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	"github.com/albertocavalcante/facadoc/internal/phpname"
)

// ErrClassNotFound is returned when the source declares no matching class.
var ErrClassNotFound = errors.New("facade class not found")

const classQuery = `(class_declaration name: (name) @name) @class`

// declaration is a located class declaration.
type declaration struct {
	name  string
	start uint32 // first byte of the declaration
	// doc is the doc comment directly above the declaration, if any.
	doc *sitter.Node
}

// find locates the declaration of class in src. An empty class accepts the
// only class the file declares.
func find(ctx context.Context, src []byte, class string) (*declaration, error) {
	lang := php.GetLanguage()
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "parse facade source")
	}

	query, err := sitter.NewQuery([]byte(classQuery), lang)
	if err != nil {
		return nil, errors.Wrap(err, "compile class query")
	}
	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	want := phpname.ShortName(class)
	var found []*declaration
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		var decl declaration
		var node *sitter.Node
		for _, c := range m.Captures {
			switch query.CaptureNameForId(c.Index) {
			case "class":
				node = c.Node
			case "name":
				decl.name = c.Node.Content(src)
			}
		}
		if node == nil || (want != "" && !strings.EqualFold(decl.name, want)) {
			continue
		}
		decl.start = node.StartByte()
		decl.doc = docComment(node, src)
		found = append(found, &decl)
	}

	switch {
	case len(found) == 0 && want == "":
		return nil, errors.WithHint(ErrClassNotFound, "the file declares no class")
	case len(found) == 0:
		return nil, errors.WithHintf(errors.Wrapf(ErrClassNotFound, "class %s", want),
			"check --facade-class against the class declared in the file")
	case len(found) > 1:
		names := make([]string, len(found))
		for i, d := range found {
			names[i] = d.name
		}
		return nil, errors.WithHintf(errors.Newf("%d classes match %q", len(found), want),
			"set --facade-class to one of: %s", strings.Join(names, ", "))
	}
	return found[0], nil
}

// docComment returns the "/**" comment separated from node by whitespace
// only.
func docComment(node *sitter.Node, src []byte) *sitter.Node {
	prev := node.PrevNamedSibling()
	if prev == nil || prev.Type() != "comment" {
		return nil
	}
	if !strings.HasPrefix(prev.Content(src), "/**") {
		return nil
	}
	if len(bytes.TrimSpace(src[prev.EndByte():node.StartByte()])) != 0 {
		return nil
	}
	return prev
}

// indentAt returns the whitespace between the start of the line holding off
// and off, or "" when the line has other text before off.
func indentAt(src []byte, off uint32) string {
	start := bytes.LastIndexByte(src[:off], '\n') + 1
	indent := src[start:off]
	if len(bytes.TrimLeft(indent, " \t")) != 0 {
		return ""
	}
	return string(indent)
}

// reindent prefixes every line of block but the first with indent and drops
// the trailing newline.
func reindent(block, indent string) string {
	block = strings.TrimRight(block, "\n")
	if indent == "" {
		return block
	}
	return strings.ReplaceAll(block, "\n", "\n"+indent)
}

// Splice returns src with block as the doc comment of class.
func Splice(ctx context.Context, src []byte, class, block string) ([]byte, error) {
	decl, err := find(ctx, src, class)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if decl.doc != nil {
		start, end := decl.doc.StartByte(), decl.doc.EndByte()
		out.Write(src[:start])
		out.WriteString(reindent(block, indentAt(src, start)))
		out.Write(src[end:])
		return out.Bytes(), nil
	}

	indent := indentAt(src, decl.start)
	out.Write(src[:decl.start])
	out.WriteString(reindent(block, indent))
	out.WriteString("\n")
	out.WriteString(indent)
	out.Write(src[decl.start:])
	return out.Bytes(), nil
}

// Existing returns the doc comment currently above class, dedented, or ""
// when there is none.
func Existing(ctx context.Context, src []byte, class string) (string, error) {
	decl, err := find(ctx, src, class)
	if err != nil {
		return "", err
	}
	if decl.doc == nil {
		return "", nil
	}
	doc := decl.doc.Content(src)
	if indent := indentAt(src, decl.doc.StartByte()); indent != "" {
		doc = strings.ReplaceAll(doc, "\n"+indent, "\n")
	}
	return doc + "\n", nil
}

// UpdateFile splices block into the file at path. It reports whether the file
// changed; an unchanged file is not rewritten.
func UpdateFile(ctx context.Context, path, class, block string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, "read facade")
	}
	out, err := Splice(ctx, src, class, block)
	if err != nil {
		return false, errors.Wrapf(err, "facade %s", path)
	}
	if bytes.Equal(src, out) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrap(err, "stat facade")
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return false, errors.Wrap(err, "write facade")
	}
	return true, nil
}

// Check reports whether the file at path is stale: splicing block would
// change it.
func Check(ctx context.Context, path, class, block string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, "read facade")
	}
	out, err := Splice(ctx, src, class, block)
	if err != nil {
		return false, errors.Wrapf(err, "facade %s", path)
	}
	return !bytes.Equal(src, out), nil
}

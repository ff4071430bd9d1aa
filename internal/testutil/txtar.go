// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for facadoc.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/model"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains the flags parsed from "Flags: ..." lines in the
	// description.
	Flags []string

	// InputName is "input.json" or "input.yaml".
	InputName string

	// Input is the catalog.
	Input []byte

	// Want maps relative paths (e.g., "doc.php") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.json" or "input.yaml" file with the class catalog
//   - One or more "want/<filename>" files with expected output
//
// The description may contain "Flags: key=value; key=value" lines, see
// ConfigFromFlags.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}

	// Parse flags from description
	c.parseFlags()

	// Process files
	for _, f := range ar.Files {
		switch {
		case f.Name == "input.json" || f.Name == "input.yaml":
			c.InputName = f.Name
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.Want[relPath] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.json, input.yaml or want/*)", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing input.json or input.yaml in archive")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseFlags extracts flags from "Flags: ..." lines in the description.
// Flags are separated by ";" since extra lines may contain commas.
func (c *Case) parseFlags() {
	for line := range strings.SplitSeq(c.Description, "\n") {
		line = strings.TrimSpace(line)
		flagStr, ok := strings.CutPrefix(line, "Flags:")
		if !ok {
			continue
		}
		for f := range strings.SplitSeq(flagStr, ";") {
			if f = strings.TrimSpace(f); f != "" {
				c.Flags = append(c.Flags, f)
			}
		}
	}
}

// Catalog decodes the case input.
func (c *Case) Catalog() (*model.Catalog, error) {
	cat, err := model.ParseCatalog(c.Input, model.FormatFromPath(c.InputName))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.InputName, err)
	}
	return cat, nil
}

// ConfigFromFlags builds a generator configuration from case flags:
//
//	class=<name>          source class (repeatable)
//	modifier=<mask>       e.g. public|protected
//	exclude=<method>      (repeatable)
//	filter=<spec>         default, none, pattern:<re>, exclude:<re>
//	add=<doc>             extra line at the end (repeatable)
//	add@<position>=<doc>  positioned extra line, e.g. add@before:send=...
//	see=<name>            see reference (repeatable)
//	markers=<order>       reference-first, variadic-first, variadic-only
//	output=<file>         output file name
//	option.<key>=<value>  target-specific option
func ConfigFromFlags(flags []string) (generator.Config, error) {
	var cfg generator.Config
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return cfg, fmt.Errorf("flag %q: want key=value", f)
		}
		key, position, _ := strings.Cut(key, "@")
		switch key {
		case "class":
			cfg.Classes = append(cfg.Classes, value)
		case "modifier":
			m, err := model.ParseModifier(value)
			if err != nil {
				return cfg, fmt.Errorf("flag %q: %w", f, err)
			}
			cfg.Modifier = m
		case "exclude":
			cfg.Exclude = append(cfg.Exclude, value)
		case "filter":
			cfg.Filter = value
		case "add":
			cfg.Add = append(cfg.Add, generator.Extra{Doc: value, Position: position})
		case "see":
			cfg.See = append(cfg.See, value)
		case "markers":
			cfg.Markers = value
		case "output":
			cfg.OutputFile = value
		default:
			name, ok := strings.CutPrefix(key, "option.")
			if !ok {
				return cfg, fmt.Errorf("unknown flag %q", key)
			}
			if cfg.Options == nil {
				cfg.Options = make(map[string]string)
			}
			cfg.Options[name] = value
		}
	}
	return cfg, nil
}

// GenerateFunc is a function that generates output from a test case.
// It returns a map of filename to content.
type GenerateFunc func(c *Case) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	// Compare contents
	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		// Normalize line endings and trailing whitespace
		wantNorm := normalizeContent(wantContent)
		gotNorm := normalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	// Keep comment and input
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if f.Name == "input.json" || f.Name == "input.yaml" {
			result.Files = append(result.Files, f)
			break
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// RunDir runs every txtar case in dir as a subtest. With update set, the
// archives are rewritten with the generated output instead of compared.
func RunDir(t *testing.T, dir string, update bool, generate GenerateFunc) {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}

			tc, err := ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			if !update {
				tc.Run(t, generate)
				return
			}

			got, err := generate(tc)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			content := FormatArchive(UpdateArchive(ar, got))
			if err := os.WriteFile(file, content, 0o644); err != nil {
				t.Fatalf("write updated file: %v", err)
			}
			t.Logf("updated %s", file)
		})
	}
}

// GenerateWith returns a GenerateFunc running g over the case catalog with
// the case flags.
func GenerateWith(g generator.Generator) GenerateFunc {
	return func(c *Case) (map[string][]byte, error) {
		cat, err := c.Catalog()
		if err != nil {
			return nil, err
		}
		cfg, err := ConfigFromFlags(c.Flags)
		if err != nil {
			return nil, err
		}
		out, err := g.Generate(context.Background(), cat, cfg)
		if err != nil {
			return nil, err
		}
		return out.Files, nil
	}
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

const catalogJSON = `{
"classes": [
	{"name": "App\\Pusher", "methods": [
		{"name": "send", "modifiers": ["public"], "return": "bool"}
	]}
]
}`

const catalogYAML = `classes:
  - name: App\Pusher
    methods:
      - name: send
        return: bool
`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func checkPusher(t *testing.T, result *Result) {
	t.Helper()
	if result.Catalog == nil {
		t.Fatal("expected non-nil Catalog")
	}
	cls, err := result.Catalog.ResolveClass(`App\Pusher`)
	if err != nil {
		t.Fatalf("ResolveClass() error: %v", err)
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name != "send" {
		t.Errorf("methods = %v, want [send]", cls.Methods)
	}
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  true, // all characters (none) are hex
		},
		{
			name:  "valid lowercase hex",
			input: "0123456789abcdef",
			want:  true,
		},
		{
			name:  "valid uppercase hex",
			input: "0123456789ABCDEF",
			want:  true,
		},
		{
			name:  "valid mixed case hex",
			input: "aAbBcCdDeEfF",
			want:  true,
		},
		{
			name:  "valid 40-char git hash",
			input: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
			want:  true,
		},
		{
			name:  "invalid char g",
			input: "abcdefg",
			want:  false,
		},
		{
			name:  "invalid char z",
			input: "123z456",
			want:  false,
		},
		{
			name:  "invalid char !",
			input: "abc!def",
			want:  false,
		},
		{
			name:  "invalid char space",
			input: "abc def",
			want:  false,
		},
		{
			name:  "mixed valid and invalid at start",
			input: "gabc123",
			want:  false,
		},
		{
			name:  "mixed valid and invalid at end",
			input: "abc123g",
			want:  false,
		},
		{
			name:  "only digits",
			input: "0123456789",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isHex(tt.input)
			if got != tt.want {
				t.Errorf("isHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetGitHash(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(dir string) // set up the mock git repo
		wantHash string
	}{
		{
			name: "detached HEAD with direct hash",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				if err := os.MkdirAll(gitDir, 0755); err != nil {
					t.Fatalf("failed to create .git dir: %v", err)
				}
				hash := "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2"
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(hash+"\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
			},
			wantHash: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
		},
		{
			name: "HEAD references branch",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				refsDir := filepath.Join(gitDir, "refs", "heads")
				if err := os.MkdirAll(refsDir, 0755); err != nil {
					t.Fatalf("failed to create refs dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
				hash := "b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3"
				if err := os.WriteFile(filepath.Join(refsDir, "main"), []byte(hash+"\n"), 0644); err != nil {
					t.Fatalf("failed to write ref: %v", err)
				}
			},
			wantHash: "b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3",
		},
		{
			name: "HEAD references non-existent branch",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				if err := os.MkdirAll(gitDir, 0755); err != nil {
					t.Fatalf("failed to create .git dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/nonexistent\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
			},
			wantHash: "",
		},
		{
			name: "no .git directory",
			setup: func(dir string) {
				// Don't create anything
			},
			wantHash: "",
		},
		{
			name: "invalid HEAD content",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				if err := os.MkdirAll(gitDir, 0755); err != nil {
					t.Fatalf("failed to create .git dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("invalid content\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
			},
			wantHash: "",
		},
		{
			name: "HEAD with non-hex content same length as hash",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				if err := os.MkdirAll(gitDir, 0755); err != nil {
					t.Fatalf("failed to create .git dir: %v", err)
				}
				// 40 chars but contains invalid hex chars
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ghijklmnopghijklmnopghijklmnopghijklmnop\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
			},
			wantHash: "",
		},
		{
			name: "ref file with extra content",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				refsDir := filepath.Join(gitDir, "refs", "heads")
				if err := os.MkdirAll(refsDir, 0755); err != nil {
					t.Fatalf("failed to create refs dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
				// Hash with extra content after it
				hash := "c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4 extra stuff"
				if err := os.WriteFile(filepath.Join(refsDir, "main"), []byte(hash+"\n"), 0644); err != nil {
					t.Fatalf("failed to write ref: %v", err)
				}
			},
			wantHash: "c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4",
		},
		{
			name: "short hash in ref file",
			setup: func(dir string) {
				gitDir := filepath.Join(dir, ".git")
				refsDir := filepath.Join(gitDir, "refs", "heads")
				if err := os.MkdirAll(refsDir, 0755); err != nil {
					t.Fatalf("failed to create refs dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644); err != nil {
					t.Fatalf("failed to write HEAD: %v", err)
				}
				// Short hash
				if err := os.WriteFile(filepath.Join(refsDir, "main"), []byte("abc123\n"), 0644); err != nil {
					t.Fatalf("failed to write ref: %v", err)
				}
			},
			wantHash: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(dir)

			got := getGitHash(dir)
			if got != tt.wantHash {
				t.Errorf("getGitHash() = %q, want %q", got, tt.wantHash)
			}
		})
	}
}

func TestFetchFromFile(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(dir string) string // returns file path
		wantErr    bool
		wantSource string // expected source prefix
	}{
		{
			name: "json catalog",
			setup: func(dir string) string {
				return writeFile(t, filepath.Join(dir, "catalog.json"), catalogJSON)
			},
			wantSource: "file://",
		},
		{
			name: "yaml catalog",
			setup: func(dir string) string {
				return writeFile(t, filepath.Join(dir, "catalog.yml"), catalogYAML)
			},
			wantSource: "file://",
		},
		{
			name: "unknown extension sniffs content",
			setup: func(dir string) string {
				return writeFile(t, filepath.Join(dir, "catalog.dump"), catalogJSON)
			},
			wantSource: "file://",
		},
		{
			name: "non-existent file",
			setup: func(dir string) string {
				return filepath.Join(dir, "does-not-exist.json")
			},
			wantErr: true,
		},
		{
			name: "invalid JSON file",
			setup: func(dir string) string {
				return writeFile(t, filepath.Join(dir, "invalid.json"), `{invalid json}`)
			},
			wantErr: true,
		},
		{
			name: "empty file",
			setup: func(dir string) string {
				return writeFile(t, filepath.Join(dir, "empty.json"), "")
			},
			wantErr: true,
		},
		{
			name: "unknown default kind",
			setup: func(dir string) string {
				return writeFile(t, filepath.Join(dir, "bad.json"), `{"classes": [{"name": "A", "methods": [
					{"name": "m", "params": [{"name": "p", "default": {"kind": "closure"}}]}]}]}`)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := tt.setup(dir)

			result, err := Fetch(context.Background(), Options{Path: path})
			if (err != nil) != tt.wantErr {
				t.Errorf("Fetch() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			if !strings.HasPrefix(result.Source, tt.wantSource) {
				t.Errorf("source = %q, want prefix %q", result.Source, tt.wantSource)
			}
			if result.CommitHash != "" {
				t.Errorf("expected empty CommitHash for file source, got %q", result.CommitHash)
			}
			checkPusher(t, result)
		})
	}
}

func TestFetchFromStdin(t *testing.T) {
	for name, content := range map[string]string{"json": catalogJSON, "yaml": catalogYAML} {
		t.Run(name, func(t *testing.T) {
			result, err := Fetch(context.Background(), Options{Path: Stdin, Stdin: strings.NewReader(content)})
			if err != nil {
				t.Fatalf("Fetch() error: %v", err)
			}
			if result.Source != "stdin" {
				t.Errorf("source = %q, want %q", result.Source, "stdin")
			}
			checkPusher(t, result)
		})
	}
}

func TestFetchFromProject(t *testing.T) {
	t.Run("catalog with commit", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, DefaultCatalogPath), catalogJSON)
		hash := "d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5"
		writeFile(t, filepath.Join(dir, ".git", "HEAD"), hash+"\n")

		result, err := Fetch(context.Background(), Options{ProjectDir: dir})
		if err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
		if result.CommitHash != hash {
			t.Errorf("commitHash = %q, want %q", result.CommitHash, hash)
		}
		if result.Source != "project://"+dir {
			t.Errorf("source = %q, want %q", result.Source, "project://"+dir)
		}
		checkPusher(t, result)
	})

	t.Run("missing catalog has hint", func(t *testing.T) {
		_, err := Fetch(context.Background(), Options{ProjectDir: t.TempDir()})
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
		hints := errors.GetAllHints(err)
		if len(hints) != 1 || !strings.Contains(hints[0], DefaultCatalogPath) {
			t.Errorf("hints = %q, want one naming %s", hints, DefaultCatalogPath)
		}
	})
}

func TestFetchFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/catalog.json":
			w.Write([]byte(catalogJSON))
		case "/catalog.yaml":
			w.Write([]byte(catalogYAML))
		case "/slow.json":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	for _, path := range []string{"/catalog.json", "/catalog.yaml?token=x"} {
		t.Run(path, func(t *testing.T) {
			url := srv.URL + path
			result, err := Fetch(context.Background(), Options{Path: url, Client: srv.Client()})
			if err != nil {
				t.Fatalf("Fetch() error: %v", err)
			}
			if result.Source != url {
				t.Errorf("source = %q, want %q", result.Source, url)
			}
			checkPusher(t, result)
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := Fetch(context.Background(), Options{Path: srv.URL + "/missing.json", Client: srv.Client()})
		if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
			t.Errorf("error = %v, want HTTP 404", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := Fetch(context.Background(), Options{
			Path:    srv.URL + "/slow.json",
			Client:  srv.Client(),
			Timeout: 50 * time.Millisecond,
		})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("error = %v, want deadline exceeded", err)
		}
	})
}

func TestURLPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "https://example.com/catalog.json", want: "https://example.com/catalog.json"},
		{input: "https://example.com/catalog.yml?raw=1", want: "https://example.com/catalog.yml"},
		{input: "https://example.com/catalog#top", want: "https://example.com/catalog"},
	}
	for _, tt := range tests {
		if got := urlPath(tt.input); got != tt.want {
			t.Errorf("urlPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/model"
)

func parseFlags(t *testing.T, facade bool, args ...string) (*pflag.FlagSet, *jobFlags) {
	t.Helper()
	var f jobFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs, facade)
	require.NoError(t, fs.Parse(args))
	return fs, &f
}

func TestJobFromFlags(t *testing.T) {
	fs, f := parseFlags(t, false,
		"--catalog", "catalog.yaml",
		"--class", `App\Pusher`, "--class", `App\Mailer`,
		"--add", "void fake(array $a, array $b)",
		"--add-before", "send=void first()",
		"--add-after", "send = void last()",
		"--option", "prefix=@method static",
		"--format", "methods",
	)
	jobs, err := loadJobs(fs, "", f)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "catalog.yaml", j.Catalog)
	assert.Equal(t, "methods", j.Format)
	assert.Equal(t, []string{`App\Pusher`, `App\Mailer`}, j.Classes)
	assert.Equal(t, []generator.Extra{
		{Doc: "void fake(array $a, array $b)"},
		{Doc: "void first()", Position: "before:send"},
		{Doc: "void last()", Position: "after:send"},
	}, j.Add)
	assert.Equal(t, map[string]string{"prefix": "@method static"}, j.Options)
}

func TestJobFromFlags_Errors(t *testing.T) {
	fs, f := parseFlags(t, false, "--class", "A", "--add-before", "no separator")
	_, err := loadJobs(fs, "", f)
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	fs, f = parseFlags(t, false, "--class", "A", "--option", "indent")
	_, err = loadJobs(fs, "", f)
	assert.Error(t, err)

	fs, f = parseFlags(t, false)
	_, err = loadJobs(fs, "", f)
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err)[0], "--class")
}

func TestJobDefaults(t *testing.T) {
	t.Setenv("FACADOC_CATALOG", "env.json")
	t.Setenv("FACADOC_FORMAT", "")

	fs, f := parseFlags(t, false, "--class", "A")
	jobs, err := loadJobs(fs, "", f)
	require.NoError(t, err)
	assert.Equal(t, "env.json", jobs[0].Catalog, "environment fills an unset flag")
	assert.Equal(t, defaultFormat, jobs[0].Format)

	fs, f = parseFlags(t, false, "--class", "A", "--catalog", "flag.json")
	jobs, err = loadJobs(fs, "", f)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", jobs[0].Catalog, "flag wins over environment")
}

const jobsYAML = `catalog: top.json
jobs:
  - name: pusher
    classes: ['App\Pusher']
    facade: app/Facades/Pusher.php
    facadeClass: Pusher
    modifier: public,protected
    add:
      - doc: void fake()
      - doc: void first()
        position: before:send
  - classes: [Other]
    catalog: own.json
    format: methods
    options:
      prefix: "@method"
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJobs_ConfigFile(t *testing.T) {
	path := writeConfig(t, "facadoc.yaml", jobsYAML)

	fs, f := parseFlags(t, true)
	jobs, err := loadJobs(fs, path, f)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, Job{
		Name:        "pusher",
		Catalog:     "top.json",
		Classes:     []string{`App\Pusher`},
		Modifier:    "public,protected",
		Facade:      "app/Facades/Pusher.php",
		FacadeClass: "Pusher",
		Format:      defaultFormat,
		Add: []generator.Extra{
			{Doc: "void fake()"},
			{Doc: "void first()", Position: "before:send"},
		},
	}, jobs[0])

	assert.Equal(t, "own.json", jobs[1].Catalog)
	assert.Equal(t, "methods", jobs[1].Format)
	assert.Equal(t, map[string]string{"prefix": "@method"}, jobs[1].Options)
}

func TestLoadJobs_ConfigOverrides(t *testing.T) {
	path := writeConfig(t, "facadoc.yaml", jobsYAML)

	fs, f := parseFlags(t, true, "--catalog", "flag.json")
	jobs, err := loadJobs(fs, path, f)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", jobs[0].Catalog)
	assert.Equal(t, "own.json", jobs[1].Catalog, "a job's own catalog is kept")

	fs, f = parseFlags(t, true, "--class", "Solo", "--facade", "Solo.php")
	jobs, err = loadJobs(fs, path, f)
	require.NoError(t, err)
	require.Len(t, jobs, 1, "explicit classes replace the config jobs")
	assert.Equal(t, "Solo.php", jobs[0].Facade)
}

func TestLoadJobs_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "no jobs", file: "empty.yaml", content: "catalog: x.json\n"},
		{name: "job without classes", file: "bad.yaml", content: "jobs:\n  - facade: X.php\n"},
		{name: "unreadable", file: "broken.json", content: "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, f := parseFlags(t, true)
			_, err := loadJobs(fs, writeConfig(t, tt.file, tt.content), f)
			assert.Error(t, err)
		})
	}
}

func TestJobConfig(t *testing.T) {
	j := Job{Classes: []string{"A"}, Modifier: "public|static", Markers: "variadic-only"}
	cfg, err := j.Config(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, model.IsPublic|model.IsStatic, cfg.Modifier)
	assert.Equal(t, "variadic-only", cfg.Markers)

	_, err = Job{Classes: []string{"A"}, Modifier: "internal"}.Config(zap.NewNop())
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestExitCode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 0, exitCode(&buf, nil))
	assert.Equal(t, exitStale, exitCode(&buf, errors.Wrap(errStale, "1 of 2 facades")))
	assert.Empty(t, buf.String())

	err := errors.WithHint(errors.New("boom"), "try again")
	assert.Equal(t, exitError, exitCode(&buf, err))
	assert.Equal(t, "error: boom\nhint: try again\n", buf.String())
}

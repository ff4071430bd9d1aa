// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/model"
)

// defaultFormat is the generator used when none is configured.
const defaultFormat = "phpdoc"

// Job is one facade to document: the classes it forwards to and how to render
// them. Jobs come from the command line or the jobs list of a config file.
type Job struct {
	Name        string            `mapstructure:"name"`
	Catalog     string            `mapstructure:"catalog"`
	Classes     []string          `mapstructure:"classes"`
	Modifier    string            `mapstructure:"modifier"`
	Exclude     []string          `mapstructure:"exclude"`
	Filter      string            `mapstructure:"filter"`
	Add         []generator.Extra `mapstructure:"add"`
	See         []string          `mapstructure:"see"`
	Markers     string            `mapstructure:"markers"`
	Facade      string            `mapstructure:"facade"`
	FacadeClass string            `mapstructure:"facadeClass"`
	Format      string            `mapstructure:"format"`
	Output      string            `mapstructure:"output"`
	Options     map[string]string `mapstructure:"options"`
}

// label names the job in logs and messages.
func (j Job) label() string {
	switch {
	case j.Name != "":
		return j.Name
	case j.Facade != "":
		return j.Facade
	}
	return strings.Join(j.Classes, ",")
}

// Config converts the job to a generator configuration.
func (j Job) Config(log *zap.Logger) (generator.Config, error) {
	cfg := generator.Config{
		Classes: j.Classes,
		Exclude: j.Exclude,
		Filter:  j.Filter,
		Add:     j.Add,
		See:     j.See,
		Markers: j.Markers,
		Logger:  log,
		Options: j.Options,
	}
	if j.Modifier != "" {
		m, err := model.ParseModifier(j.Modifier)
		if err != nil {
			return cfg, errors.WithHint(errors.Wrapf(err, "job %s", j.label()),
				"modifiers are public, protected, private, static, final and abstract")
		}
		cfg.Modifier = m
	}
	return cfg, nil
}

// fileConfig is the layout of a --config file. Top-level "catalog" and
// "format" keys are read through viper as job defaults.
type fileConfig struct {
	Jobs []Job `mapstructure:"jobs"`
}

// jobFlags are the command-line job settings.
type jobFlags struct {
	catalog     string
	classes     []string
	format      string
	modifier    string
	exclude     []string
	filter      string
	add         []string
	addBefore   []string
	addAfter    []string
	see         []string
	markers     string
	output      string
	facade      string
	facadeClass string
	options     []string
}

// register adds the job flags to fs. Document flags are always added;
// facade flags only when facade is set.
func (f *jobFlags) register(fs *pflag.FlagSet, facade bool) {
	fs.StringVar(&f.catalog, "catalog", "", `Catalog file, "-" for stdin, or http(s) URL (default: .facadoc/catalog.json)`)
	fs.StringSliceVar(&f.classes, "class", nil, "Source class (repeatable)")
	fs.StringVar(&f.modifier, "modifier", "", "Method modifiers to include, e.g. public,protected (default: public)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "Method names to leave out")
	fs.StringVar(&f.filter, "filter", "", "Method filter: default, none, pattern:<re> or exclude:<re>")
	fs.StringArrayVar(&f.add, "add", nil, "Extra line appended at the end (repeatable)")
	fs.StringArrayVar(&f.addBefore, "add-before", nil, "METHOD=LINE inserted before a method line (repeatable)")
	fs.StringArrayVar(&f.addAfter, "add-after", nil, "METHOD=LINE inserted after a method line (repeatable)")
	fs.StringSliceVar(&f.see, "see", nil, "See references (default: the classes)")
	fs.StringVar(&f.markers, "markers", "", "Variadic/by-reference marker order: reference-first, variadic-first, variadic-only")
	if facade {
		fs.StringVar(&f.facade, "facade", "", "Facade source file")
		fs.StringVar(&f.facadeClass, "facade-class", "", "Facade class name (default: the only class in the file)")
		return
	}
	fs.StringVar(&f.format, "format", "", "Output format (default: phpdoc)")
	fs.StringVarP(&f.output, "output", "o", "", "Output directory or file (default: stdout)")
	fs.StringArrayVar(&f.options, "option", nil, "Generator option KEY=VALUE (repeatable)")
}

// job builds the command-line job.
func (f *jobFlags) job() (Job, error) {
	j := Job{
		Catalog:     f.catalog,
		Classes:     f.classes,
		Modifier:    f.modifier,
		Exclude:     f.exclude,
		Filter:      f.filter,
		See:         f.see,
		Markers:     f.markers,
		Facade:      f.facade,
		FacadeClass: f.facadeClass,
		Format:      f.format,
		Output:      f.output,
	}
	for _, doc := range f.add {
		j.Add = append(j.Add, generator.Extra{Doc: doc})
	}
	for _, spec := range []struct {
		flag     string
		relation string
		values   []string
	}{
		{flag: "--add-before", relation: "before", values: f.addBefore},
		{flag: "--add-after", relation: "after", values: f.addAfter},
	} {
		for _, v := range spec.values {
			method, doc, ok := strings.Cut(v, "=")
			if !ok || strings.TrimSpace(method) == "" {
				return j, errors.WithHintf(errors.Newf("%s %q: want METHOD=LINE", spec.flag, v),
					`e.g. %s 'send=void fake()'`, spec.flag)
			}
			j.Add = append(j.Add, generator.Extra{
				Doc:      strings.TrimSpace(doc),
				Position: spec.relation + ":" + strings.TrimSpace(method),
			})
		}
	}
	for _, v := range f.options {
		key, value, ok := strings.Cut(v, "=")
		if !ok {
			return j, errors.Newf("--option %q: want KEY=VALUE", v)
		}
		if j.Options == nil {
			j.Options = make(map[string]string)
		}
		j.Options[key] = value
	}
	return j, nil
}

// newViper returns a viper reading FACADOC_* environment variables, with the
// shared flags bound so a set flag wins over the environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("FACADOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"catalog", "format"} {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return nil, errors.Wrapf(err, "bind --%s", name)
			}
		}
	}
	return v, nil
}

// loadJobs resolves the jobs of an invocation. Without --config, or with
// explicit --class flags, the command line is the only job. Otherwise the
// config file's jobs run. Jobs without their own catalog or format inherit
// the first set of: the flag, the FACADOC_* variable, the file's top level.
func loadJobs(fs *pflag.FlagSet, configPath string, flags *jobFlags) ([]Job, error) {
	v, err := newViper(fs)
	if err != nil {
		return nil, err
	}

	if configPath == "" || len(flags.classes) > 0 {
		j, err := flags.job()
		if err != nil {
			return nil, err
		}
		j.Catalog = v.GetString("catalog")
		j.Format = v.GetString("format")
		if len(j.Classes) == 0 {
			return nil, errors.WithHint(errors.New("no classes to document"),
				"pass --class, or --config with a jobs list")
		}
		return []Job{j.withDefaults("", "")}, nil
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config %s", configPath)
	}
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", configPath)
	}
	if len(fc.Jobs) == 0 {
		return nil, errors.WithHintf(errors.Newf("config %s has no jobs", configPath),
			"add a jobs: list with classes for each facade")
	}

	catalog, format := v.GetString("catalog"), v.GetString("format")
	jobs := make([]Job, len(fc.Jobs))
	for i, j := range fc.Jobs {
		if len(j.Classes) == 0 {
			return nil, errors.Newf("config %s: job #%d has no classes", configPath, i+1)
		}
		jobs[i] = j.withDefaults(catalog, format)
	}
	return jobs, nil
}

// withDefaults fills unset catalog and format.
func (j Job) withDefaults(catalog, format string) Job {
	if j.Catalog == "" {
		j.Catalog = catalog
	}
	if j.Format == "" {
		j.Format = format
	}
	if j.Format == "" {
		j.Format = defaultFormat
	}
	return j
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filename is the settings file looked up in the working directory and in
// the project directory.
const Filename = "strata.yaml"

// Config holds the strata settings for one run.
type Config struct {
	BaseDir string `yaml:"base_dir" json:"base_dir"` // project directory

	InputDataDirname      string `yaml:"input_data_dirname" json:"input_data_dirname"`
	InputTemplatesDirname string `yaml:"input_templates_dirname" json:"input_templates_dirname"`
	OutputDataDirname     string `yaml:"output_data_dirname" json:"output_data_dirname"`

	VarsFilename string `yaml:"vars_filename" json:"vars_filename"` // override file basename
	TemplateName string `yaml:"template_name" json:"template_name"` // entry template basename
	OutputExt    string `yaml:"output_ext" json:"output_ext"`       // extension for rendered files

	FilenameVariable string `yaml:"filename_variable" json:"filename_variable"` // dot path, empty = disabled
	SkipPrefix       string `yaml:"skip_prefix" json:"skip_prefix"`             // empty = skip nothing

	SaveMergedVars bool   `yaml:"save_merged_vars" json:"save_merged_vars"`
	MergedVarsPath string `yaml:"merged_vars_path" json:"merged_vars_path"` // empty = output tree's vars/ subdir
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		BaseDir:               ".",
		InputDataDirname:      "input_data",
		InputTemplatesDirname: "input_templates",
		OutputDataDirname:     "output_data",
		VarsFilename:          "vars.yaml",
		TemplateName:          "base.tmpl",
		OutputExt:             ".txt",
	}
}

// InputDataDir returns the input tree the targets live in.
func (c *Config) InputDataDir() string {
	return filepath.Join(c.BaseDir, c.InputDataDirname)
}

// InputTemplatesDir returns the templates tree.
func (c *Config) InputTemplatesDir() string {
	return filepath.Join(c.BaseDir, c.InputTemplatesDirname)
}

// OutputDataDir returns the rendered-output tree.
func (c *Config) OutputDataDir() string {
	return filepath.Join(c.BaseDir, c.OutputDataDirname)
}

// MergedVarsDir returns where resolved mappings are dumped when
// save_merged_vars is enabled: merged_vars_path if configured, otherwise a
// vars/ subdirectory of the output tree.
func (c *Config) MergedVarsDir() string {
	if c.MergedVarsPath != "" {
		return filepath.Join(c.BaseDir, c.MergedVarsPath)
	}
	return filepath.Join(c.OutputDataDir(), "vars")
}

// fileConfig mirrors Config with pointer fields so a settings file only
// overrides the keys it actually sets.
type fileConfig struct {
	BaseDir               *string `yaml:"base_dir"`
	InputDataDirname      *string `yaml:"input_data_dirname"`
	InputTemplatesDirname *string `yaml:"input_templates_dirname"`
	OutputDataDirname     *string `yaml:"output_data_dirname"`
	VarsFilename          *string `yaml:"vars_filename"`
	TemplateName          *string `yaml:"template_name"`
	OutputExt             *string `yaml:"output_ext"`
	FilenameVariable      *string `yaml:"filename_variable"`
	SkipPrefix            *string `yaml:"skip_prefix"`
	SaveMergedVars        *bool   `yaml:"save_merged_vars"`
	MergedVarsPath        *string `yaml:"merged_vars_path"`
}

func (c *Config) apply(f fileConfig) {
	setIf(&c.BaseDir, f.BaseDir)
	setIf(&c.InputDataDirname, f.InputDataDirname)
	setIf(&c.InputTemplatesDirname, f.InputTemplatesDirname)
	setIf(&c.OutputDataDirname, f.OutputDataDirname)
	setIf(&c.VarsFilename, f.VarsFilename)
	setIf(&c.TemplateName, f.TemplateName)
	setIf(&c.OutputExt, f.OutputExt)
	setIf(&c.FilenameVariable, f.FilenameVariable)
	setIf(&c.SkipPrefix, f.SkipPrefix)
	setIf(&c.SaveMergedVars, f.SaveMergedVars)
	setIf(&c.MergedVarsPath, f.MergedVarsPath)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Load builds the effective configuration: defaults, overridden by
// strata.yaml in workDir, overridden by strata.yaml in the project
// directory (when that is a different place). A non-empty project argument
// (from the --project flag) overrides base_dir from either file. A missing
// settings file is not an error; a malformed one is.
func Load(workDir, project string) (Config, error) {
	cfg := Default()

	if err := loadFile(&cfg, filepath.Join(workDir, Filename)); err != nil {
		return cfg, err
	}
	if project != "" {
		cfg.BaseDir = project
	}

	if !filepath.IsAbs(cfg.BaseDir) {
		cfg.BaseDir = filepath.Join(workDir, cfg.BaseDir)
	}
	if local := filepath.Join(cfg.BaseDir, Filename); local != filepath.Join(workDir, Filename) {
		base := cfg.BaseDir
		if err := loadFile(&cfg, local); err != nil {
			return cfg, err
		}
		// The project-local file configures the project, it does not
		// relocate it.
		cfg.BaseDir = base
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}

	var f fileConfig
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.apply(f)
	return nil
}

// Validate checks settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.VarsFilename == "" {
		return errors.New("vars_filename must not be empty")
	}
	if strings.ContainsRune(c.VarsFilename, os.PathSeparator) {
		return fmt.Errorf("vars_filename must be a bare filename, got %q", c.VarsFilename)
	}
	if c.TemplateName == "" {
		return errors.New("template_name must not be empty")
	}
	if c.OutputExt != "" && !strings.HasPrefix(c.OutputExt, ".") {
		return fmt.Errorf("output_ext must start with a dot, got %q", c.OutputExt)
	}
	if c.SkipPrefix != "" && strings.HasPrefix(c.VarsFilename, c.SkipPrefix) {
		return fmt.Errorf("skip_prefix %q would exclude the vars file %q itself", c.SkipPrefix, c.VarsFilename)
	}
	return nil
}

// SampleConfig is the commented settings file written by "strata init".
const SampleConfig = `# strata settings
# Every key is optional; the values below are the defaults.

# Project directory holding the input/output trees. Relative paths are
# resolved against the directory strata runs in.
# base_dir: "."

# Directory names inside base_dir.
# input_data_dirname: "input_data"
# input_templates_dirname: "input_templates"
# output_data_dirname: "output_data"

# Override file merged along the directory hierarchy.
# vars_filename: "vars.yaml"

# Entry template looked up per target type:
#   input_templates/<target_type>/base.tmpl
# template_name: "base.tmpl"

# Extension for rendered output files.
# output_ext: ".txt"

# Variable derived from the target filename when no layer sets it.
# "GW01.yaml" with filename_variable "hostname" yields hostname: GW01.
# Dot paths create nested mappings: "person.name" -> {person: {name: ...}}.
# filename_variable: "hostname"

# Skip files and directories whose name starts with this prefix.
# skip_prefix: "_"

# Dump each resolved mapping back to YAML for inspection.
# When merged_vars_path is unset, dumps go to <output_data>/vars/.
# save_merged_vars: true
# merged_vars_path: "merged_vars"
`

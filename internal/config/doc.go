// Package config handles loading and validation of strata settings.
//
// Settings are read from strata.yaml, first in the working directory and
// then in the project directory; the project-local file overrides the
// global one key by key, and command-line flags override both.
//
// # Key Settings
//
//   - base_dir: the project directory holding the input/output trees
//   - vars_filename: override file looked up per directory (default vars.yaml)
//   - template_name: entry template per target type (default base.tmpl)
//   - output_ext: extension for rendered files (default .txt)
//   - filename_variable: dot path set from the target filename, e.g.
//     "hostname" or "person.name" (unset by default)
//   - skip_prefix: base-name prefix excluding files and directories from
//     discovery, e.g. "_" (unset by default)
//   - save_merged_vars / merged_vars_path: optional dump of each resolved
//     mapping back to YAML, for inspection only
//
// # Layout
//
// Inside base_dir three trees are expected, their names configurable via
// input_data_dirname, input_templates_dirname and output_data_dirname:
//
//	input_data/       targets and vars.yaml override files
//	input_templates/  <target_type>/base.tmpl
//	output_data/      rendered output, mirroring input_data
package config

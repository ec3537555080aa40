// Package config provides process-level configuration for the nacmd
// command: the recovery user name, the policy file path, and logging
// settings. None of this belongs to the NACM policy document itself —
// spec.md §9 is explicit that the recovery-user name and the policy-mode
// selector live in "the surrounding service", not the engine.
//
// Configuration is decoded with github.com/spf13/viper, which layers a
// config file and environment variables (prefixed NACMD_) over built-in
// defaults; Load binds no command-line flags — replacing the teacher's hand-rolled YAML tokenizer with
// the ecosystem tool the rest of the retrieved pack uses for this
// concern.
package config

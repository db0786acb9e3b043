// Package config manages user-level settings stored at ~/.mfg-scaffold/config.yaml.
// It loads, reads and writes the keys that shape a scaffold run (overwrite
// policy, comment marker, verbosity); MFG_SCAFFOLD_* environment variables
// override the file.
package config

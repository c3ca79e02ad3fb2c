// Package config loads and merges sarscrub configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SARSCRUB_ROOT, SARSCRUB_TERMS_FILE, etc.)
//  3. Config file ($XDG_CONFIG_HOME/sarscrub/config.json)
//  4. Built-in defaults
//
// The defaults reproduce the standard export workflow: root tree
// "output.export", holding folder "attachments", term list
// "redact_words.txt", placeholder "<redacted>", and the stock extension,
// metadata-file, cleanup-folder, and header-field lists.
package config

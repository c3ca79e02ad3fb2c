// Package cli wires together the Cobra command tree for the sarscrub binary.
//
// It defines the root command and all subcommands (filter, redact-headers,
// redact-words, config, version), binds flags, reads configuration, prompts
// for the attachment match name, invokes the stage packages, and returns
// deterministic exit codes. The three stage commands are designed to be run
// in order against the same export tree, each one a full pass with the
// filesystem as the only state shared between them.
package cli

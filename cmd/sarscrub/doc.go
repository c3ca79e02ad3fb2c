// Sarscrub sanitizes an extracted email export for disclosure review.
//
// It runs as three sequential stages over the same export tree, each a full
// pass with the filesystem as the only state carried between them:
//
//	sarscrub filter            # prune attachment noise, convert HTML bodies to text
//	sarscrub redact-headers    # blank header fields and email addresses
//	sarscrub redact-words      # blank words/phrases from the operator's term list
//
// The filter stage prompts for the subject's name (or takes --name);
// attachments whose filename contains it are kept in the holding folder,
// other document-extension files are deleted. Both redaction stages rewrite
// files in place, atomically, and are safe to rerun: update the term list
// and run redact-words again until the output is clean.
//
// Filtering is destructive. Work on a copy when the original export must be
// preserved.
package main

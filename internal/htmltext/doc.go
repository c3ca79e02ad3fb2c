// Package htmltext converts exported HTML message bodies into plain text.
//
// Each HTML file is parsed, stripped of script/style/noscript content, and
// reduced to its visible text lines. A small merge pass rejoins header
// labels ("To:", "From:") that the extraction split from their values. The
// derived .txt file is written beside the source and the HTML is deleted,
// so the transformation is destructive and one-way. When a target .txt name
// is already taken the derived file gets a collision-safe " (N)" suffix.
package htmltext

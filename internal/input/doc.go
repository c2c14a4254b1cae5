// Package input resolves the run inputs: the email addresses to check
// and the API key. Address files may be plain lists, comma-separated
// lines, or CSV rows, since the lists analysts work with rarely follow
// a single convention.
package input

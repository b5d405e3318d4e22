// Package libdiff compares documents, either as text line by line or as
// trees node by node.
package libdiff

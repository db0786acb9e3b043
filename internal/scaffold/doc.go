// Package scaffold materializes a tree description on a filesystem. It powers
// the root command: folders are created idempotently, files are written with
// a one-line placeholder comment naming the file, and every creation is
// reported as a progress line.
package scaffold

// Package platform provides cross-platform filesystem helpers used by the
// scaffold generator: permission setting that tolerates Windows, and joining
// paths without escaping a root directory. All helpers work on an afero.Fs so
// they can run against the real disk or an in-memory filesystem.
package platform

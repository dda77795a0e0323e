// Package model defines the value types shared across the imgfork pipeline.
package model

// Path represents a file system path.
type Path string

// Candidate is a build-context directory discovered during scanning.
// The scanner only emits directories that carry the build descriptor,
// so a recorded Candidate is always a copyable source.
type Candidate struct {
	Path Path
}

// Mapping pairs a source build context with its derived destination path.
type Mapping struct {
	Source      Path
	Destination Path
}

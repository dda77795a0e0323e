package domain

import (
	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/internal/version"
)

// MapPaths derives the destination for each candidate by rewriting
// version tokens in the path string. Pure function; no filesystem
// access. Callers must have rejected source == target upstream.
func MapPaths(candidates []m.Candidate, source, target version.Spec) []m.Mapping {
	mappings := make([]m.Mapping, 0, len(candidates))

	for _, c := range candidates {
		mappings = append(mappings, m.Mapping{
			Source:      c.Path,
			Destination: m.Path(version.Rewrite(string(c.Path), source, target)),
		})
	}

	return mappings
}

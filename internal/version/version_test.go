package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Spec
		wantErr bool
	}{
		{"simple", "3.9", Spec{"3", "9"}, false},
		{"multi digit minor", "3.10", Spec{"3", "10"}, false},
		{"multi digit major", "10.4", Spec{"10", "4"}, false},
		{"missing minor", "3", Spec{}, true},
		{"trailing dot", "3.", Spec{}, true},
		{"patch version", "3.9.1", Spec{}, true},
		{"letters", "three.nine", Spec{}, true},
		{"empty", "", Spec{}, true},
		{"leading space", " 3.9", Spec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecVariants(t *testing.T) {
	t.Run("single digit minor", func(t *testing.T) {
		spec := Spec{Major: "3", Minor: "9"}
		assert.Equal(t, []string{"3.9", "3-9", "python-39", "py39"}, spec.Variants())
	})

	t.Run("multi digit minor keeps separators intact", func(t *testing.T) {
		spec := Spec{Major: "3", Minor: "10"}
		assert.Equal(t, []string{"3.10", "3-10", "python-310", "py310"}, spec.Variants())
	})
}

func TestPatterns(t *testing.T) {
	source := Spec{Major: "3", Minor: "9"}
	target := Spec{Major: "3", Minor: "11"}

	got := Patterns(source, target)

	want := []Pattern{
		{"3.9", "3.11"},
		{"3-9", "3-11"},
		{"python-39", "python-311"},
		{"py39", "py311"},
	}
	assert.Equal(t, want, got)
}

func TestRewrite(t *testing.T) {
	source := Spec{Major: "3", Minor: "9"}
	target := Spec{Major: "3", Minor: "11"}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"dotted", "FROM python:3.9-slim", "FROM python:3.11-slim"},
		{"dashed", "image: python-3-9", "image: python-3-11"},
		{"prefixed", "name: python-39-builder", "name: python-311-builder"},
		{"bare", "tox -e py39", "tox -e py311"},
		{"mixed variants in one text", "py39 uses python-39 at 3.9", "py311 uses python-311 at 3.11"},
		{"no occurrence", "FROM debian:bookworm", "FROM debian:bookworm"},
		{"unrelated numeric context also rewritten", "timeout=3.9s", "timeout=3.11s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.text, source, target))
		})
	}
}

func TestRewriteRoundTrip(t *testing.T) {
	t.Run("non overlapping pair round trips", func(t *testing.T) {
		source := Spec{Major: "3", Minor: "8"}
		target := Spec{Major: "3", Minor: "11"}

		text := "FROM python:3.8\nRUN tox -e py38 # python-38 on 3-8\n"
		there := Rewrite(text, source, target)
		back := Rewrite(there, target, source)

		assert.Equal(t, text, back)
	})

	t.Run("overlapping pair does not round trip", func(t *testing.T) {
		// "3.1" is a prefix of "3.11". Rewriting 3.11 down to 3.1
		// collapses pre-existing 3.1 markers and freshly rewritten
		// ones into the same token, so the reverse trip expands both.
		// Documented lossy behavior for overlapping version pairs.
		source := Spec{Major: "3", Minor: "11"}
		target := Spec{Major: "3", Minor: "1"}

		text := "supports 3.1 and 3.11"
		there := Rewrite(text, source, target)
		require.Equal(t, "supports 3.1 and 3.1", there)

		back := Rewrite(there, target, source)
		assert.NotEqual(t, text, back)
		assert.Equal(t, "supports 3.11 and 3.11", back)
	})
}

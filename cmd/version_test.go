package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()

	output := &bytes.Buffer{}
	cmd.SetOut(output)

	err := cmd.Execute()
	require.NoError(t, err)

	// Under `go test` the main module version may be unset.
	if assert.NotEmpty(t, output.String()) {
		got := output.String()
		assert.Contains(t, got, "imgfork version")
		if got != "imgfork version: unknown\n" {
			assert.Contains(t, got, "go version")
		}
	}
}

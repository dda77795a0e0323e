package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	t.Run("empty partition has no failures", func(t *testing.T) {
		p := NewPartition[string]()

		require.False(t, p.HasFailures())
		require.Equal(t, 0, p.Len())
		require.Empty(t, p.Succeeded())
		require.Empty(t, p.Failed())
	})

	t.Run("records succeeded and failed separately", func(t *testing.T) {
		p := NewPartition[string]()

		p.Succeed("a")
		p.Fail("b")
		p.Succeed("c")

		require.Equal(t, []string{"a", "c"}, p.Succeeded())
		require.Equal(t, []string{"b"}, p.Failed())
		require.True(t, p.HasFailures())
		require.Equal(t, 3, p.Len())
	})

	t.Run("deduplicates within each side", func(t *testing.T) {
		p := NewPartition[int]()

		p.Succeed(1)
		p.Succeed(1)
		p.Fail(2)
		p.Fail(2)

		require.Equal(t, []int{1}, p.Succeeded())
		require.Equal(t, []int{2}, p.Failed())
		require.Equal(t, 2, p.Len())
	})

	t.Run("failure on an already succeeded item is still recorded", func(t *testing.T) {
		p := NewPartition[int]()

		p.Succeed(1)
		p.Fail(1)

		require.Equal(t, []int{1}, p.Succeeded())
		require.Equal(t, []int{1}, p.Failed())
		require.True(t, p.HasFailures())
		require.Equal(t, 2, p.Len())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		p := NewPartition[int]()

		for i := 5; i > 0; i-- {
			p.Fail(i)
		}

		require.Equal(t, []int{5, 4, 3, 2, 1}, p.Failed())
	})
}

package build

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewBuild(t *testing.T) {
	b := newBuild("0123456789abcdef", "2024-05-01T10:00:00Z", "v1.2.0", "https://example.com/x-cwm")

	require.Equal(t, "v1.2.0", b.Version)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), b.Date)
	require.Equal(t, "https://example.com/x-cwm/tree/0123456789abcdef", b.CommitURL)
	require.Equal(t, "https://example.com/x-cwm/releases/tag/v1.2.0", b.ReleaseURL)
	require.Equal(t, "v1.2.0 (0123456)", b.String())
}

func TestNewBuildDev(t *testing.T) {
	b := newBuild("", "", "dev", "https://example.com/x-cwm")

	require.True(t, b.Date.IsZero())
	require.Empty(t, b.CommitURL)
	require.Empty(t, b.ReleaseURL)
	require.Equal(t, "dev", b.String())
}

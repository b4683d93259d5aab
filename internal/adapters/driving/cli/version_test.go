package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_VersionFlag(t *testing.T) {
	rootCmd.InitDefaultVersionFlag()
	flag := rootCmd.Flags().Lookup("version")
	require.NotNil(t, flag, "version flag should exist")
	assert.Empty(t, flag.Shorthand, "-v belongs to --verbose")
}

func TestRootCmd_PrintsBuildVersion(t *testing.T) {
	for _, v := range []string{"dev", "1.4.0"} {
		t.Run(v, func(t *testing.T) {
			_, cleanup := setupTestLoader()
			originalVersion := rootCmd.Version
			rootCmd.Version = v
			defer func() {
				rootCmd.Version = originalVersion
				cleanup()
			}()

			out, err := execute("--version")

			require.NoError(t, err)
			assert.Equal(t, "minigrep version "+v+"\n", out)
		})
	}
}

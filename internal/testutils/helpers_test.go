package testutils

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "deps.yml", "name: foo\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: foo\n", string(data))
}

func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() {
		fmt.Println("captured")
	})

	assert.Equal(t, "captured\n", out)
}

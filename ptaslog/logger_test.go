package ptaslog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/ptaslog"
)

func TestLogger_Disabled_NoOp(t *testing.T) {
	l := ptaslog.New(false)
	require.NoError(t, l.Open(filepath.Join(t.TempDir(), "should-not-exist.log")))
	l.Infof("hello %s", "world")
	require.NoError(t, l.Close())
}

func TestLogger_EnabledWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptas.log")
	l := ptaslog.New(true)
	require.NoError(t, l.Open(path))
	l.Infof("donut %d extracted", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "donut 3 extracted")
}

func TestLogger_DoubleOpenFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptas.log")
	l := ptaslog.New(true)
	require.NoError(t, l.Open(path))
	defer l.Close()

	err := l.Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ptaslog.ErrAlreadyOpen)
}

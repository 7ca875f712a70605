package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRollingFileLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "market-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "marketd.log")
	l := NewRollingFileLogger(path, 1, 1, 1)
	InitLogger(l)
	defer InitLogger(NewConsoleLogger())

	With("module", "market").Info("listing created", "price", 100)
	Close()

	bz, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(bz), "listing created"))
	require.True(t, strings.Contains(string(bz), "module=market"))
}

package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.0", GitCommit: "abc123", GoVersion: "go1.25.1", Platform: "linux/amd64"}

	assert.Equal(t, "skillctl 1.2.0 (abc123) go1.25.1 linux/amd64", info.String())
}

func TestInfoJSON(t *testing.T) {
	info := Info{Version: "1.2.0", GitCommit: "abc123", GoVersion: "go1.25.1", Platform: "linux/amd64"}

	out, err := info.JSON()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.2.0", decoded["version"])
	assert.Equal(t, "abc123", decoded["gitCommit"])
	assert.Equal(t, "go1.25.1", decoded["goVersion"])
	assert.Equal(t, "linux/amd64", decoded["platform"])
}

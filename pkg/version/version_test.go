package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/aichronos/pkg/version"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "dev", version.GetVersion())
	assert.NotEmpty(t, version.GetGitCommit())
	assert.NotEmpty(t, version.GetBuildDate())
	assert.Contains(t, version.String(), "dev (commit ")
}

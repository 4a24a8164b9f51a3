package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Genzer/bitbucklet/internal/api"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("anything")))
	assert.Equal(t, 2, exitCode(api.ConfigError("bad flags")))
	assert.Equal(t, 3, exitCode(&api.Error{Kind: api.KindAuth}))
	assert.Equal(t, 4, exitCode(&api.Error{Kind: api.KindLookup}))
	assert.Equal(t, 5, exitCode(&api.Error{Kind: api.KindOperation}))
	assert.Equal(t, 6, exitCode(api.DeleteUser("acme", "charlie")))
}

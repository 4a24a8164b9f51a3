package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Genzer/bitbucklet/internal/api"
)

func TestExactlyOneSubject(t *testing.T) {
	cases := []struct {
		name  string
		user  string
		group string
		ok    bool
	}{
		{"user only", "u1", "", true},
		{"group only", "", "developers", true},
		{"neither", "", "", false},
		{"both", "u1", "developers", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := exactlyOneSubject(tc.user, tc.group)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, api.KindConfig, api.KindOf(err))
		})
	}
}

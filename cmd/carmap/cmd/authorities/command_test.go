package authorities

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/sources"
)

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestAuthoritiesCommandList(t *testing.T) {
	app := &appcontext.Mock{OutputFormatFunc: func() string { return "yaml" }}
	out, err := run(t, app)
	require.NoError(t, err)

	var file authority.File
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	assert.Equal(t, authority.Defaults(), file.Authorities)
}

func TestAuthoritiesCommandField(t *testing.T) {
	out, err := run(t, &appcontext.Mock{}, "valuation.retail")
	require.NoError(t, err)

	var ranking Ranking
	require.NoError(t, json.Unmarshal([]byte(out), &ranking))
	assert.Equal(t, "valuation.retail", ranking.Field)
	assert.Equal(t, sources.CategoryValuation, ranking.Category)
	require.Len(t, ranking.Matches, 1)
	assert.Equal(t, "valuation.*", ranking.Matches[0].Path)
	assert.Equal(t, []sources.ID{sources.Secondary, sources.Primary}, ranking.Order)
}

func TestAuthoritiesCommandSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "secondary", source: "secondary", want: []string{"valuation.*"}},
		{name: "case insensitive", source: " Secondary ", want: []string{"valuation.*"}},
		{name: "primary", source: "primary", want: []string{
			"make", "model", "variant", "year", "color",
			"specifications.*", "runningCosts.*", "performance.*",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &appcontext.Mock{OutputFormatFunc: func() string { return "yaml" }}
			out, err := run(t, app, "--source", tt.source)
			require.NoError(t, err)

			var file authority.File
			require.NoError(t, yaml.Unmarshal([]byte(out), &file))
			paths := make([]string, 0, len(file.Authorities))
			for _, f := range file.Authorities {
				assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.source)), f.Source.String())
				paths = append(paths, f.Path)
			}
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestAuthoritiesCommandUnknownSource(t *testing.T) {
	_, err := run(t, &appcontext.Mock{}, "--source", "synthesized")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestAuthoritiesCommandCustomTable(t *testing.T) {
	app := &appcontext.Mock{
		AuthoritiesFunc: func() (authority.Authority, error) {
			return authority.NewFromFields([]authority.Field{
				{Path: "make", Source: sources.Secondary, Priority: 100},
			})
		},
		OutputFormatFunc: func() string { return "table" },
	}
	out, err := run(t, app, "color")
	require.NoError(t, err)
	assert.Contains(t, out, "Rank")
	assert.NotContains(t, out, "make")
}

func TestAuthoritiesCommandUnknownField(t *testing.T) {
	_, err := run(t, &appcontext.Mock{}, "wheels")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

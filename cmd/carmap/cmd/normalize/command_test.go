package normalize

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/vehicle"
)

func run(t *testing.T, app appcontext.Interface, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, out string) vehicle.Attributes {
	t.Helper()
	var attrs vehicle.Attributes
	require.NoError(t, json.Unmarshal([]byte(out), &attrs))
	return attrs
}

func TestNormalizeCommandPrimary(t *testing.T) {
	out, err := run(t, &appcontext.Mock{}, "", "../testdata/primary.json")
	require.NoError(t, err)

	attrs := decode(t, out)
	require.NotNil(t, attrs.Make)
	assert.Equal(t, "BMW", *attrs.Make)
	require.NotNil(t, attrs.Year)
	assert.Equal(t, 2016, *attrs.Year)
	assert.Nil(t, attrs.Valuation.Retail)
}

func TestNormalizeCommandSecondary(t *testing.T) {
	out, err := run(t, &appcontext.Mock{}, "", "--source", "Secondary", "../testdata/valuation.json")
	require.NoError(t, err)

	attrs := decode(t, out)
	require.NotNil(t, attrs.Valuation.Retail)
	assert.InDelta(t, 14250, *attrs.Valuation.Retail, 1e-9)
	require.NotNil(t, attrs.Valuation.Description)
	assert.Contains(t, *attrs.Valuation.Description, "320d")
}

func TestNormalizeCommandStdin(t *testing.T) {
	out, err := run(t, &appcontext.Mock{}, `{"make":"Volvo","doors":5}`)
	require.NoError(t, err)

	attrs := decode(t, out)
	require.NotNil(t, attrs.Make)
	assert.Equal(t, "Volvo", *attrs.Make)
	require.NotNil(t, attrs.Doors)
	assert.Equal(t, 5, *attrs.Doors)
}

func TestNormalizeCommandMalformed(t *testing.T) {
	out, err := run(t, &appcontext.Mock{}, "", "../testdata/malformed.json")
	require.NoError(t, err)
	assert.Equal(t, vehicle.Attributes{}, decode(t, out))
}

func TestNormalizeCommandTable(t *testing.T) {
	app := &appcontext.Mock{OutputFormatFunc: func() string { return "table" }}

	out, err := run(t, app, `{"make":"Volvo"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Volvo")
	assert.NotContains(t, out, "valuation.retail")

	out, err = run(t, app, `{"make":"Volvo"}`, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "valuation.retail")
}

func TestNormalizeCommandUnknownSource(t *testing.T) {
	_, err := run(t, &appcontext.Mock{}, "{}", "--source", "synthesized")
	require.Error(t, err)

	var validation *errors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "source", validation.Field)
}

package provenance

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/pkg/provenance"
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

func TestProvenanceCommandJSON(t *testing.T) {
	out, err := run(t, &appcontext.Mock{},
		"-p", "../testdata/primary.json",
		"-s", "../testdata/valuation.json")
	require.NoError(t, err)

	var view View
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	year, ok := view.Provenance.Selected("year")
	require.True(t, ok)
	assert.Equal(t, sources.Primary, year.Source)
	assert.Equal(t, provenance.ReasonPreferred, year.Reason)
	require.Len(t, view.Provenance["year"], 2)
	assert.Equal(t, provenance.ReasonOutranked, view.Provenance["year"][1].Reason)

	valuation, ok := view.FieldSources["valuation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "secondary", valuation["retail"])
	assert.Empty(t, view.Rejections)
}

func TestProvenanceCommandFields(t *testing.T) {
	out, err := run(t, &appcontext.Mock{},
		"-p", "../testdata/primary.json",
		"-s", "../testdata/valuation.json",
		"--fields", "valuation.*")
	require.NoError(t, err)

	var view View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.NotEmpty(t, view.Provenance)
	for field := range view.Provenance {
		assert.Contains(t, field, "valuation.")
	}
}

func TestProvenanceCommandUnresolved(t *testing.T) {
	out, err := run(t, &appcontext.Mock{},
		"-p", "../testdata/primary.json",
		"--fields", "valuation.*,make")
	require.NoError(t, err)

	var view View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Contains(t, view.Unresolved, "valuation.retail")
	assert.NotContains(t, view.Unresolved, "make")
	for _, field := range view.Unresolved {
		assert.True(t, strings.HasPrefix(field, "valuation."), field)
	}
}

func TestProvenanceCommandRejections(t *testing.T) {
	app := &appcontext.Mock{OutputFormatFunc: func() string { return "table" }}
	dir := t.TempDir()
	primary := writePayload(t, dir, "primary.json", `{"make":"BMW","model":"3.0L"}`)
	secondary := writePayload(t, dir, "secondary.json", `{"model":"X5"}`)

	out, err := run(t, app, "-p", primary, "-s", secondary)
	require.NoError(t, err)
	assert.Contains(t, out, "3.0L")
	assert.Contains(t, out, provenance.ReasonImplausible)
	assert.Contains(t, out, "X5")
}

func TestProvenanceCommandReport(t *testing.T) {
	out, err := run(t, &appcontext.Mock{}, "-p", "../testdata/primary.json", "--report", "-f", "make")
	require.NoError(t, err)
	assert.Contains(t, out, "Provenance Report")
	assert.Contains(t, out, "make:")
	assert.NotContains(t, out, "valuation.retail")
}

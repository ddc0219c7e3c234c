package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

func problem(t *testing.T, topo circuit.Topology) circuit.Problem {
	t.Helper()
	return circuit.Generate(topo, circuit.NewSeededSource(5))
}

func TestSweep(t *testing.T) {
	pts := Sweep(10)
	require.Len(t, pts, samples)
	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 0.0, pts[0].Y)
	assert.Equal(t, MaxVoltage, pts[len(pts)-1].X)
	assert.InDelta(t, 3.0, pts[len(pts)-1].Y, 1e-12)
}

func TestNew_PlotsEveryTopology(t *testing.T) {
	for _, topo := range circuit.Topologies {
		t.Run(topo.String(), func(t *testing.T) {
			p, err := New(problem(t, topo))
			require.NoError(t, err)
			assert.Contains(t, p.Title.Text, topo.String())
			assert.Equal(t, MaxVoltage, p.X.Max)
		})
	}
}

func TestNew_RejectsUnsolvedProblem(t *testing.T) {
	_, err := New(circuit.Problem{})
	require.Error(t, err)
}

func TestWriteIV_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIV(&buf, problem(t, circuit.Combination), "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "output is not a PNG")
}

func TestWriteIV_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIV(&buf, problem(t, circuit.Parallel), "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestWriteIV_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteIV(&buf, problem(t, circuit.Series), "bmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Zero(t, buf.Len())
}

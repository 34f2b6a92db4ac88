package report_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/nfasim/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter(t *testing.T) {
	sim := abSimulator(t)
	res, err := sim.Run(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.NewJSONWriter(&buf).Write(sim.Automaton(), res))

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 3)

	var step report.StepLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &step))
	assert.Equal(t, report.StepLine{Symbol: "a", Active: []string{"q1"}}, step)

	var verdict report.VerdictLine
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &verdict))
	assert.Equal(t, "accept", verdict.Verdict)
	assert.Equal(t, []string{"q2"}, verdict.Final)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	w, err := report.NewWriter("", &buf)
	require.NoError(t, err)
	assert.IsType(t, &report.TextWriter{}, w)

	w, err = report.NewWriter(report.FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &report.JSONWriter{}, w)

	_, err = report.NewWriter("xml", &buf)
	assert.Error(t, err)
}

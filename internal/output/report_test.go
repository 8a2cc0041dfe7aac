package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cen-ngc5139/runqlen/internal/config"
	"github.com/cen-ngc5139/runqlen/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable 内存直方图表,记录读清零次数
type fakeTable struct {
	hists  []metadata.Hist
	drains int
}

func (f *fakeTable) NrCPU() int {
	return len(f.hists)
}

func (f *fakeTable) ReadAndReset(cpu int) (metadata.Hist, error) {
	h := f.hists[cpu]
	f.hists[cpu] = metadata.Hist{}
	f.drains++
	return h, nil
}

func mkHist(counts ...uint32) metadata.Hist {
	var h metadata.Hist
	copy(h.Slots[:], counts)
	return h
}

func newTestReporter(table HistReader, cfg config.Configuration, buf *bytes.Buffer) *Reporter {
	return &Reporter{table: table, cfg: cfg, node: "test-node", w: buf}
}

func scenarioTable() *fakeTable {
	return &fakeTable{hists: []metadata.Hist{
		mkHist(5, 2, 1, 0),
		mkHist(0, 0, 0, 3),
	}}
}

func TestReportOccupancyAggregate(t *testing.T) {
	var buf bytes.Buffer
	table := scenarioTable()
	r := newTestReporter(table, config.Configuration{Runqocc: true}, &buf)

	require.NoError(t, r.Report(time.Now()))

	// 聚合模式下无论 CPU 数量,每个周期只输出一行
	assert.Equal(t, "\nrunqocc: 54.55%\n", buf.String())
	assert.Equal(t, 2, table.drains)
}

func TestReportOccupancyPerCPU(t *testing.T) {
	var buf bytes.Buffer
	table := scenarioTable()
	r := newTestReporter(table, config.Configuration{Runqocc: true, PerCPU: true}, &buf)

	require.NoError(t, r.Report(time.Now()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "runqocc, CPU 0    37.50%", lines[1])
	assert.Equal(t, "runqocc, CPU 1   100.00%", lines[2])
}

func TestReportOccupancyEmptyTick(t *testing.T) {
	var buf bytes.Buffer
	table := &fakeTable{hists: make([]metadata.Hist, 4)}
	r := newTestReporter(table, config.Configuration{Runqocc: true}, &buf)

	require.NoError(t, r.Report(time.Now()))

	// 无采样时分母下限为 1,结果为 0.00%
	assert.Contains(t, buf.String(), "runqocc: 0.00%")
}

func TestReportTimestamp(t *testing.T) {
	var buf bytes.Buffer
	table := scenarioTable()
	r := newTestReporter(table, config.Configuration{Runqocc: true, Timestamp: true}, &buf)

	now := time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)
	require.NoError(t, r.Report(now))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "09:05:07", lines[1])
}

func TestReportLinearHistAggregate(t *testing.T) {
	var buf bytes.Buffer
	table := scenarioTable()
	r := newTestReporter(table, config.Configuration{}, &buf)

	require.NoError(t, r.Report(time.Now()))

	out := buf.String()
	// 聚合模式只渲染一个直方图块
	assert.Equal(t, 1, strings.Count(out, "count     distribution"))
	assert.NotContains(t, out, "cpu =")
	assert.Equal(t, 2, table.drains)
}

func TestReportLinearHistPerCPU(t *testing.T) {
	var buf bytes.Buffer
	table := scenarioTable()
	r := newTestReporter(table, config.Configuration{PerCPU: true}, &buf)

	require.NoError(t, r.Report(time.Now()))

	out := buf.String()
	// 每个 CPU 一个输出块
	assert.Contains(t, out, "cpu = 0")
	assert.Contains(t, out, "cpu = 1")
	assert.Equal(t, 2, strings.Count(out, "count     distribution"))
}

func TestReportDrainsTableEachTick(t *testing.T) {
	var buf bytes.Buffer
	table := scenarioTable()
	r := newTestReporter(table, config.Configuration{Runqocc: true}, &buf)

	require.NoError(t, r.Report(time.Now()))

	buf.Reset()
	require.NoError(t, r.Report(time.Now()))

	// 第二个周期读到的是清零后的表
	assert.Contains(t, buf.String(), "runqocc: 0.00%")
}

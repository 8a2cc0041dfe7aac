package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cen-ngc5139/runqlen/internal/cache"
	"github.com/cen-ngc5139/runqlen/internal/config"
	"github.com/cen-ngc5139/runqlen/internal/log"
	"github.com/cen-ngc5139/runqlen/internal/metadata"
)

// HistReader 每个 CPU 一行直方图的读清零视图
type HistReader interface {
	ReadAndReset(cpu int) (metadata.Hist, error)
	NrCPU() int
}

// Reporter 每个上报周期被调用一次:清空直方图表并按配置渲染输出,
// 同时把占用率记录写入缓存与外部 sink
type Reporter struct {
	table HistReader
	cfg   config.Configuration
	sink  *Output
	node  string
	w     io.Writer
}

func NewReporter(table HistReader, cfg config.Configuration, sink *Output, node string) *Reporter {
	return &Reporter{
		table: table,
		cfg:   cfg,
		sink:  sink,
		node:  node,
		w:     os.Stdout,
	}
}

func (r *Reporter) Report(now time.Time) error {
	fmt.Fprintln(r.w)

	if r.cfg.Timestamp {
		fmt.Fprintf(r.w, "%-8s\n", now.Format("15:04:05"))
	}

	if r.cfg.Runqocc {
		return r.reportOccupancy(now)
	}

	return r.reportLinearHist(now)
}

func (r *Reporter) reportOccupancy(now time.Time) error {
	if r.cfg.PerCPU {
		for cpu := 0; cpu < r.table.NrCPU(); cpu++ {
			hist, err := r.table.ReadAndReset(cpu)
			if err != nil {
				return err
			}

			fmt.Fprintf(r.w, "runqocc, CPU %-3d %6.2f%%\n", cpu, hist.Occupancy())
			r.record(now, cpu, hist)
		}
		return nil
	}

	agg, err := r.drainAll()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.w, "runqocc: %0.2f%%\n", agg.Occupancy())
	r.record(now, -1, agg)

	return nil
}

func (r *Reporter) reportLinearHist(now time.Time) error {
	if r.cfg.PerCPU {
		for cpu := 0; cpu < r.table.NrCPU(); cpu++ {
			hist, err := r.table.ReadAndReset(cpu)
			if err != nil {
				return err
			}

			fmt.Fprintf(r.w, "cpu = %d\n", cpu)
			PrintLinearHist(r.w, hist.Slots[:], "runqlen")
			r.record(now, cpu, hist)
		}
		return nil
	}

	agg, err := r.drainAll()
	if err != nil {
		return err
	}

	PrintLinearHist(r.w, agg.Slots[:], "runqlen")
	r.record(now, -1, agg)

	return nil
}

// drainAll 清空所有 CPU 的直方图并逐槽累加为一个聚合直方图
func (r *Reporter) drainAll() (metadata.Hist, error) {
	var agg metadata.Hist

	for cpu := 0; cpu < r.table.NrCPU(); cpu++ {
		hist, err := r.table.ReadAndReset(cpu)
		if err != nil {
			return agg, err
		}
		agg.Add(hist)
	}

	return agg, nil
}

func (r *Reporter) record(now time.Time, cpu int, hist metadata.Hist) {
	sample := metadata.RunqSample{
		Ts:        now,
		CPU:       cpu,
		Samples:   hist.Samples(),
		Queued:    hist.Queued(),
		Occupancy: hist.Occupancy(),
		Node:      r.node,
	}

	cache.RunqSampleMap.Store(cpu, sample)

	if r.sink == nil {
		return
	}

	if err := r.sink.Push(sample); err != nil {
		log.Errorf("failed to push runq sample: %v", err)
	}
}

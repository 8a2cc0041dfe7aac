package bpf

import (
	"github.com/cen-ngc5139/runqlen/internal/binary"
	"github.com/cen-ngc5139/runqlen/internal/metadata"
	"github.com/cilium/ebpf"
	"github.com/pkg/errors"
)

// histEntries 抽象 hists 数组 map 的读写,便于在测试中替换内核 map
type histEntries interface {
	Lookup(key, valueOut interface{}) error
	Update(key, value interface{}, flags ebpf.MapUpdateFlags) error
}

// HistTable 每个 CPU 一行直方图,由内核态采样程序写入,用户态读取并清零
//
// 读清零与采样自增之间没有任何同步,二者并发时每个上报周期每个 CPU
// 至多丢失一次采样,为换取近零开销的采样这是接受的竞争而不是缺陷
type HistTable struct {
	m     histEntries
	nrCPU int
}

func NewHistTable(coll *ebpf.Collection, nrCPU int) (*HistTable, error) {
	m, ok := coll.Maps["hists"]
	if !ok {
		return nil, errors.New("hists map not found in collection")
	}

	if uint32(nrCPU) > m.MaxEntries() {
		return nil, errors.Errorf("cpu count %d exceeds hists map capacity %d, "+
			"please increase MAX_CPU_NR and regenerate", nrCPU, m.MaxEntries())
	}

	return &HistTable{m: m, nrCPU: nrCPU}, nil
}

func (t *HistTable) NrCPU() int {
	return t.nrCPU
}

// ReadAndReset 返回 cpu 对应的直方图并写回全零
func (t *HistTable) ReadAndReset(cpu int) (metadata.Hist, error) {
	var hist binary.RunqlenHist

	key := uint32(cpu)
	if err := t.m.Lookup(key, &hist); err != nil {
		return metadata.Hist{}, errors.Wrapf(err, "failed to lookup hist for cpu %d", cpu)
	}

	var zero binary.RunqlenHist
	if err := t.m.Update(key, zero, ebpf.UpdateAny); err != nil {
		return metadata.Hist{}, errors.Wrapf(err, "failed to reset hist for cpu %d", cpu)
	}

	return metadata.Hist(hist), nil
}

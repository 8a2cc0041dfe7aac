package metadata

import "time"

// MaxSlots 直方图槽位数上限,与 bpf/runqlen.h 中的 MAX_SLOTS 保持一致
// 槽位 k 统计运行队列长度恰好为 k 的采样次数,最后一个槽位为溢出槽,
// 槽位 0 表示采样时该 CPU 上没有排队任务
const MaxSlots = 32

type Hist struct {
	Slots [MaxSlots]uint32
}

// Add 将 other 逐槽累加到当前直方图
func (h *Hist) Add(other Hist) {
	for i, v := range other.Slots {
		h.Slots[i] += v
	}
}

// Samples 返回本直方图记录的采样总数
func (h Hist) Samples() uint64 {
	var total uint64
	for _, v := range h.Slots {
		total += uint64(v)
	}
	return total
}

// Queued 返回运行队列非空的采样次数,即除槽位 0 之外的计数之和
func (h Hist) Queued() uint64 {
	var queued uint64
	for slot, v := range h.Slots {
		if slot == 0 {
			continue
		}
		queued += uint64(v)
	}
	return queued
}

// Occupancy 返回运行队列占用率百分比,分母下限取 1,本周期无采样时结果为 0
func (h Hist) Occupancy() float64 {
	samples := h.Samples()
	if samples < 1 {
		samples = 1
	}
	return 100 * float64(h.Queued()) / float64(samples)
}

// Aggregate 返回所有直方图的逐槽求和
func Aggregate(hists []Hist) Hist {
	var agg Hist
	for _, h := range hists {
		agg.Add(h)
	}
	return agg
}

// RunqSample 一个上报周期内单个 CPU(或聚合)的占用率记录
// CPU 为 -1 表示跨 CPU 聚合
type RunqSample struct {
	Ts        time.Time `json:"ts"`
	CPU       int       `json:"cpu"`
	Samples   uint64    `json:"samples"`
	Queued    uint64    `json:"queued"`
	Occupancy float64   `json:"occupancy"`
	Node      string    `json:"node"`
}

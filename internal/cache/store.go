package cache

import "sync"

// RunqSampleMap 保存最近一个上报周期内每个 CPU 的占用率记录
// key: cpu 编号
// value: metadata.RunqSample
var RunqSampleMap *sync.Map

func init() {
	RunqSampleMap = new(sync.Map)
}

package bpf

import (
	"sync"
	"unsafe"

	"github.com/cilium/ebpf"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

// SampleFreq 采样频率(次/秒),取 99 错开内核周期性任务,避免与之锁步
const SampleFreq = 99

// 便于在测试中替换系统调用
var (
	perfEventOpen = unix.PerfEventOpen
	ioctlSetInt   = unix.IoctlSetInt
	closeFd       = unix.Close
	progFD        = func(prog *ebpf.Program) int { return prog.FD() }
)

type Sampling struct {
	sync.Mutex
	fds []int
}

// AttachPerfEvents 在每个 CPU 上打开一个 CPU_CLOCK 软件采样事件并绑定 prog
// 任何一个 CPU 附加失败都会回收已附加的事件并整体失败:
// 部分 CPU 缺失采样会造成静默少报,按正确性问题处理而不是降级运行
func AttachPerfEvents(prog *ebpf.Program, nrCPU int, freq uint64) (*Sampling, error) {
	s := &Sampling{fds: make([]int, 0, nrCPU)}

	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_SOFTWARE,
		Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
		Config: unix.PERF_COUNT_SW_CPU_CLOCK,
		Sample: freq,
		Bits:   unix.PerfBitFreq,
	}

	for cpu := 0; cpu < nrCPU; cpu++ {
		fd, err := perfEventOpen(&attr, -1, cpu, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			s.Detach()
			return nil, errors.Wrapf(err, "failed to init perf sampling on cpu %d", cpu)
		}

		s.addFd(fd)

		if err := ioctlSetInt(fd, unix.PERF_EVENT_IOC_SET_BPF, progFD(prog)); err != nil {
			s.Detach()
			return nil, errors.Wrapf(err, "failed to attach perf event on cpu %d", cpu)
		}

		if err := ioctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			s.Detach()
			return nil, errors.Wrapf(err, "failed to enable perf event on cpu %d", cpu)
		}
	}

	klog.V(2).Infof("attached perf sampling on %d cpus at %d Hz", nrCPU, freq)

	return s, nil
}

func (s *Sampling) addFd(fd int) {
	s.Lock()
	defer s.Unlock()

	s.fds = append(s.fds, fd)
}

// HaveSampling 是否存在已附加的采样事件
func (s *Sampling) HaveSampling() bool {
	s.Lock()
	defer s.Unlock()

	return len(s.fds) > 0
}

// Detach 释放所有已附加的采样事件,可重复调用
func (s *Sampling) Detach() {
	s.Lock()
	defer s.Unlock()

	var errg errgroup.Group

	for _, fd := range s.fds {
		fd := fd
		errg.Go(func() error {
			_ = ioctlSetInt(fd, unix.PERF_EVENT_IOC_DISABLE, 0)
			_ = closeFd(fd)
			return nil
		})
	}

	_ = errg.Wait()
	s.fds = nil
}

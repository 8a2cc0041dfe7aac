package run

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	ebpfbinary "github.com/cen-ngc5139/runqlen/internal/binary"
	"github.com/cen-ngc5139/runqlen/internal/bpf"
	"github.com/cen-ngc5139/runqlen/internal/config"
	"github.com/cen-ngc5139/runqlen/internal/log"
	"github.com/cen-ngc5139/runqlen/internal/output"
	"github.com/cen-ngc5139/runqlen/server"
	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/btf"
	"github.com/cilium/ebpf/rlimit"
	"golang.org/x/sys/unix"
)

func Run(cfg config.Configuration) {
	if cfg.ConfigPath != "" {
		err := config.LoadConfig(&cfg)
		if err != nil {
			log.Fatal(err)
		}
	}

	if cfg.Pprof.Enable {
		go func() {
			addr := cfg.Pprof.Addr
			if addr == "" {
				addr = ":6060"
			}
			http.ListenAndServe(addr, nil)
		}()
	}

	// 读取环境变量
	var nodeName string
	nodeName = os.Getenv("NODE_NAME")
	if nodeName == "" {
		// 获取当前节点主机名
		var err error
		nodeName, err = os.Hostname()
		if err != nil {
			log.Fatalf("Failed to get the hostname: %v", err)
		}
	}

	// 移除 eBPF 程序的内存限制
	if err := rlimit.RemoveMemlock(); err != nil {
		log.Fatalf("Failed to remove memlock limit: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 设置临时 rlimit
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &unix.Rlimit{
		Cur: 8192,
		Max: 8192,
	}); err != nil {
		log.Fatalf("failed to set temporary rlimit: %s", err)
	}

	var btfSpec *btf.Spec
	var err error
	if cfg.BTF.Kernel != "" {
		btfSpec, err = btf.LoadSpec(cfg.BTF.Kernel)
	} else {
		// 从 /sys/kernel/btf/vmlinux 加载内核 BTF 规范
		btfSpec, err = btf.LoadKernelSpec()
	}

	if err != nil {
		log.Fatalf("Failed to load BTF spec: %s", err)
	}

	var opts ebpf.CollectionOptions
	opts.Programs.KernelTypes = btfSpec
	if cfg.Verbose {
		opts.Programs.LogLevel = ebpf.LogLevelInstruction
	}

	// 加载 ebpf 程序集
	var bpfSpec *ebpf.CollectionSpec
	bpfSpec, err = ebpfbinary.LoadRunqlen()
	if err != nil {
		log.Fatalf("Failed to load bpf spec: %v", err)
	}

	coll, err := ebpf.NewCollectionWithOptions(bpfSpec, opts)
	if err != nil {
		var (
			ve          *ebpf.VerifierError
			verifierLog string
		)
		if errors.As(err, &ve) {
			verifierLog = fmt.Sprintf("Verifier error: %+v\n", ve)
		}

		log.Fatalf("Failed to load objects: %s\n%+v", verifierLog, err)
	}
	defer coll.Close()

	// 获取 CPU 数量并检查 hists map 容量
	nrCPU, err := ebpf.PossibleCPU()
	if err != nil {
		log.Fatalf("Failed to get possible cpu number: %v", err)
	}

	table, err := bpf.NewHistTable(coll, nrCPU)
	if err != nil {
		log.Fatalf("Failed to init hist table: %v", err)
	}

	prog, ok := coll.Programs["do_sample"]
	if !ok {
		log.Fatalf("do_sample program not found in collection")
	}

	// 在每个 CPU 上附加定时采样事件
	sampler, err := bpf.AttachPerfEvents(prog, nrCPU, bpf.SampleFreq)
	if err != nil {
		log.Fatalf("Failed to attach perf events: %v", err)
	}
	defer sampler.Detach()

	sink, err := output.NewOutput(ctx, cfg)
	if err != nil {
		// log.Fatalf 直接退出,defer 不会执行,先回收已附加的采样事件
		sampler.Detach()
		log.Fatalf("Failed to init output sink: %v", err)
	}
	defer sink.Close()

	reporter := output.NewReporter(table, cfg, sink, nodeName)

	fmt.Println("Sampling run queue length... Hit Ctrl-C to end.")

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 启动任务管理器,驱动上报循环与可选的指标服务
	tm := NewTaskManager()

	if cfg.Metrics.Enable {
		addr := cfg.Metrics.Addr
		if addr == "" {
			addr = ":8080"
		}
		tm.Add("指标服务", func() error { return server.NewServer(addr).Start(loopCtx) })
	}

	tm.Add("上报循环", func() error {
		sessionLoop(loopCtx, time.Duration(cfg.Interval)*time.Second, cfg.Times, reporter)
		cancel()
		return nil
	})

	if err := tm.Run(); err != nil {
		log.Errorf("错误: %v\n", err)
	}
}

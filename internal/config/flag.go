package config

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

func SetFlags(pflag *pflag.FlagSet) {
	pflag.AddGoFlagSet(flag.CommandLine)

	pflag.BoolVarP(&Config.PerCPU, "cpus", "C", false, "Print output for each CPU separately")
	pflag.BoolVarP(&Config.Runqocc, "runqocc", "O", false, "Report run queue occupancy")
	pflag.BoolVarP(&Config.Timestamp, "timestamp", "T", false, "Include timestamp on output")
	pflag.BoolVarP(&Config.Verbose, "verbose", "v", false, "Verbose debug output")
	pflag.StringVar(&Config.ConfigPath, "config-path", "", "specify config file path")

	pflag.Set("logtostderr", "false")
	pflag.Set("alsologtostderr", "false")
	pflag.Set("log_file", "")
}

// ParseArgs 解析位置参数 [interval [count]],两者都必须是正整数
func ParseArgs(cfg *Configuration, args []string) error {
	if len(args) > 0 {
		interval, err := strconv.Atoi(args[0])
		if err != nil || interval <= 0 {
			return errors.Errorf("invalid interval: %s", args[0])
		}
		cfg.Interval = interval
	}

	if len(args) > 1 {
		times, err := strconv.Atoi(args[1])
		if err != nil || times <= 0 {
			return errors.Errorf("invalid times: %s", args[1])
		}
		cfg.Times = times
	}

	return nil
}

package main

import (
	"os"

	"github.com/cen-ngc5139/runqlen/internal/config"
	"github.com/cen-ngc5139/runqlen/internal/log"
	"github.com/cen-ngc5139/runqlen/internal/run"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	log.InitLogger("./log/", 100, 5, 30)
	defer klog.Flush()

	var rootCmd = &cobra.Command{
		Use:   "runqlen [interval] [count]",
		Short: "A Linux eBPF-based tool for summarizing scheduler run queue length as a histogram",
		Example: `  runqlen         # summarize run queue length as a histogram
  runqlen 1 10    # print 1 second summaries, 10 times
  runqlen -T 1    # 1s summaries and timestamps
  runqlen -O      # report run queue occupancy
  runqlen -C      # show each CPU separately`,
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := config.ParseArgs(&config.Config, args); err != nil {
				log.Fatal(err)
			}
			run.Run(config.Config)
		},
	}

	config.SetFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}

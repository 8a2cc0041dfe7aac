package config

// 无界运行的默认值,与 runqlen(8) 保持一致:不给定位置参数时一直采样到收到信号
const Unbounded = 99999999

type Configuration struct {
	PerCPU     bool          `yaml:"per_cpu"`
	Runqocc    bool          `yaml:"runqocc"`
	Timestamp  bool          `yaml:"timestamp"`
	Verbose    bool          `yaml:"verbose"`
	Interval   int           `yaml:"interval"`
	Times      int           `yaml:"times"`
	Pprof      PprofConfig   `yaml:"pprof"`
	Metrics    MetricsConfig `yaml:"metrics"`
	BTF        BTFConfig     `yaml:"btf"`
	Output     OutputConfig  `yaml:"output"`
	Logging    LoggingConfig `yaml:"logging"`
	ConfigPath string        `yaml:"-"`
}

type PprofConfig struct {
	Enable bool   `yaml:"enable"`
	Addr   string `yaml:"addr"`
}

type MetricsConfig struct {
	Enable bool   `yaml:"enable"`
	Addr   string `yaml:"addr"`
}

type BTFConfig struct {
	Kernel   string `yaml:"kernel"`
	ModelDir string `yaml:"model_dir"`
}

type OutputConfig struct {
	Type       OutputType             `yaml:"type"`
	Stdout     struct{}               `yaml:"stdout"`
	Kafka      KafkaOutputConfig      `yaml:"kafka"`
	Clickhouse ClickhouseOutputConfig `yaml:"clickhouse"`
}

type OutputType string

const (
	OutputTypeStdout     OutputType = "stdout"
	OutputTypeKafka      OutputType = "kafka"
	OutputTypeClickhouse OutputType = "clickhouse"
)

type ClickhouseOutputConfig struct {
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type KafkaOutputConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type LoggingConfig struct {
	ToStderr     bool   `yaml:"to_stderr"`
	AlsoToStderr bool   `yaml:"also_to_stderr"`
	File         string `yaml:"file"`
}

// Config 仅作为命令行参数的绑定目标,启动完成后按值传入各组件,不再全局读取
var Config = Configuration{
	Interval: Unbounded,
	Times:    Unbounded,
	Output:   OutputConfig{Type: OutputTypeStdout},
}

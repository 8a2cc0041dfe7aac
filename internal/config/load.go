package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig 从 yaml 配置文件加载配置并覆盖到 cfg 上
func LoadConfig(cfg *Configuration) error {
	raw, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", cfg.ConfigPath)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", cfg.ConfigPath)
	}

	return cfg.Validate()
}

func (c *Configuration) Validate() error {
	if c.Interval <= 0 {
		return errors.Errorf("invalid interval: %d", c.Interval)
	}

	if c.Times <= 0 {
		return errors.Errorf("invalid times: %d", c.Times)
	}

	switch c.Output.Type {
	case "", OutputTypeStdout:
	case OutputTypeKafka:
		if len(c.Output.Kafka.Brokers) == 0 || c.Output.Kafka.Topic == "" {
			return errors.New("kafka output requires brokers and topic")
		}
	case OutputTypeClickhouse:
		if c.Output.Clickhouse.Host == "" {
			return errors.New("clickhouse output requires host")
		}
	default:
		return errors.Errorf("unknown output type: %s", c.Output.Type)
	}

	return nil
}

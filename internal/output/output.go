package output

import (
	"context"
	"encoding/json"

	"github.com/ClickHouse/clickhouse-go/v2"
	ckdriver "github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/cen-ngc5139/runqlen/internal/config"
	"github.com/cen-ngc5139/runqlen/internal/log"
	"github.com/cen-ngc5139/runqlen/internal/metadata"
	"github.com/cen-ngc5139/runqlen/pkg/client"
	"github.com/cen-ngc5139/runqlen/pkg/kafka"
	"github.com/pkg/errors"
)

const ckBatchSize = 10

const ckInsertRunqOccupancy = `
	INSERT INTO runq_occupancy (
		ts, cpu, samples, queued,
		occupancy, node
	)
`

type SinkCli struct {
	CKCli    CKCli
	KafkaCli *kafka.Producer
}

type CKCli struct {
	conn    clickhouse.Conn
	batch   ckdriver.Batch
	counter int
}

type Output struct {
	SinkType config.OutputType
	SinkCli  SinkCli
	ctx      context.Context
}

func NewOutput(ctx context.Context, cfg config.Configuration) (*Output, error) {
	o := &Output{SinkType: cfg.Output.Type, ctx: ctx}
	if o.SinkType == "" {
		o.SinkType = config.OutputTypeStdout
	}

	if err := o.InitSinkCli(cfg.Output); err != nil {
		return nil, errors.Wrapf(err, "failed to init sink %s client", o.SinkType)
	}

	return o, nil
}

func (o *Output) Close() {
	if o.SinkType == config.OutputTypeClickhouse {
		log.Info("close clickhouse client")
		if o.SinkCli.CKCli.counter > 0 {
			if err := o.SinkCli.CKCli.batch.Send(); err != nil {
				log.Errorf("failed to flush clickhouse batch: %v", err)
			}
		}
		o.SinkCli.CKCli.conn.Close()
	}
}

func (o *Output) InitSinkCli(cfg config.OutputConfig) (err error) {
	if o.SinkType == config.OutputTypeClickhouse {
		conn, err := client.NewClickHouseConn(cfg.Clickhouse, cfg.Clickhouse.Database)
		if err != nil {
			return errors.Wrap(err, "failed to init clickhouse client")
		}

		o.SinkCli.CKCli.batch, err = conn.PrepareBatch(o.ctx, ckInsertRunqOccupancy)
		if err != nil {
			return errors.Wrap(err, "failed to prepare batch")
		}

		o.SinkCli.CKCli.conn = conn
	}

	if o.SinkType == config.OutputTypeKafka {
		if err := kafka.CreateTopic(cfg.Kafka.Brokers, cfg.Kafka.Topic); err != nil {
			log.Warnf("failed to create kafka topic %s: %v", cfg.Kafka.Topic, err)
		}

		o.SinkCli.KafkaCli, err = kafka.NewSyncProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return errors.Wrap(err, "failed to init kafka client")
		}
	}

	return nil
}

// Push 将一条占用率记录写入外部 sink,stdout 类型下为空操作,
// 人类可读输出已由 Reporter 负责
func (o *Output) Push(sample metadata.RunqSample) error {
	if o.SinkType == config.OutputTypeClickhouse {
		batch, count, err := insertRunqSample(o.ctx, o.SinkCli.CKCli.conn, o.SinkCli.CKCli.batch, sample, o.SinkCli.CKCli.counter)
		if err != nil {
			return errors.Wrap(err, "failed to insert runq sample")
		}
		o.SinkCli.CKCli.batch = batch
		o.SinkCli.CKCli.counter = count
	}

	if o.SinkType == config.OutputTypeKafka {
		raw, err := json.Marshal(sample)
		if err != nil {
			return errors.Wrap(err, "failed to marshal runq sample")
		}

		_, _, err = o.SinkCli.KafkaCli.SyncSendMessage(raw)
		if err != nil {
			return errors.Wrap(err, "fail to push kafka data")
		}
	}

	return nil
}

func insertRunqSample(ctx context.Context, conn clickhouse.Conn, batch ckdriver.Batch,
	sample metadata.RunqSample, count int) (ckdriver.Batch, int, error) {
	err := batch.Append(
		sample.Ts,
		int32(sample.CPU),
		sample.Samples,
		sample.Queued,
		sample.Occupancy,
		sample.Node,
	)
	if err != nil {
		log.Errorf("failed to append to batch: %v", err)
		return batch, count, err
	}

	count++
	if count >= ckBatchSize {
		if err := batch.Send(); err != nil {
			log.Errorf("failed to send batch: %v", err)
			return batch, count, err
		}
		count = 0

		batch, err = conn.PrepareBatch(ctx, ckInsertRunqOccupancy)
		if err != nil {
			log.Errorf("failed to prepare new batch: %v", err)
			return batch, count, err
		}
	}

	return batch, count, nil
}

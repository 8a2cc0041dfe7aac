package kafka

import (
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
)

type Producer struct {
	SyncProducer sarama.SyncProducer
	config       *sarama.Config
	topic        string
	enqueued     int
	errors       int
}

// NewSyncProducer 创建producer
// brokers: kafka brokers 格式 []string{"10.122.7.8:9092", "10.122.7.15:9092"}
// topic: 占用率记录写入的 topic
func NewSyncProducer(brokers []string, topic string) (producer *Producer, err error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_0_1_0
	config.Producer.RequiredAcks = sarama.WaitForAll // 发送完数据需要leader和follow都确认
	config.Producer.Retry.Max = 3                    // 设置重试3次
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Return.Successes = true // 同步模式下必须为true

	producer = &Producer{
		topic:  topic,
		config: config,
	}

	producer.SyncProducer, err = sarama.NewSyncProducer(brokers, config)
	if err != nil {
		err = fmt.Errorf("failed to create sync producer: %v", err)
		return
	}
	return
}

// SyncSendMessage 发送同步消息给kafka
func (p *Producer) SyncSendMessage(message []byte) (partition int32, offset int64, err error) {
	strTime := strconv.Itoa(int(time.Now().Unix()))

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strTime),
		Value: sarama.StringEncoder(message),
	}

	partition, offset, err = p.SyncProducer.SendMessage(msg)
	if err != nil {
		p.errors++
		err = fmt.Errorf("failed to message, error: %v", err)
	}
	p.enqueued++
	return
}

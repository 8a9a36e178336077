package kafka

import (
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

const coalesceWindow = 1 * time.Second

type LogicFunc func(ctx context.Context, msgs []*sarama.ConsumerMessage) error

// pullMessageCoalesced 在时间窗口内攒一批消息后只执行一次业务逻辑。
// 刷新触发类事件可合并：一批事件与一条事件触发的动作相同。
func pullMessageCoalesced(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	var pending []*sarama.ConsumerMessage
	ticker := time.NewTicker(coalesceWindow)
	defer ticker.Stop()

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if err := logic(session.Context(), pending); err != nil {
			// 失败不重试，下一个轮询周期会补偿
			log.Error("process coalesced messages error", "count", len(pending), "err", err)
		}
		session.MarkMessage(pending[len(pending)-1], "")
		pending = nil
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			pending = append(pending, msg)
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			flush()
			return nil
		}
	}
}

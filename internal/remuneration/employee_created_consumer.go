package remuneration

import (
	"context"
	"encoding/json"
	"errors"

	"go-hcm/internal/events"
	remunerationerrors "go-hcm/internal/remuneration/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle seeds a zero baseline remuneration line for every
// newly hired employee so payroll always has a row to update.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	service Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = service.Create(ctx, CreateRemunerationRequest{
			EmployeeID:          event.EmployeeID,
			GrossAmount:         "0",
			Tax:                 "0",
			Deductions:          "0",
			Bonus:               "0",
			WelfareContribution: "0",
		})
		if err != nil {
			// Redelivered event, the baseline line already exists.
			if errors.Is(err, remunerationerrors.ErrRemunerationAlreadyExists) {
				log.Warn("remuneration already exists for event, skipping",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create baseline remuneration failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("baseline remuneration created from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

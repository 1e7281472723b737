package salary

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	salaryerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary/errors"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmployeeCreatedConsumer provisions a zeroed salary row for every new hire
// so payroll never sees an employee without a pay structure.
type EmployeeCreatedConsumer struct {
	reader  *kafka.Reader
	service Service
	logger  *zap.Logger
}

func NewEmployeeCreatedConsumer(
	broker string,
	groupID string,
	service Service,
	logger ...*zap.Logger,
) *EmployeeCreatedConsumer {
	l := zap.L().Named("salary.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.consumer")
	}

	return &EmployeeCreatedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmployeeCreatedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		service: service,
		logger:  l,
	}
}

func (c *EmployeeCreatedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("consume employee_created failed", zap.Error(err))
				continue
			}

			var event events.EmployeeCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				c.logger.Error("decode employee_created event failed", zap.Error(err))
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit invalid employee_created event failed", zap.Error(commitErr))
				}
				continue
			}

			_, err = c.service.Create(ctx, CreateSalaryRequest{
				EmployeeID:  event.EmployeeID,
				GrossSalary: 0,
			})
			if err != nil {
				// Duplicate event is safe to skip.
				if errors.Is(err, salaryerrors.ErrSalaryAlreadyExists) {
					c.logger.Warn("salary already exists for event, skipping",
						zap.String("employee_id", event.EmployeeID),
					)
					if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
						c.logger.Error("commit duplicate employee_created event failed", zap.Error(commitErr))
					}
					continue
				}

				c.logger.Error("create default salary failed",
					zap.String("employee_id", event.EmployeeID),
					zap.Error(err),
				)
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit employee_created event failed", zap.Error(err))
				continue
			}

			c.logger.Info("default salary created from employee_created event",
				zap.String("employee_id", event.EmployeeID),
			)
		}
	}()
}

func (c *EmployeeCreatedConsumer) Close() error {
	return c.reader.Close()
}

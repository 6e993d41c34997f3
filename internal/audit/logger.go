package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

// LogSink writes events to the structured log.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Record(_ context.Context, ev Event) error {
	fields := []zap.Field{
		zap.String("request_id", ev.RequestID),
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
	}
	if ev.BookingStart != nil {
		fields = append(fields, zap.Time("booking_start", *ev.BookingStart))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	s.log.Info("audit", fields...)
	return nil
}

// GormSink persists events to the audit_logs table.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Record(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		RequestID:    ev.RequestID,
		Action:       ev.Action,
		Entity:       ev.Entity,
		BookingStart: ev.BookingStart,
		Email:        ev.Email,
		Metadata:     metaJSON,
	}

	return s.db.WithContext(ctx).Create(&row).Error
}

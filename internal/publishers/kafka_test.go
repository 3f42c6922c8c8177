package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaExporter_Export(t *testing.T) {
	record := models.TransitionRecord{
		SiteID:     "5b0c3d3e-8f39-4b0c-9a49-3a0f0cf7d0a1",
		UserID:     "e2b5f1a4-52a8-4a57-b6b1-1f8ab0a2a0c3",
		URL:        "https://example.com",
		StatusCode: 503,
		Status:     "http_error",
		Kind:       "changed",
		ObservedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		writeErr error
		wantErr  bool
	}{
		{name: "success"},
		{name: "writer error", writeErr: errors.New("broker down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockKafkaWriter(ctrl)
			writer.EXPECT().
				WriteMessages(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
					require.Len(t, msgs, 1)
					assert.Equal(t, record.SiteID, string(msgs[0].Key))

					var got models.TransitionRecord
					require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
					assert.Equal(t, record, got)
					return tt.writeErr
				})

			err := NewKafkaExporter(writer).Export(context.Background(), record)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.writeErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaExporter_NilWriter(t *testing.T) {
	e := NewKafkaExporter(nil)
	assert.NoError(t, e.Export(context.Background(), models.TransitionRecord{SiteID: "x"}))
	assert.NoError(t, e.Close())
}

func TestKafkaExporter_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().Close().Return(nil)

	assert.NoError(t, NewKafkaExporter(writer).Close())
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"k1:9092", "k2:9092"}, "transitions")
	defer w.Close()

	assert.Equal(t, "transitions", w.Topic)
	assert.NotNil(t, w.Addr)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

var completedEvent = messaging.TransactionEvent{
	EventType:       messaging.EventTransactionCompleted,
	TransactionID:   12,
	AccountID:       3,
	TransactionType: "cashin",
	Method:          "gcash",
	Amount:          "25.00",
	Status:          "completed",
	Balance:         "125.00",
	OccurredAt:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
}

func TestSQSPublisher(t *testing.T) {
	t.Run("standard queue", func(t *testing.T) {
		client := &fakeSQS{}
		publisher := NewSQSPublisher(client, "https://sqs.ap-southeast-1.amazonaws.com/123/ledger-events", logger.NewNoopLogger())

		require.NoError(t, publisher.Publish(context.Background(), completedEvent))
		require.Len(t, client.inputs, 1)

		input := client.inputs[0]
		assert.Equal(t, "https://sqs.ap-southeast-1.amazonaws.com/123/ledger-events", aws.ToString(input.QueueUrl))
		assert.Nil(t, input.MessageGroupId)
		assert.Equal(t, messaging.EventTransactionCompleted, aws.ToString(input.MessageAttributes["eventType"].StringValue))

		var decoded messaging.TransactionEvent
		require.NoError(t, json.Unmarshal([]byte(aws.ToString(input.MessageBody)), &decoded))
		assert.Equal(t, completedEvent, decoded)
	})

	t.Run("fifo queue groups by account", func(t *testing.T) {
		client := &fakeSQS{}
		publisher := NewSQSPublisher(client, "https://sqs.ap-southeast-1.amazonaws.com/123/ledger-events.fifo", logger.NewNoopLogger())

		require.NoError(t, publisher.Publish(context.Background(), completedEvent))
		assert.Equal(t, "3", aws.ToString(client.inputs[0].MessageGroupId))
		assert.Equal(t, "12-transaction.completed", aws.ToString(client.inputs[0].MessageDeduplicationId))
	})

	t.Run("send failure", func(t *testing.T) {
		client := &fakeSQS{err: errors.New("throttled")}
		publisher := NewSQSPublisher(client, "queue", logger.NewNoopLogger())

		err := publisher.Publish(context.Background(), completedEvent)
		assert.ErrorContains(t, err, "throttled")
	})
}

func TestLogPublisher(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info("Transaction event", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["transaction_id"] == uint64(12) && fields["balance"] == "125.00"
	})).Once()

	assert.NoError(t, NewLogPublisher(mockLogger).Publish(context.Background(), completedEvent))
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), completedEvent))
}

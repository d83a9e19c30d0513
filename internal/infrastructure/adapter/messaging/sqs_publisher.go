package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
)

// SQSAPI is the part of the SQS client the publisher uses
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends transaction events to an SQS queue. On a FIFO queue
// events of one account keep their order.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
	fifo     bool
	logger   coreport.Logger
}

var _ messaging.EventPublisher = (*SQSPublisher)(nil)

// NewSQSPublisher creates a publisher for queueURL
func NewSQSPublisher(client SQSAPI, queueURL string, logger coreport.Logger) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
		fifo:     strings.HasSuffix(queueURL, ".fifo"),
		logger:   logger,
	}
}

// NewSQSClient builds a client from the default AWS credential chain. A
// non-empty endpoint points it at a local emulator.
func NewSQSClient(ctx context.Context, region, endpoint string) (*sqs.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// Publish sends one event
func (p *SQSPublisher) Publish(ctx context.Context, event messaging.TransactionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event for SQS: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {DataType: aws.String("String"), StringValue: aws.String(event.EventType)},
			"accountId": {DataType: aws.String("Number"), StringValue: aws.String(strconv.FormatUint(event.AccountID, 10))},
		},
	}
	if p.fifo {
		input.MessageGroupId = aws.String(strconv.FormatUint(event.AccountID, 10))
		input.MessageDeduplicationId = aws.String(fmt.Sprintf("%d-%s", event.TransactionID, event.EventType))
	}

	out, err := p.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send transaction event to SQS: %w", err)
	}

	p.logger.Debug("Transaction event sent to SQS", map[string]any{
		"event_type":     event.EventType,
		"transaction_id": event.TransactionID,
		"message_id":     aws.ToString(out.MessageId),
	})
	return nil
}

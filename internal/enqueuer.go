package internal

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
)

type Enqueuer struct {
	client *sqs.SQS
}

func (e *Enqueuer) SendMsg(ctx context.Context, msg interface{}, queue string) error {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	queueURL, err := e.client.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		return err
	}

	_, err = e.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBytes)),
		QueueUrl:    queueURL.QueueUrl,
	})
	return err
}

func NewEnqueuer(client *sqs.SQS) *Enqueuer {
	return &Enqueuer{
		client: client,
	}
}

package deployments

import (
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/pitchside/newsletter-service/internal/clients"
	"github.com/pitchside/newsletter-service/internal/publish"
)

type SQSDeployer interface {
	Deploy() (string, error)
}

type SQSPreviewDeployer struct {
	Client *sqs.Client
	Queue  string
}

func getQueues(c *sqs.Client) (queueUrls []string, err error) {

	paginator := sqs.NewListQueuesPaginator(c, &sqs.ListQueuesInput{})

	for paginator.HasMorePages() {
		output, err := paginator.NextPage(context.TODO())

		if err != nil {
			return nil, fmt.Errorf("failed to get queue urls - %w", err)
		}

		queueUrls = append(queueUrls, output.QueueUrls...)
	}

	return
}

func createSQSQueue(c *sqs.Client, queueName string) (queueUrl string, err error) {

	queue, err := c.CreateQueue(context.TODO(), &sqs.CreateQueueInput{
		QueueName: &queueName,
		Attributes: map[string]string{
			"FifoQueue":                 "true",
			"ContentBasedDeduplication": "true",
			"VisibilityTimeout":         "300",
		},
	})

	if err != nil {
		return "", fmt.Errorf("failed to create queue - %w", err)
	}

	queueUrl = *queue.QueueUrl

	return
}

// Deploy makes sure the preview queue exists and returns its url. The
// queue is a FIFO queue so preview jobs stay ordered per newsletter
// topic and duplicates are dropped on the message id.
func (d *SQSPreviewDeployer) Deploy() (string, error) {

	queueName := fmt.Sprintf("%s.fifo", d.Queue)

	availableQueues, err := getQueues(d.Client)

	if err != nil {
		return "", err
	}

	for _, queueUrl := range availableQueues {
		if path.Base(queueUrl) == queueName {
			return queueUrl, nil
		}
	}

	return createSQSQueue(d.Client, queueName)
}

func NewSQSPreviewDeployer(c publish.SQSPreviewConfigurator) (*SQSPreviewDeployer, error) {

	client, err := clients.NewSQSClient(c)

	if err != nil {
		return nil, fmt.Errorf("failed to create sqs client - %w", err)
	}

	queue, err := c.GetPreviewQueue()

	if err != nil {
		return nil, err
	}

	deployer := SQSPreviewDeployer{
		Client: client,
		Queue:  queue,
	}

	return &deployer, nil
}

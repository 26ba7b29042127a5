package database

import (
	"confeccao_os/internal/config"
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded configuration.
// A non-empty DynamoDBEndpoint points the client at DynamoDB Local.
func ConnectDynamoDB(cfg *config.Config) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// NewAWSConfig builds the shared SDK config used by the DynamoDB and S3 clients.
func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}

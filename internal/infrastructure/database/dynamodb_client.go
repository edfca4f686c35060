package database

import (
	"context"
	"log"

	appconfig "appraisal_booking/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client backing idempotency keys and invoice payments.
//
// Local-friendly settings:
//   - aws.region (default: us-east-1)
//   - aws.access_key_id / aws.secret_access_key (default: local)
//   - dynamodb.endpoint (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, awsCfg appconfig.AWSConfig, ddbCfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, awsCfg)
	if err != nil {
		log.Printf("[dynamodb] failed to create aws config region=%s err=%v", awsCfg.Region, err)
		return nil, err
	}

	endpoint := ddbCfg.Endpoint
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Printf("[dynamodb] client ready region=%s endpoint=%q", cfg.Region, endpoint)
	return client, nil
}

func NewAWSConfig(ctx context.Context, awsCfg appconfig.AWSConfig) (aws.Config, error) {
	region := awsCfg.Region
	if region == "" {
		region = "us-east-1"
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		valueOrDefault(awsCfg.AccessKeyID, "local"),
		valueOrDefault(awsCfg.SecretAccessKey, "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

func valueOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

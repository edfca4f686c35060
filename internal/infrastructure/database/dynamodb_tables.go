package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	appconfig "appraisal_booking/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PaymentsJobIDIndex must match the index the invoice payment repository queries.
const PaymentsJobIDIndex = "job_id-index"

type tableAPI interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, in *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
}

// EnsureDynamoTables creates the idempotency and payments tables when they are missing.
// Existing tables are left untouched.
func EnsureDynamoTables(ctx context.Context, ddb tableAPI, cfg appconfig.DynamoDBConfig) error {
	created, err := ensureTable(ctx, ddb, &dynamodb.CreateTableInput{
		TableName:   aws.String(cfg.IdempotencyTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
		},
	})
	if err != nil {
		return err
	}
	if created {
		_, err := ddb.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
			TableName: aws.String(cfg.IdempotencyTable),
			TimeToLiveSpecification: &types.TimeToLiveSpecification{
				AttributeName: aws.String("expires_at"),
				Enabled:       aws.Bool(true),
			},
		})
		if err != nil {
			// expired keys are still reclaimed by the conditional claim
			log.Printf("[dynamodb] ttl not enabled table=%s err=%v", cfg.IdempotencyTable, err)
		}
	}

	_, err = ensureTable(ctx, ddb, &dynamodb.CreateTableInput{
		TableName:   aws.String(cfg.PaymentsTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("job_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("date"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(PaymentsJobIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("job_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("date"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	return err
}

func ensureTable(ctx context.Context, ddb tableAPI, in *dynamodb.CreateTableInput) (bool, error) {
	name := aws.ToString(in.TableName)
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
	if err == nil {
		log.Printf("[dynamodb] table exists table=%s", name)
		return false, nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return false, fmt.Errorf("describe table %s: %w", name, err)
	}

	if _, err := ddb.CreateTable(ctx, in); err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return false, nil
		}
		return false, fmt.Errorf("create table %s: %w", name, err)
	}
	log.Printf("[dynamodb] table created table=%s", name)
	return true, nil
}

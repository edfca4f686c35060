package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIdempotencyTableName = "booking_idempotency"

type idempotencyItem struct {
	Key       string `dynamodbav:"key"`
	Status    string `dynamodbav:"status"`
	JobID     string `dynamodbav:"job_id,omitempty"`
	EventID   string `dynamodbav:"event_id,omitempty"`
	Response  string `dynamodbav:"response,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// IdempotencyDynamoRepository stores booking idempotency keys.
//
// Table requirements:
//   - PK: key (string)
//   - TTL attribute: expires_at (unix seconds)
//
// DynamoDB deletes expired items lazily, so Claim also takes over keys whose
// expires_at is already in the past.
type IdempotencyDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IIdempotencyRepository = (*IdempotencyDynamoRepository)(nil)

func NewIdempotencyDynamoRepository(ddb dynamoAPI, tableName string) *IdempotencyDynamoRepository {
	return &IdempotencyDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, defaultIdempotencyTableName),
		now:       time.Now,
	}
}

func (r *IdempotencyDynamoRepository) Claim(ctx context.Context, key string, ttl time.Duration) (entities.IdempotencyRecord, bool, error) {
	now := r.now().UTC()
	rec := entities.IdempotencyRecord{
		Key:       key,
		Status:    entities.IdempotencyInProgress,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	av, err := attributevalue.MarshalMap(toIdempotencyItem(rec))
	if err != nil {
		return entities.IdempotencyRecord{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#k) OR #exp < :now"),
		ExpressionAttributeNames: map[string]string{
			"#k":   "key",
			"#exp": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return rec, true, nil
	}

	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return entities.IdempotencyRecord{}, false, err
	}
	if len(cfe.Item) > 0 {
		existing, err := unmarshalIdempotency(cfe.Item)
		return existing, false, err
	}

	existing, err := r.get(ctx, key)
	return existing, false, err
}

func (r *IdempotencyDynamoRepository) Complete(ctx context.Context, key, jobID, eventID string, response []byte) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression:    aws.String("SET #s = :s, #job = :job, #evt = :evt, #resp = :resp"),
		ConditionExpression: aws.String("attribute_exists(#k)"),
		ExpressionAttributeNames: map[string]string{
			"#k":    "key",
			"#s":    "status",
			"#job":  "job_id",
			"#evt":  "event_id",
			"#resp": "response",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s":    &types.AttributeValueMemberS{Value: string(entities.IdempotencyCompleted)},
			":job":  &types.AttributeValueMemberS{Value: jobID},
			":evt":  &types.AttributeValueMemberS{Value: eventID},
			":resp": &types.AttributeValueMemberS{Value: string(response)},
		},
	})
	return err
}

// MarkPendingJob only moves keys still in progress; a completed key is never downgraded.
func (r *IdempotencyDynamoRepository) MarkPendingJob(ctx context.Context, key, eventID string, response []byte) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression:    aws.String("SET #s = :s, #evt = :evt, #resp = :resp"),
		ConditionExpression: aws.String("#s = :from"),
		ExpressionAttributeNames: map[string]string{
			"#s":    "status",
			"#evt":  "event_id",
			"#resp": "response",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s":    &types.AttributeValueMemberS{Value: string(entities.IdempotencyPendingJob)},
			":from": &types.AttributeValueMemberS{Value: string(entities.IdempotencyInProgress)},
			":evt":  &types.AttributeValueMemberS{Value: eventID},
			":resp": &types.AttributeValueMemberS{Value: string(response)},
		},
	})
	return err
}

func (r *IdempotencyDynamoRepository) Release(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func (r *IdempotencyDynamoRepository) get(ctx context.Context, key string) (entities.IdempotencyRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IdempotencyRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.IdempotencyRecord{}, nil
	}
	return unmarshalIdempotency(out.Item)
}

func unmarshalIdempotency(av map[string]types.AttributeValue) (entities.IdempotencyRecord, error) {
	var it idempotencyItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.IdempotencyRecord{}, err
	}
	return fromIdempotencyItem(it), nil
}

func toIdempotencyItem(rec entities.IdempotencyRecord) idempotencyItem {
	return idempotencyItem{
		Key:       rec.Key,
		Status:    string(rec.Status),
		JobID:     rec.JobID,
		EventID:   rec.EventID,
		Response:  string(rec.Response),
		CreatedAt: formatTime(rec.CreatedAt),
		ExpiresAt: rec.ExpiresAt.Unix(),
	}
}

func fromIdempotencyItem(it idempotencyItem) entities.IdempotencyRecord {
	rec := entities.IdempotencyRecord{
		Key:       it.Key,
		Status:    entities.IdempotencyStatus(it.Status),
		JobID:     it.JobID,
		EventID:   it.EventID,
		CreatedAt: parseTime(it.CreatedAt),
		ExpiresAt: time.Unix(it.ExpiresAt, 0).UTC(),
	}
	if it.Response != "" {
		rec.Response = []byte(it.Response)
	}
	return rec
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"appraisal_booking/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	putFn    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getFn    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	queryFn  func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	updateFn func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteFn func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putFn(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getFn(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.queryFn(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateFn(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteFn(in)
}

func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestInvoicePaymentDynamoRepository(t *testing.T) {
	t.Run("create uses conditional put on configured table", func(t *testing.T) {
		var captured *dynamodb.PutItemInput
		ddb := &fakeDynamo{putFn: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = in
			return &dynamodb.PutItemOutput{}, nil
		}}
		repo := NewInvoicePaymentDynamoRepository(ddb, "")

		p := entities.InvoicePayment{ID: "p1", JobID: "j1", Amount: 525, Date: time.Now(), Status: entities.PaymentStatusApproved}
		if _, err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(captured.TableName) != defaultPaymentsTableName {
			t.Fatalf("unexpected table: %s", aws.ToString(captured.TableName))
		}
		if aws.ToString(captured.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(captured.ConditionExpression))
		}
	})

	t.Run("get missing returns zero", func(t *testing.T) {
		ddb := &fakeDynamo{getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		got, err := NewInvoicePaymentDynamoRepository(ddb, "payments").GetByID(context.Background(), "x")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero payment, got %+v err=%v", got, err)
		}
	})

	t.Run("list by job sorts newest first", func(t *testing.T) {
		older := invoicePaymentItem{ID: "p1", JobID: "j1", Amount: "100.00", Date: "2025-01-01T00:00:00Z", Status: "approved"}
		newer := invoicePaymentItem{ID: "p2", JobID: "j1", Amount: "200.50", Date: "2025-02-01T00:00:00Z", Status: "pending"}
		ddb := &fakeDynamo{queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != paymentsJobIDIndex {
				t.Fatalf("unexpected index: %s", aws.ToString(in.IndexName))
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, older), mustMarshal(t, newer),
			}}, nil
		}}

		got, err := NewInvoicePaymentDynamoRepository(ddb, "payments").ListByJobID(context.Background(), "j1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p2" || got[0].Amount != 200.5 {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestIdempotencyDynamoRepository_Claim(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new key is claimed", func(t *testing.T) {
		ddb := &fakeDynamo{putFn: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if in.ExpressionAttributeNames["#k"] != "key" {
				t.Fatalf("expected key attribute name alias")
			}
			return &dynamodb.PutItemOutput{}, nil
		}}
		repo := NewIdempotencyDynamoRepository(ddb, "")
		repo.now = func() time.Time { return fixed }

		rec, claimed, err := repo.Claim(context.Background(), "k1", time.Hour)
		if err != nil || !claimed {
			t.Fatalf("expected claim, got claimed=%v err=%v", claimed, err)
		}
		if rec.Status != entities.IdempotencyInProgress || !rec.ExpiresAt.Equal(fixed.Add(time.Hour)) {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("existing key returns stored record from condition failure", func(t *testing.T) {
		stored := idempotencyItem{Key: "k1", Status: "completed", JobID: "j1", Response: `{"job_id":"j1"}`, ExpiresAt: fixed.Add(time.Hour).Unix()}
		ddb := &fakeDynamo{putFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: mustMarshal(t, stored)}
		}}
		repo := NewIdempotencyDynamoRepository(ddb, "")

		rec, claimed, err := repo.Claim(context.Background(), "k1", time.Hour)
		if err != nil || claimed {
			t.Fatalf("expected existing record, got claimed=%v err=%v", claimed, err)
		}
		if rec.Status != entities.IdempotencyCompleted || rec.JobID != "j1" || string(rec.Response) != `{"job_id":"j1"}` {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("condition failure without item falls back to get", func(t *testing.T) {
		stored := idempotencyItem{Key: "k1", Status: "in_progress"}
		ddb := &fakeDynamo{
			putFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
			getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: mustMarshal(t, stored)}, nil
			},
		}
		rec, claimed, err := NewIdempotencyDynamoRepository(ddb, "").Claim(context.Background(), "k1", time.Hour)
		if err != nil || claimed || rec.Status != entities.IdempotencyInProgress {
			t.Fatalf("unexpected result: %+v claimed=%v err=%v", rec, claimed, err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ddb := &fakeDynamo{putFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		_, _, err := NewIdempotencyDynamoRepository(ddb, "").Claim(context.Background(), "k1", time.Hour)
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestIdempotencyDynamoRepository_CompleteAndRelease(t *testing.T) {
	var update *dynamodb.UpdateItemInput
	var deleted *dynamodb.DeleteItemInput
	ddb := &fakeDynamo{
		updateFn: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			update = in
			return &dynamodb.UpdateItemOutput{}, nil
		},
		deleteFn: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			deleted = in
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	repo := NewIdempotencyDynamoRepository(ddb, "keys")

	if err := repo.Complete(context.Background(), "k1", "j1", "e1", []byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status := update.ExpressionAttributeValues[":s"].(*types.AttributeValueMemberS).Value
	if status != string(entities.IdempotencyCompleted) || aws.ToString(update.TableName) != "keys" {
		t.Fatalf("unexpected update: status=%s table=%s", status, aws.ToString(update.TableName))
	}

	if err := repo.Release(context.Background(), "k1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Key["key"].(*types.AttributeValueMemberS).Value != "k1" {
		t.Fatalf("unexpected delete key")
	}
}

func TestIdempotencyDynamoRepository_MarkPendingJob(t *testing.T) {
	var update *dynamodb.UpdateItemInput
	ddb := &fakeDynamo{
		updateFn: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			update = in
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}

	if err := NewIdempotencyDynamoRepository(ddb, "keys").MarkPendingJob(context.Background(), "k1", "e1", []byte(`{"event_id":"e1"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := update.ExpressionAttributeValues
	if got := values[":s"].(*types.AttributeValueMemberS).Value; got != string(entities.IdempotencyPendingJob) {
		t.Fatalf("unexpected status %q", got)
	}
	if got := values[":from"].(*types.AttributeValueMemberS).Value; got != string(entities.IdempotencyInProgress) {
		t.Fatalf("only in-progress keys may move to pending, got %q", got)
	}
	if aws.ToString(update.ConditionExpression) != "#s = :from" {
		t.Fatalf("unexpected condition %q", aws.ToString(update.ConditionExpression))
	}
	if values[":evt"].(*types.AttributeValueMemberS).Value != "e1" || values[":resp"].(*types.AttributeValueMemberS).Value != `{"event_id":"e1"}` {
		t.Fatalf("unexpected values %+v", values)
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPayoutsTableName     = "payouts"
	defaultPayoutSlotsTableName = "payout_slots"
	payoutsPaymentIDIndex       = "payment_id-index"
	payoutsStatusIndex          = "status-index"
	payoutsRetryIndex           = "retry-index"

	// retryQueue is the partition value of the sparse retry index; only retryable failures carry it.
	retryQueue = "due"

	abandonedError = "abandoned: processing attempt exceeded stale threshold"
)

// ErrPayoutClaimContended is returned when a claim transaction loses to a concurrent writer
// and no active attempt can be read back.
var ErrPayoutClaimContended = errors.New("payout slot claim contended")

type payoutItem struct {
	ID             string `dynamodbav:"id"`
	PaymentID      string `dynamodbav:"payment_id"`
	FieldID        string `dynamodbav:"field_id"`
	Channel        string `dynamodbav:"channel"`
	Amount         int64  `dynamodbav:"amount"`
	Currency       string `dynamodbav:"currency"`
	Recipient      string `dynamodbav:"recipient"`
	IdempotencyKey string `dynamodbav:"idempotency_key"`
	Status         string `dynamodbav:"status"`
	ProviderID     string `dynamodbav:"provider_id,omitempty"`
	ProviderStatus string `dynamodbav:"provider_status,omitempty"`
	ProviderError  string `dynamodbav:"provider_error,omitempty"`
	RetryCount     int    `dynamodbav:"retry_count"`
	Retryable      bool   `dynamodbav:"retryable"`
	RetryQueue     string `dynamodbav:"retry_queue,omitempty"`
	NextRetryAt    int64  `dynamodbav:"next_retry_at,omitempty"`
	SupersededBy   string `dynamodbav:"superseded_by,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	CompletedAt    string `dynamodbav:"completed_at,omitempty"`
}

// slotItem holds the single active attempt for an idempotency key.
type slotItem struct {
	IdempotencyKey string `dynamodbav:"idempotency_key"`
	PayoutID       string `dynamodbav:"payout_id"`
	Status         string `dynamodbav:"status"`
	RetryCount     int    `dynamodbav:"retry_count"`
	UpdatedAtUnix  int64  `dynamodbav:"updated_at_unix"`
}

// PayoutDynamoRepository persists Payout attempts in DynamoDB.
//
// Table requirements:
//   - payouts PK: id (string)
//   - GSI: payment_id-index (PK: payment_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)
//   - GSI: retry-index (PK: retry_queue, SK: next_retry_at number), sparse
//   - payout_slots PK: idempotency_key (string)
//
// The slot row and the payout rows are always written in one transaction, which is what
// keeps a single processing or completed attempt per idempotency key.

type PayoutDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	slotsTable string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb DynamoAPI) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
		slotsTable: getenvDefault("PAYOUT_SLOTS_TABLE", defaultPayoutSlotsTableName),
	}
}

func (r *PayoutDynamoRepository) ClaimAttempt(ctx context.Context, p entities.Payout, staleBefore time.Time) (entities.Payout, bool, error) {
	slot, found, err := r.getSlot(ctx, p.IdempotencyKey)
	if err != nil {
		return entities.Payout{}, false, err
	}

	stale := false
	if found {
		stale = slot.Status == string(entities.PayoutStatusProcessing) && slot.UpdatedAtUnix < staleBefore.UnixMilli()
		if entities.PayoutStatus(slot.Status).IsActive() && !stale {
			current, err := r.GetByID(ctx, slot.PayoutID)
			return current, false, err
		}
		p.RetryCount = slot.RetryCount + 1
	}
	p.Status = entities.PayoutStatusProcessing

	payoutAV, err := attributevalue.MarshalMap(toPayoutItem(p))
	if err != nil {
		return entities.Payout{}, false, err
	}
	slotAV, err := attributevalue.MarshalMap(slotItem{
		IdempotencyKey: p.IdempotencyKey,
		PayoutID:       p.ID,
		Status:         string(entities.PayoutStatusProcessing),
		RetryCount:     p.RetryCount,
		UpdatedAtUnix:  p.UpdatedAt.UnixMilli(),
	})
	if err != nil {
		return entities.Payout{}, false, err
	}

	items := []types.TransactWriteItem{
		{Put: r.slotPut(slotAV, slot, found, staleBefore)},
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     payoutAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	if found {
		items = append(items, types.TransactWriteItem{Update: r.supersede(slot.PayoutID, p, stale)})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if !errors.As(err, &canceled) {
			return entities.Payout{}, false, err
		}
		// Someone else moved the slot first; report their attempt if it is still active.
		slot, found, getErr := r.getSlot(ctx, p.IdempotencyKey)
		if getErr != nil {
			return entities.Payout{}, false, getErr
		}
		if found && entities.PayoutStatus(slot.Status).IsActive() {
			current, getErr := r.GetByID(ctx, slot.PayoutID)
			return current, false, getErr
		}
		return entities.Payout{}, false, fmt.Errorf("%w: %v", ErrPayoutClaimContended, err)
	}
	return p, true, nil
}

func (r *PayoutDynamoRepository) slotPut(av map[string]types.AttributeValue, prev slotItem, found bool, staleBefore time.Time) *types.Put {
	if !found {
		return &types.Put{
			TableName:           aws.String(r.slotsTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(idempotency_key)"),
		}
	}
	return &types.Put{
		TableName:           aws.String(r.slotsTable),
		Item:                av,
		ConditionExpression: aws.String("payout_id = :prev AND (#status = :failed OR (#status = :processing AND updated_at_unix < :stale))"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev":       &types.AttributeValueMemberS{Value: prev.PayoutID},
			":failed":     &types.AttributeValueMemberS{Value: string(entities.PayoutStatusFailed)},
			":processing": &types.AttributeValueMemberS{Value: string(entities.PayoutStatusProcessing)},
			":stale":      &types.AttributeValueMemberN{Value: strconv.FormatInt(staleBefore.UnixMilli(), 10)},
		},
	}
}

func (r *PayoutDynamoRepository) supersede(prevID string, next entities.Payout, stale bool) *types.Update {
	set := "SET superseded_by = :next, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":next": &types.AttributeValueMemberS{Value: next.ID},
		":ua":   &types.AttributeValueMemberS{Value: formatTime(next.UpdatedAt)},
	}
	names := map[string]string{"#id": "id"}
	if stale {
		set += ", #status = :failed, provider_error = :abandoned, retryable = :false"
		names["#status"] = "status"
		values[":failed"] = &types.AttributeValueMemberS{Value: string(entities.PayoutStatusFailed)}
		values[":abandoned"] = &types.AttributeValueMemberS{Value: abandonedError}
		values[":false"] = &types.AttributeValueMemberBOOL{Value: false}
	}
	return &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: prevID},
		},
		UpdateExpression:          aws.String(set + " REMOVE retry_queue, next_retry_at"),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

func (r *PayoutDynamoRepository) MarkCompleted(ctx context.Context, p entities.Payout) error {
	completedAt := p.UpdatedAt
	if p.CompletedAt != nil {
		completedAt = *p.CompletedAt
	}
	update := &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		UpdateExpression:    aws.String("SET #status = :completed, provider_id = :pid, provider_status = :ps, provider_error = :pe, retryable = :false, updated_at = :ua, completed_at = :ca REMOVE retry_queue, next_retry_at"),
		ConditionExpression: aws.String("#status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(entities.PayoutStatusCompleted)},
			":processing": &types.AttributeValueMemberS{Value: string(entities.PayoutStatusProcessing)},
			":pid":        &types.AttributeValueMemberS{Value: p.ProviderID},
			":ps":         &types.AttributeValueMemberS{Value: p.ProviderStatus},
			":pe":         &types.AttributeValueMemberS{Value: p.ProviderError},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":ua":         &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
			":ca":         &types.AttributeValueMemberS{Value: formatTime(completedAt)},
		},
	}
	return r.settle(ctx, p, entities.PayoutStatusCompleted, update)
}

// RecordSubmission stores the provider reference of an accepted transfer on an attempt that
// stays processing, and restarts its stale clock.
func (r *PayoutDynamoRepository) RecordSubmission(ctx context.Context, p entities.Payout) error {
	update := &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		UpdateExpression:    aws.String("SET provider_id = :pid, provider_status = :ps, updated_at = :ua"),
		ConditionExpression: aws.String("#status = :processing AND attribute_not_exists(superseded_by)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":processing": &types.AttributeValueMemberS{Value: string(entities.PayoutStatusProcessing)},
			":pid":        &types.AttributeValueMemberS{Value: p.ProviderID},
			":ps":         &types.AttributeValueMemberS{Value: p.ProviderStatus},
			":ua":         &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		},
	}
	return r.settle(ctx, p, entities.PayoutStatusProcessing, update)
}

func (r *PayoutDynamoRepository) MarkFailed(ctx context.Context, p entities.Payout) error {
	set := "SET #status = :failed, provider_id = :pid, provider_status = :ps, provider_error = :pe, retryable = :retryable, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":failed":     &types.AttributeValueMemberS{Value: string(entities.PayoutStatusFailed)},
		":processing": &types.AttributeValueMemberS{Value: string(entities.PayoutStatusProcessing)},
		":pid":        &types.AttributeValueMemberS{Value: p.ProviderID},
		":ps":         &types.AttributeValueMemberS{Value: p.ProviderStatus},
		":pe":         &types.AttributeValueMemberS{Value: p.ProviderError},
		":retryable":  &types.AttributeValueMemberBOOL{Value: p.Retryable},
		":ua":         &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
	}
	expr := set + " REMOVE retry_queue, next_retry_at"
	if p.Retryable && p.NextRetryAt != nil {
		expr = set + ", retry_queue = :q, next_retry_at = :next"
		values[":q"] = &types.AttributeValueMemberS{Value: retryQueue}
		values[":next"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(p.NextRetryAt.UnixMilli(), 10)}
	}

	update := &types.Update{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String("#status = :processing"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	}
	return r.settle(ctx, p, entities.PayoutStatusFailed, update)
}

// settle writes the payout outcome and the slot status together. The slot condition fails
// when a stale takeover already replaced this attempt.
func (r *PayoutDynamoRepository) settle(ctx context.Context, p entities.Payout, status entities.PayoutStatus, payoutUpdate *types.Update) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: payoutUpdate},
			{Update: &types.Update{
				TableName: aws.String(r.slotsTable),
				Key: map[string]types.AttributeValue{
					"idempotency_key": &types.AttributeValueMemberS{Value: p.IdempotencyKey},
				},
				UpdateExpression:    aws.String("SET #status = :status, updated_at_unix = :u"),
				ConditionExpression: aws.String("payout_id = :id"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status": &types.AttributeValueMemberS{Value: string(status)},
					":u":      &types.AttributeValueMemberN{Value: strconv.FormatInt(p.UpdatedAt.UnixMilli(), 10)},
					":id":     &types.AttributeValueMemberS{Value: p.ID},
				},
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("settle payout %s as %s: %w", p.ID, status, err)
	}
	return nil
}

func (r *PayoutDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}
	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Payout, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
		ScanIndexForward: aws.Bool(true),
	}, 0)
}

// ListByStatus returns the newest payouts in the given status first.
func (r *PayoutDynamoRepository) ListByStatus(ctx context.Context, status entities.PayoutStatus, limit int) ([]entities.Payout, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsStatusIndex),
		KeyConditionExpression: aws.String("#status = :s"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(false),
	}, limit)
}

func (r *PayoutDynamoRepository) ListDueForRetry(ctx context.Context, now time.Time, limit int) ([]entities.Payout, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsRetryIndex),
		KeyConditionExpression: aws.String("retry_queue = :q AND next_retry_at <= :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q":   &types.AttributeValueMemberS{Value: retryQueue},
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
		},
		ScanIndexForward: aws.Bool(true),
	}, limit)
}

// ListStaleProcessing returns processing attempts not updated since before, oldest first.
func (r *PayoutDynamoRepository) ListStaleProcessing(ctx context.Context, before time.Time, limit int) ([]entities.Payout, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsStatusIndex),
		KeyConditionExpression: aws.String("#status = :s"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: string(entities.PayoutStatusProcessing)},
		},
		ScanIndexForward: aws.Bool(true),
	}
	// updated_at is not a key of the index, so the age is checked on the decoded rows.
	return r.filteredQuery(ctx, in, limit, func(p entities.Payout) bool {
		return p.SupersededBy == "" && p.UpdatedAt.Before(before)
	})
}

// query pages through the index until limit items are read; limit <= 0 reads everything.
func (r *PayoutDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput, limit int) ([]entities.Payout, error) {
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	return r.filteredQuery(ctx, in, limit, nil)
}

func (r *PayoutDynamoRepository) filteredQuery(ctx context.Context, in *dynamodb.QueryInput, limit int, keep func(entities.Payout) bool) ([]entities.Payout, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, in)

	items := make([]entities.Payout, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it payoutItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p := fromPayoutItem(it)
			if keep != nil && !keep(p) {
				continue
			}
			items = append(items, p)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}
	}
	return items, nil
}

func (r *PayoutDynamoRepository) getSlot(ctx context.Context, key string) (slotItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.slotsTable),
		Key: map[string]types.AttributeValue{
			"idempotency_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return slotItem{}, false, err
	}
	if len(out.Item) == 0 {
		return slotItem{}, false, nil
	}
	var s slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return slotItem{}, false, err
	}
	return s, true, nil
}

func toPayoutItem(p entities.Payout) payoutItem {
	it := payoutItem{
		ID:             p.ID,
		PaymentID:      p.PaymentID,
		FieldID:        p.FieldID,
		Channel:        string(p.Channel),
		Amount:         p.Amount,
		Currency:       p.Currency,
		Recipient:      p.Recipient,
		IdempotencyKey: p.IdempotencyKey,
		Status:         string(p.Status),
		ProviderID:     p.ProviderID,
		ProviderStatus: p.ProviderStatus,
		ProviderError:  p.ProviderError,
		RetryCount:     p.RetryCount,
		Retryable:      p.Retryable,
		SupersededBy:   p.SupersededBy,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
		CompletedAt:    formatTimePtr(p.CompletedAt),
	}
	if p.Retryable && p.NextRetryAt != nil && p.SupersededBy == "" {
		it.RetryQueue = retryQueue
		it.NextRetryAt = p.NextRetryAt.UnixMilli()
	}
	return it
}

func fromPayoutItem(it payoutItem) entities.Payout {
	p := entities.Payout{
		ID:             it.ID,
		PaymentID:      it.PaymentID,
		FieldID:        it.FieldID,
		Channel:        entities.PayoutChannel(it.Channel),
		Amount:         it.Amount,
		Currency:       it.Currency,
		Recipient:      it.Recipient,
		IdempotencyKey: it.IdempotencyKey,
		Status:         entities.PayoutStatus(it.Status),
		ProviderID:     it.ProviderID,
		ProviderStatus: it.ProviderStatus,
		ProviderError:  it.ProviderError,
		RetryCount:     it.RetryCount,
		Retryable:      it.Retryable,
		SupersededBy:   it.SupersededBy,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		CompletedAt:    parseTimePtr(it.CompletedAt),
	}
	if it.NextRetryAt > 0 {
		next := time.UnixMilli(it.NextRetryAt).UTC()
		p.NextRetryAt = &next
	}
	return p
}

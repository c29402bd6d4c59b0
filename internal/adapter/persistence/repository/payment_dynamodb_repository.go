package repository

import (
	"context"
	"errors"
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
	defaultPaymentsTableName     = "payments"
	paymentsProviderTokenIndex   = "provider_token-index"
	paymentsClientReferenceIndex = "client_reference-index"
	paymentsPayoutPendingIndex   = "payout_pending-index"

	// payoutPendingMarker is the partition value of the sparse payout_pending index.
	payoutPendingMarker = "pending"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	ReservationID      string `dynamodbav:"reservation_id"`
	FieldID            string `dynamodbav:"field_id"`
	UserID             string `dynamodbav:"user_id"`
	SessionID          string `dynamodbav:"session_id"`
	ClientReference    string `dynamodbav:"client_reference,omitempty"`
	GrossAmount        int64  `dynamodbav:"gross_amount"`
	PlatformFee        int64  `dynamodbav:"platform_fee"`
	NetToOwner         int64  `dynamodbav:"net_to_owner"`
	CommissionRateBps  int    `dynamodbav:"commission_rate_bps"`
	Currency           string `dynamodbav:"currency"`
	Provider           string `dynamodbav:"provider"`
	ProviderToken      string `dynamodbav:"provider_token,omitempty"`
	CheckoutURL        string `dynamodbav:"checkout_url,omitempty"`
	Status             string `dynamodbav:"status"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	WebhookReceivedAt  string `dynamodbav:"webhook_received_at,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	PayoutPending      string `dynamodbav:"payout_pending,omitempty"`
	PayoutPendingSince int64  `dynamodbav:"payout_pending_since,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_token-index (PK: provider_token)
//   - GSI: client_reference-index (PK: client_reference)
//   - GSI: payout_pending-index (PK: payout_pending, SK: payout_pending_since number), sparse

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	return unmarshalPayment(out.Item)
}

func (r *PaymentDynamoRepository) GetByProviderToken(ctx context.Context, provider entities.Provider, token string) (entities.Payment, error) {
	p, err := r.queryOne(ctx, paymentsProviderTokenIndex, "provider_token", token)
	if err != nil || p.Provider != provider {
		return entities.Payment{}, err
	}
	// GSIs are eventually consistent; the base table holds the authoritative status.
	return r.GetByID(ctx, p.ID)
}

func (r *PaymentDynamoRepository) GetByClientReference(ctx context.Context, clientReference string) (entities.Payment, error) {
	p, err := r.queryOne(ctx, paymentsClientReferenceIndex, "client_reference", clientReference)
	if err != nil || p.ID == "" {
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, p.ID)
}

// TransitionFromPending moves a pending payment to a terminal status with one conditional
// update. A lost race returns the stored payment and false. A move to paid also enters the
// payout_pending index in the same write.
func (r *PaymentDynamoRepository) TransitionFromPending(ctx context.Context, id string, t entities.PaymentTransition) (entities.Payment, bool, error) {
	now := time.Now().UTC()
	set := "SET #status = :to, provider_status = :ps, webhook_received_at = :wr, provider_payload_raw = :raw, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":to":      &types.AttributeValueMemberS{Value: string(t.To)},
		":ps":      &types.AttributeValueMemberS{Value: t.ProviderStatus},
		":wr":      &types.AttributeValueMemberS{Value: formatTime(t.WebhookReceivedAt)},
		":raw":     &types.AttributeValueMemberS{Value: string(t.ProviderPayloadRaw)},
		":ua":      &types.AttributeValueMemberS{Value: formatTime(now)},
		":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
	}
	if t.To == entities.PaymentStatusPaid {
		set += ", payout_pending = :pp, payout_pending_since = :pps"
		values[":pp"] = &types.AttributeValueMemberS{Value: payoutPendingMarker}
		values[":pps"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String(set),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			current, getErr := r.GetByID(ctx, id)
			return current, false, getErr
		}
		return entities.Payment{}, false, err
	}

	updated, err := unmarshalPayment(out.Attributes)
	if err != nil {
		return entities.Payment{}, true, err
	}
	return updated, true, nil
}

// ListPayoutPending returns paid payments still marked payout pending since before the
// given time, oldest first.
func (r *PaymentDynamoRepository) ListPayoutPending(ctx context.Context, before time.Time, limit int) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsPayoutPendingIndex),
		KeyConditionExpression: aws.String("payout_pending = :pp AND payout_pending_since <= :before"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pp":     &types.AttributeValueMemberS{Value: payoutPendingMarker},
			":before": &types.AttributeValueMemberN{Value: strconv.FormatInt(before.UnixMilli(), 10)},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	paginator := dynamodb.NewQueryPaginator(r.ddb, in)
	items := make([]entities.Payment, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			p, err := unmarshalPayment(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}
	}
	return items, nil
}

// ClearPayoutPending removes the payment from the payout_pending index. Clearing an
// unmarked or missing payment is not an error.
func (r *PaymentDynamoRepository) ClearPayoutPending(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("REMOVE payout_pending, payout_pending_since"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return nil
	}
	return err
}

func (r *PaymentDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Payment, error) {
	if value == "" {
		return entities.Payment{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}
	return unmarshalPayment(out.Items[0])
}

func unmarshalPayment(av map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                 p.ID,
		ReservationID:      p.ReservationID,
		FieldID:            p.FieldID,
		UserID:             p.UserID,
		SessionID:          p.SessionID,
		ClientReference:    p.ClientReference,
		GrossAmount:        p.GrossAmount,
		PlatformFee:        p.PlatformFee,
		NetToOwner:         p.NetToOwner,
		CommissionRateBps:  p.CommissionRateBps,
		Currency:           p.Currency,
		Provider:           string(p.Provider),
		ProviderToken:      p.ProviderToken,
		CheckoutURL:        p.CheckoutURL,
		Status:             string(p.Status),
		ProviderStatus:     p.ProviderStatus,
		WebhookReceivedAt:  formatTimePtr(p.WebhookReceivedAt),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
	if p.Status == entities.PaymentStatusPaid && p.PayoutPendingSince != nil {
		it.PayoutPending = payoutPendingMarker
		it.PayoutPendingSince = p.PayoutPendingSince.UnixMilli()
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		ReservationID:     it.ReservationID,
		FieldID:           it.FieldID,
		UserID:            it.UserID,
		SessionID:         it.SessionID,
		ClientReference:   it.ClientReference,
		GrossAmount:       it.GrossAmount,
		PlatformFee:       it.PlatformFee,
		NetToOwner:        it.NetToOwner,
		CommissionRateBps: it.CommissionRateBps,
		Currency:          it.Currency,
		Provider:          entities.Provider(it.Provider),
		ProviderToken:     it.ProviderToken,
		CheckoutURL:       it.CheckoutURL,
		Status:            entities.PaymentStatus(it.Status),
		ProviderStatus:    it.ProviderStatus,
		WebhookReceivedAt: parseTimePtr(it.WebhookReceivedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	if it.PayoutPending != "" && it.PayoutPendingSince > 0 {
		since := time.UnixMilli(it.PayoutPendingSince).UTC()
		p.PayoutPendingSince = &since
	}
	return p
}

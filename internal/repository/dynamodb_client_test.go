package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"finance-assistant/internal/domain"
)

type fakeDynamo struct {
	txErr       error
	lastTxInput *dynamodb.TransactWriteItemsInput
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.lastTxInput = in
	return &dynamodb.TransactWriteItemsOutput{}, f.txErr
}

var fixedNow = time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)

func mustNewClient(t *testing.T, db *fakeDynamo) *Client {
	t.Helper()
	c, err := New(db, "test-table")
	require.NoError(t, err)
	c.now = func() time.Time { return fixedNow }
	return c
}

func strValue(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	v, ok := item[key].(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %q is not a string", key)
	return v.Value
}

func TestNewTurn_Fields(t *testing.T) {
	c := mustNewClient(t, &fakeDynamo{})
	turn := c.NewTurn("s-1", "hello", "Hi there!", "greeting")

	require.Equal(t, "SESSION#s-1", turn.PK)
	require.Equal(t, "TURN#2026-02-25T10:00:00Z", turn.SK)
	require.Equal(t, "s-1", turn.SessionID)
	require.Equal(t, "greeting", turn.Intent)
	require.Equal(t, fixedNow.Add(ttlDuration).Unix(), turn.TTL)
}

func TestSaveTurn_HappyPath(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	err := c.SaveTurn(context.Background(), c.NewTurn("abc", "Should I buy AAPL stock?", "Apple Inc. ...", "stock_sentiment"))
	require.NoError(t, err)
	require.NotNil(t, db.lastTxInput)
	require.Len(t, db.lastTxInput.TransactItems, 2)

	put := db.lastTxInput.TransactItems[0].Put
	require.Equal(t, "test-table", *put.TableName)
	require.Equal(t, "attribute_not_exists(PK) AND attribute_not_exists(SK)", *put.ConditionExpression)
	require.Equal(t, "Should I buy AAPL stock?", strValue(t, put.Item, "message"))
	require.Equal(t, "stock_sentiment", strValue(t, put.Item, "intent"))

	update := db.lastTxInput.TransactItems[1].Update
	require.Equal(t, "SESSION#abc", strValue(t, update.Key, "PK"))
	require.Equal(t, skMeta, strValue(t, update.Key, "SK"))
	require.Contains(t, *update.UpdateExpression, "ADD turns :one")
	require.Equal(t, "ttl", update.ExpressionAttributeNames["#ttl"])
}

func TestSaveTurn_DynamoError(t *testing.T) {
	db := &fakeDynamo{txErr: errors.New("transaction canceled")}
	c := mustNewClient(t, db)
	err := c.SaveTurn(context.Background(), c.NewTurn("abc", "hi", "hello", "greeting"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "SaveTurn")
}

func TestSaveTurn_MissingKeys(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)

	err := c.SaveTurn(context.Background(), domain.Turn{SK: "TURN#ts"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")

	err = c.SaveTurn(context.Background(), domain.Turn{PK: "SESSION#abc"})
	require.Error(t, err)
	require.Nil(t, db.lastTxInput)
}

func TestRecordTurn(t *testing.T) {
	db := &fakeDynamo{}
	c := mustNewClient(t, db)
	require.NoError(t, c.RecordTurn(context.Background(), "abc", "thanks", "You're welcome!", "thanks"))
	require.Equal(t, "You're welcome!", strValue(t, db.lastTxInput.TransactItems[0].Put.Item, "reply"))

	db.txErr = errors.New("throttled")
	err := c.RecordTurn(context.Background(), "abc", "thanks", "Anytime!", "thanks")
	require.Error(t, err)
	require.Contains(t, err.Error(), "RecordTurn")
}

func TestSessionPK(t *testing.T) {
	require.Equal(t, "SESSION#my-session", sessionPK("my-session"))
}

func TestTurnSK(t *testing.T) {
	ts := time.Date(2026, 2, 25, 10, 0, 0, 0, time.FixedZone("x", 3600))
	require.Equal(t, "TURN#2026-02-25T09:00:00Z", turnSK(ts))
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil, "test-table")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestNew_EmptyTableName(t *testing.T) {
	_, err := New(&fakeDynamo{}, " ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}

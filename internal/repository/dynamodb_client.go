package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"finance-assistant/internal/domain"
)

const (
	skPrefixTurn = "TURN#"
	skMeta       = "META#"
	ttlDuration  = 30 * 24 * time.Hour // 30-day TTL
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Client appends completed turns to a DynamoDB transcript table. The
// transcript is an audit trail; conversations are never rebuilt from it.
type Client struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName, now: time.Now}, nil
}

// sessionPK returns the DynamoDB partition key for a session.
func sessionPK(sessionID string) string {
	return "SESSION#" + sessionID
}

// turnSK returns the sort key for a turn recorded at ts.
func turnSK(ts time.Time) string {
	return skPrefixTurn + ts.UTC().Format(time.RFC3339Nano)
}

// ttlValue returns a Unix timestamp 30 days after ts.
func ttlValue(ts time.Time) int64 {
	return ts.Add(ttlDuration).Unix()
}

// NewTurn constructs a Turn with PK/SK/TTL set from sessionID and the current time.
func (c *Client) NewTurn(sessionID, message, reply, intent string) domain.Turn {
	now := c.now().UTC()
	return domain.Turn{
		PK:        sessionPK(sessionID),
		SK:        turnSK(now),
		SessionID: sessionID,
		Message:   message,
		Reply:     reply,
		Intent:    intent,
		TTL:       ttlValue(now),
	}
}

// SaveTurn writes the turn and bumps the session's turn counter in one transaction.
func (c *Client) SaveTurn(ctx context.Context, turn domain.Turn) error {
	if turn.PK == "" || turn.SK == "" {
		return errors.New("repository: SaveTurn: PK and SK are required")
	}

	_, err := c.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(c.tableName),
					Item:                turnItem(turn),
					ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(c.tableName),
					Key: map[string]types.AttributeValue{
						"PK": &types.AttributeValueMemberS{Value: turn.PK},
						"SK": &types.AttributeValueMemberS{Value: skMeta},
					},
					UpdateExpression: aws.String("SET sessionId = :sid, lastActivity = :ts, #ttl = :ttl ADD turns :one"),
					// ttl is a reserved word.
					ExpressionAttributeNames: map[string]string{"#ttl": "ttl"},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":sid": &types.AttributeValueMemberS{Value: turn.SessionID},
						":ts":  &types.AttributeValueMemberS{Value: c.now().UTC().Format(time.RFC3339)},
						":ttl": &types.AttributeValueMemberN{Value: strconv.FormatInt(turn.TTL, 10)},
						":one": &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("repository: SaveTurn: %w", err)
	}
	return nil
}

// RecordTurn persists a completed exchange for sessionID.
func (c *Client) RecordTurn(ctx context.Context, sessionID, message, reply, intent string) error {
	if err := c.SaveTurn(ctx, c.NewTurn(sessionID, message, reply, intent)); err != nil {
		return fmt.Errorf("repository: RecordTurn: %w", err)
	}
	return nil
}

func turnItem(turn domain.Turn) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: turn.PK},
		"SK":        &types.AttributeValueMemberS{Value: turn.SK},
		"sessionId": &types.AttributeValueMemberS{Value: turn.SessionID},
		"message":   &types.AttributeValueMemberS{Value: turn.Message},
		"reply":     &types.AttributeValueMemberS{Value: turn.Reply},
		"intent":    &types.AttributeValueMemberS{Value: turn.Intent},
		"ttl":       &types.AttributeValueMemberN{Value: strconv.FormatInt(turn.TTL, 10)},
	}
}

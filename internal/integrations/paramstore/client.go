// Package paramstore reads scorer credentials from AWS SSM Parameter Store.
// All parameters live under one hierarchy prefix, e.g. /finance-assistant.
package paramstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// Credential parameters, relative to the store prefix.
const (
	FinBERTToken = "finbert-token"
	OpenAIToken  = "open-ai-token"
)

// ErrNotFound is returned when the parameter does not exist under the prefix.
var ErrNotFound = errors.New("paramstore: parameter not found")

// ssmAPI is the subset of *ssm.Client the store calls.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Getter resolves a parameter name relative to some prefix.
type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

type Client struct {
	api    ssmAPI
	prefix string
}

func New(api ssmAPI, prefix string) (*Client, error) {
	if api == nil {
		return nil, errors.New("paramstore: api must not be nil")
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return nil, errors.New("paramstore: prefix is required")
	}
	return &Client{api: api, prefix: prefix}, nil
}

// Path returns the full parameter name for name under the client's prefix.
func (c *Client) Path(name string) string {
	return c.prefix + "/" + strings.TrimLeft(strings.TrimSpace(name), "/")
}

// GetParameter returns the decrypted value of name under the prefix.
func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	if c.api == nil {
		return "", errors.New("paramstore: client not initialized")
	}
	if strings.Trim(strings.TrimSpace(name), "/") == "" {
		return "", errors.New("paramstore: name is required")
	}
	path := c.Path(name)

	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(path),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var nf *types.ParameterNotFound
		if errors.As(err, &nf) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("paramstore: get %s: %w", path, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("paramstore: %s has no value", path)
	}
	return *out.Parameter.Value, nil
}

// Token returns a lazily fetched API token stored at name.
func (c *Client) Token(name string) (*Token, error) {
	return NewToken(c, name)
}

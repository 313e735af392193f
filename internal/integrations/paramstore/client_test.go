package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"
)

// fakeSSM records every request and answers from a map keyed by full name.
type fakeSSM struct {
	values map[string]string
	err    error
	inputs []*ssm.GetParameterInput
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return nil, &types.ParameterNotFound{Message: aws.String("not found")}
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name:  in.Name,
		Value: aws.String(v),
		Type:  types.ParameterTypeSecureString,
	}}, nil
}

func newTestClient(t *testing.T, api ssmAPI) *Client {
	t.Helper()
	c, err := New(api, "/finance-assistant")
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, "/finance-assistant")
	require.ErrorContains(t, err, "must not be nil")

	_, err = New(&fakeSSM{}, " / ")
	require.ErrorContains(t, err, "prefix is required")
}

func TestPath(t *testing.T) {
	c := newTestClient(t, &fakeSSM{})
	require.Equal(t, "/finance-assistant/finbert-token", c.Path(FinBERTToken))
	require.Equal(t, "/finance-assistant/open-ai-token", c.Path("/open-ai-token"))

	c, err := New(&fakeSSM{}, " /finance-assistant/ ")
	require.NoError(t, err)
	require.Equal(t, "/finance-assistant/finbert-token", c.Path(FinBERTToken))
}

func TestGetParameter_ResolvesCredentialNames(t *testing.T) {
	api := &fakeSSM{values: map[string]string{
		"/finance-assistant/finbert-token": `{"token":"hf"}`,
		"/finance-assistant/open-ai-token": `{"token":"sk"}`,
	}}
	c := newTestClient(t, api)

	for name, want := range map[string]string{FinBERTToken: `{"token":"hf"}`, OpenAIToken: `{"token":"sk"}`} {
		v, err := c.GetParameter(context.Background(), name)
		require.NoError(t, err, name)
		require.Equal(t, want, v, name)
	}
	for _, in := range api.inputs {
		require.True(t, aws.ToBool(in.WithDecryption))
	}
}

func TestGetParameter_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, &fakeSSM{})
		_, err := c.GetParameter(context.Background(), FinBERTToken)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorContains(t, err, "/finance-assistant/finbert-token")
	})

	t.Run("api error", func(t *testing.T) {
		c := newTestClient(t, &fakeSSM{err: errors.New("boom")})
		_, err := c.GetParameter(context.Background(), OpenAIToken)
		require.ErrorContains(t, err, "boom")
		require.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing value", func(t *testing.T) {
		c := newTestClient(t, missingValueSSM{})
		_, err := c.GetParameter(context.Background(), OpenAIToken)
		require.ErrorContains(t, err, "has no value")
	})

	t.Run("empty name", func(t *testing.T) {
		api := &fakeSSM{}
		c := newTestClient(t, api)
		_, err := c.GetParameter(context.Background(), " / ")
		require.ErrorContains(t, err, "name is required")
		require.Empty(t, api.inputs)
	})

	t.Run("zero client", func(t *testing.T) {
		_, err := (&Client{}).GetParameter(context.Background(), FinBERTToken)
		require.ErrorContains(t, err, "not initialized")
	})
}

type missingValueSSM struct{}

func (missingValueSSM) GetParameter(context.Context, *ssm.GetParameterInput, ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: aws.String("p")}}, nil
}

func TestClientToken(t *testing.T) {
	api := &fakeSSM{values: map[string]string{"/finance-assistant/open-ai-token": `{"token":"sk-test"}`}}
	c := newTestClient(t, api)

	tok, err := c.Token(OpenAIToken)
	require.NoError(t, err)
	require.Equal(t, OpenAIToken, tok.Name())

	for range 2 {
		v, err := tok.Value(context.Background())
		require.NoError(t, err)
		require.Equal(t, "sk-test", v)
	}
	require.Len(t, api.inputs, 1)
	require.Equal(t, "/finance-assistant/open-ai-token", aws.ToString(api.inputs[0].Name))
}

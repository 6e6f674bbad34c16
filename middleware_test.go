package extsvc

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := Chain(NewValidator(), WithLogging(logger))

	require.NoError(t, v.ValidateForUpdate(`{"server_key":"k"}`, "NOTIFICATION"))
	logStr := buf.String()
	assert.Contains(t, logStr, "validate start")
	assert.Contains(t, logStr, "validate end")
	assert.Contains(t, logStr, "service=NOTIFICATION")

	buf.Reset()
	err := v.ValidateForUpdate(`{"server_key":"k","apns":"x"}`, "NOTIFICATION")
	require.Error(t, err)
	logStr = buf.String()
	assert.Contains(t, logStr, "level=WARN")
	assert.Contains(t, logStr, "validate rejected")
	assert.Contains(t, logStr, "kind=unsupported_parameter")

	buf.Reset()
	keys, err := v.ExtractTopLevelKeys(`{"a":1,"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Contains(t, buf.String(), "extract end")
	assert.Contains(t, buf.String(), "keys=2")
}

func TestWithRecovery(t *testing.T) {
	panicky := DecoderFunc(func(string) (map[string]any, error) {
		panic("decoder panic")
	})
	v := Chain(NewValidator(WithDecoder(panicky)), WithRecovery())

	err := v.ValidateForUpdate(`{}`, "S3")
	require.Error(t, err)
	var sysErr *SystemError
	require.ErrorAs(t, err, &sysErr)
	assert.Contains(t, sysErr.Err.Error(), "decoder panic")
	assert.False(t, IsClientError(err))
	assert.Equal(t, KindSystem, KindOf(err))

	keys, err := v.ExtractTopLevelKeys(`{}`)
	assert.Nil(t, keys)
	assert.True(t, IsSystemError(err))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next ConfigValidator) ConfigValidator {
			return &orderValidator{next: next, name: name, order: &order}
		}
	}
	v := Chain(NewValidator(), mark("outer"), mark("inner"))
	require.NoError(t, v.ValidateForUpdate(`{}`, "SMS"))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

type orderValidator struct {
	next  ConfigValidator
	name  string
	order *[]string
}

func (o *orderValidator) ValidateForUpdate(json, serviceName string) error {
	*o.order = append(*o.order, o.name)
	return o.next.ValidateForUpdate(json, serviceName)
}

func (o *orderValidator) ExtractTopLevelKeys(json string) ([]string, error) {
	*o.order = append(*o.order, o.name)
	return o.next.ExtractTopLevelKeys(json)
}

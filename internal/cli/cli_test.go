package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidate_Accepted(t *testing.T) {
	out, _, err := run(t, `{"s3_bucket_name":"docs"}`, "validate", "--service", "S3")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestValidate_RejectedText(t *testing.T) {
	out, _, err := run(t, `{"s3_bucket_name":"docs","region":"eu"}`, "validate", "-s", "S3")
	require.Error(t, err)
	assert.True(t, IsSilent(err))
	assert.Contains(t, out, "rejected (unsupported_parameter)")
	assert.Contains(t, out, "region")
}

func TestValidate_RejectedJSON(t *testing.T) {
	out, _, err := run(t, `{"host":"h","tls":true,"auth":"x"}`, "validate", "-s", "SMTP", "-o", "json")
	require.Error(t, err)
	var res validationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, "SMTP", res.Service)
	assert.Equal(t, "unsupported_parameter", res.Kind)
	assert.Equal(t, []string{"auth", "tls"}, res.Parameters)
}

func TestValidate_UnknownServiceAndBlank(t *testing.T) {
	out, _, err := run(t, `{}`, "validate", "-s", "FTP", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, out, `"kind": "unknown_service_configuration"`)

	out, _, err = run(t, "  ", "validate", "-s", "S3", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, out, `"kind": "malformed_input"`)
}

func TestValidate_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"host_name":"gw","port_number":9191}`), 0o600))
	t.Setenv("EXTSVC_SERVICE", "SMS")

	out, _, err := run(t, "", "validate", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, _, err = run(t, "", "validate", "--file", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.False(t, IsSilent(err))
}

func TestValidate_LogsAtVerbosity(t *testing.T) {
	_, stderr, err := run(t, `{"bogus":1}`, "validate", "-s", "NOTIFICATION", "-v")
	require.Error(t, err)
	assert.Contains(t, stderr, "validate rejected")

	_, stderr, err = run(t, `{"bogus":1}`, "validate", "-s", "NOTIFICATION")
	require.Error(t, err)
	assert.Empty(t, stderr)
}

func TestKeys(t *testing.T) {
	out, _, err := run(t, `{"b":1,"a":{"nested":true}}`, "keys")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, _, err = run(t, `{"b":1}`, "keys", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["b"]`, out)

	_, _, err = run(t, `[1]`, "keys")
	require.Error(t, err)
}

func TestServices(t *testing.T) {
	out, _, err := run(t, "", "services")
	require.NoError(t, err)
	assert.Contains(t, out, "S3: s3_access_key, s3_bucket_name, s3_secret_key\n")
	assert.Contains(t, out, "NOTIFICATION: fcm_end_point, gcm_end_point, server_key\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestSchema(t *testing.T) {
	out, _, err := run(t, "", "schema", "-s", "SMS")
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Contains(t, schema["properties"], "tenant_app_key")

	_, _, err = run(t, "", "schema", "-s", "sms")
	require.Error(t, err)
}

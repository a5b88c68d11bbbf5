package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lc/rdgate/internal/config"
)

// TestReportDeterministic: identical input text yields identical reports.
func TestReportDeterministic(t *testing.T) {
	first := loadFull(t).Report()
	second := loadFull(t).Report()
	require.Equal(t, first, second)
}

func TestReportLayout(t *testing.T) {
	report := loadFull(t).Report()

	assert.Contains(t, report, "Gateway configuration:")
	assert.Contains(t, report, "\tTarget:\n")
	assert.Contains(t, report, "\t\tHost: rds.internal\n")
	assert.Contains(t, report, "\tStatic Channels Proxy:\n")
	assert.Contains(t, report, "\t\t- rdpdr\n")
	assert.Contains(t, report, "\t\tMaxTextLength: 1024\n")
	assert.Contains(t, report, "\t\tCertificateFile: certs/server.crt\n")
}

// TestReportOmitsConditionalSections: without FixedTarget there is no
// Target block, without passthrough channels no proxy block, and a zero
// MaxTextLength is not printed.
func TestReportOmitsConditionalSections(t *testing.T) {
	fs := mapFS{files: map[string]string{
		"certs/server.crt": "cert pem",
		"certs/server.key": "key pem",
		"certs/rdp.key":    "rdp pem",
	}}
	cfg, err := config.NewLoader(fs).LoadBuffer([]byte(certsSection))
	require.NoError(t, err)

	report := cfg.Report()
	assert.NotContains(t, report, "\tTarget:")
	assert.NotContains(t, report, "Static Channels Proxy")
	assert.NotContains(t, report, "MaxTextLength")
}

// TestReportMasksCredentialContent: inline credentials appear only as a
// presence indicator; the secret itself must never reach the sink.
func TestReportMasksCredentialContent(t *testing.T) {
	const secret = "MIIEvherybigsecretkeyblob"
	ini := `[Certificates]
CertificateContent = ` + secret + `
PrivateKeyFile = certs/server.key
RdpKeyFile = certs/rdp.key
`
	fs := mapFS{files: map[string]string{
		"certs/server.key": "key pem",
		"certs/rdp.key":    "rdp pem",
	}}
	cfg, err := config.NewLoader(fs).LoadBuffer([]byte(ini))
	require.NoError(t, err)

	report := cfg.Report()
	assert.NotContains(t, report, secret)
	assert.Contains(t, report, "\t\tCertificateContent: set\n")
	assert.Contains(t, report, "\t\tPrivateKeyContent: \n")
}

// TestReportBoolRendering: flags render as TRUE/FALSE.
func TestReportBoolRendering(t *testing.T) {
	report := loadFull(t).Report()
	assert.Contains(t, report, "\t\tKeyboard: TRUE\n")
	assert.Contains(t, report, "\t\tDecodeGFX: FALSE\n")
}

// TestReportLineShape: every line is a section header, a key/value pair or
// a list element.
func TestReportLineShape(t *testing.T) {
	report := strings.TrimRight(loadFull(t).Report(), "\n")
	for i, line := range strings.Split(report, "\n") {
		if i == 0 {
			require.Equal(t, "Gateway configuration:", line)
			continue
		}
		ok := strings.HasPrefix(line, "\t\t") || (strings.HasPrefix(line, "\t") && strings.HasSuffix(line, ":"))
		require.True(t, ok, "unexpected line shape: %q", line)
	}
}

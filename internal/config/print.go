package config

import (
	"fmt"
	"strings"

	"github.com/lc/rdgate/internal/log"
)

// Report renders the configuration as a human-readable diagnostic report.
// It is a pure function of the configuration: identical configurations
// produce identical reports. Sections that do not apply are omitted
// (Target unless FixedTarget, MaxTextLength unless non-zero, Passthrough
// unless non-empty), and inline credential content is reduced to a
// presence indicator so secrets never reach the sink.
func (c *Config) Report() string {
	var b strings.Builder

	b.WriteString("Gateway configuration:\n")

	section(&b, "Server")
	line(&b, "Host", c.Server.Host)
	line(&b, "Port", fmt.Sprintf("%d", c.Server.Port))

	if c.Target.FixedTarget {
		section(&b, "Target")
		line(&b, "Host", c.Target.Host)
		line(&b, "Port", fmt.Sprintf("%d", c.Target.Port))
	}

	section(&b, "Input")
	boolLine(&b, "Keyboard", c.Input.Keyboard)
	boolLine(&b, "Mouse", c.Input.Mouse)

	section(&b, "Server Security")
	boolLine(&b, "ServerTlsSecurity", c.Security.ServerTlsSecurity)
	boolLine(&b, "ServerRdpSecurity", c.Security.ServerRdpSecurity)

	section(&b, "Client Security")
	boolLine(&b, "ClientNlaSecurity", c.Security.ClientNlaSecurity)
	boolLine(&b, "ClientTlsSecurity", c.Security.ClientTlsSecurity)
	boolLine(&b, "ClientRdpSecurity", c.Security.ClientRdpSecurity)
	boolLine(&b, "ClientAllowFallbackToTls", c.Security.ClientAllowFallbackToTls)

	section(&b, "Channels")
	boolLine(&b, "GFX", c.Channels.GFX)
	boolLine(&b, "DisplayControl", c.Channels.DisplayControl)
	boolLine(&b, "Clipboard", c.Channels.Clipboard)
	boolLine(&b, "AudioOutput", c.Channels.AudioOutput)
	boolLine(&b, "RemoteApp", c.Channels.RemoteApp)

	if len(c.Channels.Passthrough) > 0 {
		section(&b, "Static Channels Proxy")
		for _, name := range c.Channels.Passthrough {
			fmt.Fprintf(&b, "\t\t- %s\n", name)
		}
	}

	section(&b, "Clipboard")
	boolLine(&b, "TextOnly", c.Clipboard.TextOnly)
	if c.Clipboard.MaxTextLength > 0 {
		line(&b, "MaxTextLength", fmt.Sprintf("%d", c.Clipboard.MaxTextLength))
	}

	section(&b, "GFXSettings")
	boolLine(&b, "DecodeGFX", c.GFX.DecodeGFX)

	section(&b, "Plugins/Modules")
	for _, name := range c.Plugins.Modules {
		fmt.Fprintf(&b, "\t\t- %s\n", name)
	}

	section(&b, "Plugins/Required")
	for _, name := range c.Plugins.Required {
		fmt.Fprintf(&b, "\t\t- %s\n", name)
	}

	section(&b, "Certificates")
	line(&b, "CertificateFile", c.Certificates.CertificateFile)
	presenceLine(&b, "CertificateContent", c.Certificates.CertificateContent)
	line(&b, "PrivateKeyFile", c.Certificates.PrivateKeyFile)
	presenceLine(&b, "PrivateKeyContent", c.Certificates.PrivateKeyContent)
	line(&b, "RdpKeyFile", c.Certificates.RdpKeyFile)
	presenceLine(&b, "RdpKeyContent", c.Certificates.RdpKeyContent)

	return b.String()
}

// Print writes the diagnostic report to the log sink, one line per entry.
func (c *Config) Print() {
	for _, l := range strings.Split(strings.TrimRight(c.Report(), "\n"), "\n") {
		log.Infof("%s", l)
	}
}

func section(b *strings.Builder, name string) {
	fmt.Fprintf(b, "\t%s:\n", name)
}

func line(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "\t\t%s: %s\n", key, value)
}

func boolLine(b *strings.Builder, key string, value bool) {
	if value {
		line(b, key, "TRUE")
	} else {
		line(b, key, "FALSE")
	}
}

// presenceLine prints whether an inline credential is set, never its value.
func presenceLine(b *strings.Builder, key, value string) {
	if value != "" {
		line(b, key, "set")
	} else {
		line(b, key, "")
	}
}

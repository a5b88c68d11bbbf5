// Command rdgate is the operator CLI for the rdgate gateway configuration.
//
// The gateway refuses to start on any configuration error, so operators
// validate candidate files before rollout:
//
//	rdgate check /etc/rdgate/rdgate.ini       - validate one or more files
//	rdgate show /etc/rdgate/rdgate.ini        - render the resolved settings
//	rdgate version                            - show build information
//
// check accepts several files and validates them concurrently; the exit
// code is non-zero if any file is rejected.
package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/lc/rdgate/internal/buildinfo"
	"github.com/lc/rdgate/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "rdgate",
		Short: "rdgate configuration tool",
		Long: `rdgate validates and inspects gateway configuration files.
A file that passes check is guaranteed to be accepted at gateway startup.`,
	}

	// ---- version command ----
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("version: %s\n", buildinfo.Version)
			fmt.Printf("commit: %s\n", buildinfo.Commit)
		},
	}

	// ---- check command ----
	checkCmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate configuration files",
		Long: `Validate one or more configuration files against the full rule set:
typed values, ranges, required keys, certificate file existence and the
certificate file/content exclusivity rules.

Files are checked concurrently. Every file gets a verdict; the command
fails if any file is rejected.`,
		Example: "rdgate check /etc/rdgate/rdgate.ini candidate.ini",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				mu   sync.Mutex
				errs error
			)
			g := new(errgroup.Group)
			for _, path := range args {
				path := path
				g.Go(func() error {
					_, err := config.New().LoadFile(path)

					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						color.New(color.FgHiRed, color.Bold).Printf("✗ %s: ", path)
						color.New(color.FgRed).Printf("%v\n", err)
						errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
						return nil // collect but don't cancel peer checks
					}
					color.New(color.FgGreen, color.Bold).Printf("✓ %s\n", path)
					return nil
				})
			}
			_ = g.Wait()
			if errs != nil {
				cmd.SilenceUsage = true
			}
			return errs
		},
	}

	// ---- show command ----
	showCmd := &cobra.Command{
		Use:     "show <file>",
		Short:   "Show the resolved configuration",
		Long:    `Load a configuration file and render every resolved setting, including defaults for keys the file omits. Inline certificate content is masked.`,
		Example: "rdgate show /etc/rdgate/rdgate.ini",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().LoadFile(args[0])
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Section", "Key", "Value"})
			table.SetHeaderColor(
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
			)
			table.SetBorder(false)

			for _, row := range settingsRows(cfg) {
				table.Append(row)
			}

			color.New(color.Bold).Printf("RESOLVED CONFIGURATION (%s):\n", args[0])
			table.Render()
			return nil
		},
	}

	root.AddCommand(checkCmd, showCmd, versionCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// settingsRows flattens a configuration into table rows in report order.
func settingsRows(cfg *config.Config) [][]string {
	b := fmtBool
	rows := [][]string{
		{"Server", "Host", cfg.Server.Host},
		{"Server", "Port", strconv.Itoa(int(cfg.Server.Port))},
		{"Target", "FixedTarget", b(cfg.Target.FixedTarget)},
	}
	if cfg.Target.FixedTarget {
		rows = append(rows,
			[]string{"Target", "Host", cfg.Target.Host},
			[]string{"Target", "Port", strconv.Itoa(int(cfg.Target.Port))},
		)
	}
	rows = append(rows,
		[]string{"Channels", "GFX", b(cfg.Channels.GFX)},
		[]string{"Channels", "DisplayControl", b(cfg.Channels.DisplayControl)},
		[]string{"Channels", "Clipboard", b(cfg.Channels.Clipboard)},
		[]string{"Channels", "AudioOutput", b(cfg.Channels.AudioOutput)},
		[]string{"Channels", "RemoteApp", b(cfg.Channels.RemoteApp)},
	)
	for _, name := range cfg.Channels.Passthrough {
		rows = append(rows, []string{"Channels", "Passthrough", name})
	}
	rows = append(rows,
		[]string{"Input", "Keyboard", b(cfg.Input.Keyboard)},
		[]string{"Input", "Mouse", b(cfg.Input.Mouse)},
		[]string{"Security", "ServerTlsSecurity", b(cfg.Security.ServerTlsSecurity)},
		[]string{"Security", "ServerRdpSecurity", b(cfg.Security.ServerRdpSecurity)},
		[]string{"Security", "ClientTlsSecurity", b(cfg.Security.ClientTlsSecurity)},
		[]string{"Security", "ClientNlaSecurity", b(cfg.Security.ClientNlaSecurity)},
		[]string{"Security", "ClientRdpSecurity", b(cfg.Security.ClientRdpSecurity)},
		[]string{"Security", "ClientAllowFallbackToTls", b(cfg.Security.ClientAllowFallbackToTls)},
	)
	for _, name := range cfg.Plugins.Modules {
		rows = append(rows, []string{"Plugins", "Modules", name})
	}
	for _, name := range cfg.Plugins.Required {
		rows = append(rows, []string{"Plugins", "Required", name})
	}
	rows = append(rows,
		[]string{"Clipboard", "TextOnly", b(cfg.Clipboard.TextOnly)},
	)
	if cfg.Clipboard.MaxTextLength > 0 {
		rows = append(rows, []string{"Clipboard", "MaxTextLength", strconv.Itoa(int(cfg.Clipboard.MaxTextLength))})
	}
	rows = append(rows,
		[]string{"GFXSettings", "DecodeGFX", b(cfg.GFX.DecodeGFX)},
		[]string{"Certificates", "CertificateFile", cfg.Certificates.CertificateFile},
		[]string{"Certificates", "CertificateContent", mask(cfg.Certificates.CertificateContent)},
		[]string{"Certificates", "PrivateKeyFile", cfg.Certificates.PrivateKeyFile},
		[]string{"Certificates", "PrivateKeyContent", mask(cfg.Certificates.PrivateKeyContent)},
		[]string{"Certificates", "RdpKeyFile", cfg.Certificates.RdpKeyFile},
		[]string{"Certificates", "RdpKeyContent", mask(cfg.Certificates.RdpKeyContent)},
	)
	return rows
}

func fmtBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// mask reduces inline credential content to a presence indicator.
func mask(content string) string {
	if content == "" {
		return ""
	}
	return "set"
}

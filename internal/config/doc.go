// Package config loads, validates, prints and deep-copies the rdgate
// runtime configuration from INI text.
//
// # Basic Usage
//
// Load configuration from a file:
//
//	cfg, err := config.New().LoadFile("/etc/rdgate/rdgate.ini")
//	if err != nil {
//		log.Fatalf("config error: %v", err)
//	}
//	cfg.Print()
//
// For custom file system access (e.g. testing), inject it:
//
//	loader := config.NewLoader(myFS)
//	cfg, err := loader.LoadBuffer(iniText)
//
// # Sections
//
// Configuration is flat INI with the sections [Server], [Target],
// [Channels], [Input], [Security], [Plugins], [Clipboard], [GFXSettings]
// and [Certificates]. Passthrough, Modules and Required are
// comma-separated lists.
//
// # Validation
//
// Loading is all-or-nothing: the section loaders run in a fixed order and
// the first violated rule discards the whole object. Failures are logged
// with section, key and offending value, and returned as a *LoadError
// whose Kind identifies the rule; errors.Is(err, ErrInvalidConfig) matches
// every load failure. The caller must treat any load failure as fatal to
// startup; nothing is retried.
//
// Notable rules:
//   - Server.Port is required only when Server.Host is set.
//   - Target.Host and Target.Port are required exactly when FixedTarget.
//   - Passthrough channel names are limited to 7 bytes.
//   - Each certificate credential supplies exactly one of its File and
//     Content variants; File must exist on disk, Content must be non-empty.
//
// # Boolean Values
//
// Boolean keys never fail to load. An absent key takes its documented
// default. A present value equal to "true" (any case) is true; any other
// value is read as an integer, where 1 means false and everything else,
// including "0", "FALSE" and unparseable text, means true. This surprising
// rule is inherited from deployed configuration files and is preserved
// deliberately; see readers.go.
//
// # Thread Safety
//
// A successfully loaded Config is immutable and safe for concurrent
// readers. Consumers that need a private mutable copy call Clone, which
// returns a value-equal, reference-disjoint configuration. Holder
// publishes the current configuration atomically to many readers.
package config

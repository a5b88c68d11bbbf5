package config

import (
	"github.com/google/uuid"

	"github.com/lc/rdgate/internal/filesys"
	"github.com/lc/rdgate/internal/log"
)

// maxChannelNameLen is the static virtual channel name limit from the RDP
// wire protocol. Longer passthrough names cannot be announced to peers, so
// they fail the load instead of being truncated.
const maxChannelNameLen = 7

// ServerSettings controls the local listener.
type ServerSettings struct {
	Host string // bind host; empty means "use default"
	Port uint16 // required only when Host is set
}

// TargetSettings controls where sessions are forwarded.
type TargetSettings struct {
	FixedTarget bool
	Host        string // required when FixedTarget
	Port        uint16 // required when FixedTarget
}

// ChannelSettings toggles the virtual channels the gateway will carry.
type ChannelSettings struct {
	GFX            bool
	DisplayControl bool
	Clipboard      bool
	AudioOutput    bool
	RemoteApp      bool
	// Passthrough names static channels forwarded transparently rather
	// than interpreted. Each name is limited to maxChannelNameLen bytes.
	Passthrough []string
}

// InputSettings toggles input forwarding.
type InputSettings struct {
	Keyboard bool
	Mouse    bool
}

// SecuritySettings holds the independent security toggles for both legs of
// a proxied session. There is no cross-field invariant; each defaults on.
type SecuritySettings struct {
	ServerTlsSecurity        bool
	ServerRdpSecurity        bool
	ClientTlsSecurity        bool
	ClientNlaSecurity        bool
	ClientRdpSecurity        bool
	ClientAllowFallbackToTls bool
}

// ClipboardSettings restricts clipboard redirection.
type ClipboardSettings struct {
	TextOnly      bool
	MaxTextLength uint32 // 0 means unbounded
}

// PluginSettings lists proxy modules by name. Required is semantically a
// subset of Modules but that is not enforced at load time.
type PluginSettings struct {
	Modules  []string
	Required []string
}

// GFXSettings controls graphics pipeline handling.
type GFXSettings struct {
	DecodeGFX bool
}

// CertificateSettings holds the three credentials the TLS layer consumes.
// For each, exactly one of the File/Content pair is set after a successful
// load; empty string means absent.
type CertificateSettings struct {
	CertificateFile    string
	CertificateContent string
	PrivateKeyFile     string
	PrivateKeyContent  string
	RdpKeyFile         string
	RdpKeyContent      string
}

// Config is the validated gateway configuration. It is produced only by a
// Loader and never escapes half-built: any validation failure discards the
// whole object. After a successful load it must be treated as immutable;
// consumers needing a private mutable copy should Clone it.
type Config struct {
	Server       ServerSettings
	Target       TargetSettings
	Channels     ChannelSettings
	Input        InputSettings
	Security     SecuritySettings
	Clipboard    ClipboardSettings
	Plugins      PluginSettings
	GFX          GFXSettings
	Certificates CertificateSettings
}

// Loader assembles Config objects from INI text. The injected file system
// answers the certificate-file existence checks and file reads, so tests
// can run against an in-memory FS.
type Loader struct {
	fsys filesys.FS
}

// New returns a Loader backed by the local disk.
func New() *Loader {
	return NewLoader(filesys.OS())
}

// NewLoader returns a Loader backed by the given file system.
func NewLoader(fsys filesys.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and validates configuration from an INI file at path.
func (l *Loader) LoadFile(path string) (*Config, error) {
	data, err := l.fsys.ReadFile(path)
	if err != nil {
		log.Error("failed to read configuration file", "path", path, "error", err)
		return nil, &LoadError{Kind: KindParseError, Err: err}
	}
	return l.LoadBuffer(data)
}

// LoadBuffer loads and validates configuration from in-memory INI text.
func (l *Loader) LoadBuffer(data []byte) (*Config, error) {
	store, err := newIniStore(data)
	if err != nil {
		log.Error("failed to parse configuration", "error", err)
		return nil, err
	}
	return l.load(store)
}

// load runs the section loaders in fixed order against one KeyStore,
// failing fast on the first violated rule.
func (l *Loader) load(store KeyStore) (*Config, error) {
	a := &assembler{
		store: store,
		fsys:  l.fsys,
		log:   log.Logger.With("load_id", uuid.NewString()),
	}

	cfg := &Config{}
	steps := []func(*Config) *LoadError{
		a.loadServer,
		a.loadTarget,
		a.loadChannels,
		a.loadInput,
		a.loadSecurity,
		a.loadPlugins,
		a.loadClipboard,
		a.loadGFXSettings,
		a.loadCertificates,
	}
	for _, step := range steps {
		if err := step(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadServer reads [Server]. The whole section is optional, but once a
// bind host is given the port becomes required.
func (a *assembler) loadServer(cfg *Config) *LoadError {
	host, ok, _ := a.stringKey("Server", "Host", false)
	if !ok {
		return nil
	}
	cfg.Server.Host = host

	port, err := a.uint16Key("Server", "Port", true)
	if err != nil {
		return err
	}
	cfg.Server.Port = port
	return nil
}

// loadTarget reads [Target]. Host and Port are required exactly when
// FixedTarget is set.
func (a *assembler) loadTarget(cfg *Config) *LoadError {
	cfg.Target.FixedTarget = a.flag("Target", "FixedTarget")

	port, err := a.uint16Key("Target", "Port", cfg.Target.FixedTarget)
	if err != nil {
		return err
	}
	cfg.Target.Port = port

	host, _, err := a.stringKey("Target", "Host", cfg.Target.FixedTarget)
	if err != nil {
		return err
	}
	cfg.Target.Host = host
	return nil
}

// loadChannels reads [Channels], including the passthrough list.
func (a *assembler) loadChannels(cfg *Config) *LoadError {
	cfg.Channels.GFX = a.flag("Channels", "GFX")
	cfg.Channels.DisplayControl = a.flag("Channels", "DisplayControl")
	cfg.Channels.Clipboard = a.flag("Channels", "Clipboard")
	cfg.Channels.AudioOutput = a.flag("Channels", "AudioOutput")
	cfg.Channels.RemoteApp = a.flag("Channels", "RemoteApp")

	raw, _, _ := a.stringKey("Channels", "Passthrough", false)
	cfg.Channels.Passthrough = splitList(raw)

	for _, name := range cfg.Channels.Passthrough {
		if len(name) > maxChannelNameLen {
			return a.fail(&LoadError{Kind: KindNameTooLong, Section: "Channels", Key: "Passthrough", Value: name})
		}
	}
	return nil
}

func (a *assembler) loadInput(cfg *Config) *LoadError {
	cfg.Input.Keyboard = a.flag("Input", "Keyboard")
	cfg.Input.Mouse = a.flag("Input", "Mouse")
	return nil
}

func (a *assembler) loadSecurity(cfg *Config) *LoadError {
	cfg.Security.ServerTlsSecurity = a.flag("Security", "ServerTlsSecurity")
	cfg.Security.ServerRdpSecurity = a.flag("Security", "ServerRdpSecurity")
	cfg.Security.ClientTlsSecurity = a.flag("Security", "ClientTlsSecurity")
	cfg.Security.ClientNlaSecurity = a.flag("Security", "ClientNlaSecurity")
	cfg.Security.ClientRdpSecurity = a.flag("Security", "ClientRdpSecurity")
	cfg.Security.ClientAllowFallbackToTls = a.flag("Security", "ClientAllowFallbackToTls")
	return nil
}

// loadPlugins reads [Plugins]. Both lists are optional and undergo no
// validation beyond list parsing.
func (a *assembler) loadPlugins(cfg *Config) *LoadError {
	modules, _, _ := a.stringKey("Plugins", "Modules", false)
	required, _, _ := a.stringKey("Plugins", "Required", false)

	cfg.Plugins.Modules = splitList(modules)
	cfg.Plugins.Required = splitList(required)
	return nil
}

func (a *assembler) loadClipboard(cfg *Config) *LoadError {
	cfg.Clipboard.TextOnly = a.flag("Clipboard", "TextOnly")

	maxLen, err := a.uint32Key("Clipboard", "MaxTextLength", false)
	if err != nil {
		return err
	}
	cfg.Clipboard.MaxTextLength = maxLen
	return nil
}

func (a *assembler) loadGFXSettings(cfg *Config) *LoadError {
	cfg.GFX.DecodeGFX = a.flag("GFXSettings", "DecodeGFX")
	return nil
}

// loadCertificates reads [Certificates]: three independent credentials,
// each with a file-path variant and an inline-content variant, exactly one
// of which must be supplied. The first credential to violate its rules
// fails the whole load.
func (a *assembler) loadCertificates(cfg *Config) *LoadError {
	var err *LoadError

	cfg.Certificates.CertificateFile, cfg.Certificates.CertificateContent, err =
		a.credential("CertificateFile", "CertificateContent")
	if err != nil {
		return err
	}

	cfg.Certificates.PrivateKeyFile, cfg.Certificates.PrivateKeyContent, err =
		a.credential("PrivateKeyFile", "PrivateKeyContent")
	if err != nil {
		return err
	}

	cfg.Certificates.RdpKeyFile, cfg.Certificates.RdpKeyContent, err =
		a.credential("RdpKeyFile", "RdpKeyContent")
	return err
}

// credential validates one file/content pair from [Certificates].
// Check order matters for error precedence: a supplied file path is
// checked for existence and supplied content for non-emptiness before the
// cardinality rules run.
func (a *assembler) credential(fileKey, contentKey string) (string, string, *LoadError) {
	const section = "Certificates"

	file, fileOK, _ := a.stringKey(section, fileKey, false)
	if fileOK && !filesys.Exists(a.fsys, file) {
		return "", "", a.fail(&LoadError{Kind: KindFileNotFound, Section: section, Key: fileKey, Value: file})
	}

	content, contentOK, _ := a.stringKey(section, contentKey, false)
	if contentOK && len(content) == 0 {
		return "", "", a.fail(&LoadError{Kind: KindEmptyContent, Section: section, Key: contentKey})
	}

	switch {
	case fileOK && contentOK:
		return "", "", a.fail(&LoadError{Kind: KindMutuallyExclusive, Section: section, Key: fileKey + "/" + contentKey})
	case !fileOK && !contentOK:
		return "", "", a.fail(&LoadError{Kind: KindRequiredMissing, Section: section, Key: fileKey + "/" + contentKey})
	}
	return file, content, nil
}

// ModuleCount returns the number of modules to load. Nil-safe.
func (c *Config) ModuleCount() int {
	if c == nil {
		return 0
	}
	return len(c.Plugins.Modules)
}

// Module returns the module name at index i, or ok=false out of range.
func (c *Config) Module(i int) (string, bool) {
	if c == nil || i < 0 || i >= len(c.Plugins.Modules) {
		return "", false
	}
	return c.Plugins.Modules[i], true
}

// RequiredPluginCount returns the number of required plugins. Nil-safe.
func (c *Config) RequiredPluginCount() int {
	if c == nil {
		return 0
	}
	return len(c.Plugins.Required)
}

// RequiredPlugin returns the required plugin name at index i, or ok=false
// out of range.
func (c *Config) RequiredPlugin(i int) (string, bool) {
	if c == nil || i < 0 || i >= len(c.Plugins.Required) {
		return "", false
	}
	return c.Plugins.Required[i], true
}

package config

// boolDefaults is the single source of truth for feature-flag defaults,
// keyed by "Section.Key". Loaders consult it through defaultFor instead of
// repeating literals at each call site.
var boolDefaults = map[string]bool{
	"Target.FixedTarget": false,

	"Channels.GFX":            true,
	"Channels.DisplayControl": true,
	"Channels.Clipboard":      false,
	"Channels.AudioOutput":    true,
	"Channels.RemoteApp":      false,

	"Input.Keyboard": true,
	"Input.Mouse":    true,

	"Security.ServerTlsSecurity":        true,
	"Security.ServerRdpSecurity":        true,
	"Security.ClientTlsSecurity":        true,
	"Security.ClientNlaSecurity":        true,
	"Security.ClientRdpSecurity":        true,
	"Security.ClientAllowFallbackToTls": true,

	"Clipboard.TextOnly": false,

	"GFXSettings.DecodeGFX": false,
}

// defaultFor returns the documented default for a feature flag.
// Unknown keys default to false.
func defaultFor(section, key string) bool {
	return boolDefaults[section+"."+key]
}

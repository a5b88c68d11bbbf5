package config

import (
	"gopkg.in/ini.v1"
)

// KeyStore is the read-only section/key lookup the loader consumes.
// The production implementation wraps a parsed INI file, but tests may
// supply anything that answers string and integer lookups.
type KeyStore interface {
	// GetString returns the raw value for (section, key) and whether the
	// key is present. A present key with an empty value returns ("", true).
	GetString(section, key string) (string, bool)
	// GetInt returns the value for (section, key) interpreted as a leading
	// integer (atoi semantics: unparseable values read as 0) and whether
	// the key is present.
	GetInt(section, key string) (int, bool)
}

// iniStore adapts a parsed gopkg.in/ini.v1 file to the KeyStore interface.
type iniStore struct {
	file *ini.File
}

var _ KeyStore = (*iniStore)(nil)

// newIniStore parses raw INI text. A malformed buffer returns a
// *LoadError of KindParseError.
func newIniStore(data []byte) (*iniStore, error) {
	f, err := ini.LoadSources(ini.LoadOptions{}, data)
	if err != nil {
		return nil, &LoadError{Kind: KindParseError, Err: err}
	}
	return &iniStore{file: f}, nil
}

func (s *iniStore) GetString(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

func (s *iniStore) GetInt(section, key string) (int, bool) {
	raw, ok := s.GetString(section, key)
	if !ok {
		return 0, false
	}
	return atoi(raw), true
}

// atoi mirrors C atoi: optional surrounding space and sign, then as many
// leading digits as present. Anything unparseable reads as 0. The loader
// depends on this lenient reading for compatibility (see the boolean
// reader in readers.go).
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

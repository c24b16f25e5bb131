// Package settings loads the daemon's on-disk configuration: which
// dictionary files to load and, eventually, key-binding overrides layered
// on top of engine.DefaultConfig.
package settings

import (
	"bytes"
	"fmt"
	"os"

	mjson "github.com/mcvoid/json"

	"github.com/username/rskk-ime/internal/engine"
)

// Settings is the parsed daemon configuration.
type Settings struct {
	DictionaryPaths []string
	DefaultMode     engine.TransformerType
	Config          *engine.Config
}

// Default returns Settings with no dictionaries, a Direct default mode,
// and the engine's default key bindings, used when no settings file is
// present.
func Default() *Settings {
	return &Settings{DefaultMode: engine.TDirect, Config: engine.DefaultConfig()}
}

// defaultModes maps the settings file's "default_mode" string to the
// engine.TransformerType StartComposition expects.
var defaultModes = map[string]engine.TransformerType{
	"direct":   engine.TDirect,
	"hiragana": engine.THiragana,
	"katakana": engine.TKatakana,
}

// Load reads and parses a JSON settings file of the form:
//
//	{
//	  "dictionaries": ["/usr/share/skk/SKK-JISYO.L", "/home/user/.skk-jisyo"],
//	  "default_mode": "hiragana"
//	}
//
// Key-binding overrides are not read from the file: Config is always
// engine.DefaultConfig.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	v, err := mjson.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}

	s := Default()
	dicts, err := v.Key("dictionaries").AsArray()
	if err == nil {
		for _, d := range dicts {
			str, err := d.AsString()
			if err != nil {
				return nil, fmt.Errorf("settings: %s: dictionaries entries must be strings: %w", path, err)
			}
			s.DictionaryPaths = append(s.DictionaryPaths, str)
		}
	}

	if mode, err := v.Key("default_mode").AsString(); err == nil {
		t, ok := defaultModes[mode]
		if !ok {
			return nil, fmt.Errorf("settings: %s: unrecognized default_mode %q", path, mode)
		}
		s.DefaultMode = t
	}

	return s, nil
}

// LoadDictionary parses every configured dictionary file, in order, into
// one merged engine.Dictionary (last file wins on duplicate reads).
func (s *Settings) LoadDictionary() (*engine.Dictionary, error) {
	dict := engine.NewDictionary()
	for _, path := range s.DictionaryPaths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("settings: open dictionary %s: %w", path, err)
		}
		parsed := engine.ParseDictionary(f)
		f.Close()
		for _, e := range parsed.Entries() {
			dict.Put(e)
		}
	}
	return dict, nil
}

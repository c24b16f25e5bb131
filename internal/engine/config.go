package engine

// Action is a recognized key-binding action (§3 KeyConfig). The engine
// never inspects a KeyCombination directly — only which Action, if any,
// the pressing set currently fulfils.
type Action int

const (
	ActionEnter Action = iota
	ActionEnterHiragana
	ActionEnterKatakana
	ActionEnterEnKatakana
	ActionEnterEmEisu
	ActionEnterAbbr
	ActionEnterDirect
	ActionSticky
)

// Config is the frozen key-binding map the engine consumes. Opaque to
// transformers except through TryChangeTransformer; built once and shared
// via pointer, matching the teacher's *EngineConfig sharing pattern.
type Config struct {
	Bindings map[Action]KeyCombinations
}

// DefaultConfig returns the bindings from spec §6: Enter=Enter;
// sticky=';'; enter_hiragana=Ctrl+J; enter_katakana='q';
// enter_en_katakana=Ctrl+Q; enter_em_eisu=Shift+L; enter_abbr='/';
// enter_direct='l'.
func DefaultConfig() *Config {
	return &Config{
		Bindings: map[Action]KeyCombinations{
			ActionEnter: {
				NewKeyCombination(MetaOnly(MetaEnter)),
			},
			ActionSticky: {
				NewKeyCombination(Printable(';')),
			},
			ActionEnterHiragana: {
				NewKeyCombination(MetaOnly(MetaCtrl), Printable('j')),
			},
			ActionEnterKatakana: {
				NewKeyCombination(Printable('q')),
			},
			ActionEnterEnKatakana: {
				NewKeyCombination(MetaOnly(MetaCtrl), Printable('q')),
			},
			ActionEnterEmEisu: {
				NewKeyCombination(MetaOnly(MetaShift), Printable('l')),
			},
			ActionEnterAbbr: {
				NewKeyCombination(Printable('/')),
			},
			ActionEnterDirect: {
				NewKeyCombination(Printable('l')),
			},
		},
	}
}

// TryChangeTransformer returns the first action in allow whose binding is
// fulfilled by pressing, if any.
func (c *Config) TryChangeTransformer(allow []Action, pressing map[KeyCode]struct{}) (Action, bool) {
	for _, a := range allow {
		if combos, ok := c.Bindings[a]; ok && combos.Fulfilled(pressing) {
			return a, true
		}
	}
	return 0, false
}

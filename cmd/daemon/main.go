package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/username/rskk-ime/internal/engine"
	"github.com/username/rskk-ime/internal/furigana"
	"github.com/username/rskk-ime/internal/settings"
)

const (
	serviceName = "com.github.rskk.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from the
// frontend input-method framework (Fcitx5/IBus style ProcessKey calls).
type InputEngine struct {
	ctx         engine.Context
	defaultType engine.TransformerType
	composition *engine.Composition
	logger      *log.Logger
}

// NewInputEngine creates a new InputEngine backed by the given dictionary
// and reading suggester, starting in defaultType per spec §6's
// "(default_transformer_type, Config, Dictionary)" construction contract.
func NewInputEngine(cfg *engine.Config, dict *engine.Dictionary, fg *furigana.Suggester, defaultType engine.TransformerType, logger *log.Logger) *InputEngine {
	ctx := engine.Context{Config: cfg, Dictionary: dict, Furigana: fg}
	return &InputEngine{
		ctx:         ctx,
		defaultType: defaultType,
		composition: engine.StartComposition(ctx, defaultType),
		logger:      logger,
	}
}

// ProcessKey handles a key event from the frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state).
// Output: handled (was the key consumed), commitText (text to commit),
// preeditText (current composition display).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	e.composition.SetPressingModifiers(pressingModifierCodes(modifiers))
	code := keysymToKeyCode(keysym, modifiers)

	committed, updates := e.composition.PushKeyEvent(engine.KeyEvent{Kind: engine.KeyDown, Code: code})
	preedit := e.composition.DisplayString()
	handled := code != engine.NullKey

	if e.logger != nil {
		e.logger.Printf("keysym=0x%x mods=0x%x | preedit=%q commit=%q updates=%d",
			keysym, modifiers, preedit, committed, len(updates))
	}

	return handled, committed, preedit, nil
}

// Reset discards the current composition, returning to the configured
// default mode.
func (e *InputEngine) Reset() *dbus.Error {
	e.composition = engine.StartComposition(e.ctx, e.defaultType)
	fmt.Println(">>> [rskk] composition reset")
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.composition.DisplayString(), nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("rskk.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [rskk] Logging to rskk.log")
		defer logFile.Close()
	} else {
		fmt.Fprintf(os.Stderr, ">>> [rskk] Failed to open log file: %v\n", err)
	}

	cfgPath := os.Getenv("RSKK_SETTINGS")
	if cfgPath == "" {
		home, _ := os.UserHomeDir()
		cfgPath = filepath.Join(home, ".config", "rskk", "settings.json")
	}
	sets, err := settings.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, ">>> [rskk] No settings at %s (%v); using defaults\n", cfgPath, err)
		sets = settings.Default()
	}

	dict, err := sets.LoadDictionary()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load dictionary:", err)
		os.Exit(1)
	}

	fg, err := furigana.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, ">>> [rskk] Furigana suggester unavailable: %v\n", err)
		fg = nil
	}

	inputEngine := NewInputEngine(sets.Config, dict, fg, sets.DefaultMode, logger)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("rskk-ime daemon is running")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Dictionaries: %d\n", len(sets.DictionaryPaths))
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [rskk] Shutting down...")
}

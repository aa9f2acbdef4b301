// Released under an MIT license. See LICENSE.

// Package config loads and saves the shell's JSON configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EditMode selects the line editor's key bindings.
type EditMode string

// CompletionType selects how multiple completion candidates are presented.
type CompletionType string

// Edit modes and completion types.
const (
	Emacs EditMode = "emacs"
	Vi    EditMode = "vi"

	List     CompletionType = "list"
	Circular CompletionType = "circular"
)

// ErrUnsupportedEditMode is returned for key bindings the line editor lacks.
var ErrUnsupportedEditMode = errors.New("vi edit mode is not supported by this terminal editor")

// Supported returns ErrUnsupportedEditMode unless m is available.
func (m EditMode) Supported() error {
	if m != Emacs {
		return ErrUnsupportedEditMode
	}

	return nil
}

// T (config) holds settings read from the configuration file.
type T struct {
	MaxHistorySize int               `json:"max_history_size"`
	EditMode       EditMode          `json:"edit_mode"`
	CompletionType CompletionType    `json:"completion_type"`
	AutoCD         bool              `json:"auto_cd"`
	Aliases        map[string]string `json:"aliases"`
	Env            map[string]string `json:"env"`
}

// Default returns the settings used when no file exists.
func Default() *T {
	return &T{
		MaxHistorySize: 1000,
		EditMode:       Emacs,
		CompletionType: List,
		AutoCD:         true,
		Aliases:        map[string]string{},
		Env:            map[string]string{},
	}
}

// DefaultPath returns ~/.carapace/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return filepath.Join(home, ".carapace", "config.json")
}

// Load reads the configuration at path. If the file does not exist, the
// defaults are written there and returned. Unknown entries are reported
// to w and otherwise ignored.
func Load(path string, w io.Writer) (*T, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, c.Save(path)
	} else if err != nil {
		return c, err
	}

	return c, c.Decode(data, w)
}

// Decode overlays the JSON object in data onto c.
func (c *T) Decode(data []byte, w io.Writer) error {
	entries := map[string]json.RawMessage{}

	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("could not parse config: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		v := entries[k]

		var err error

		switch strings.ToLower(k) {
		case "max_history_size":
			err = json.Unmarshal(v, &c.MaxHistorySize)
		case "edit_mode":
			var s string
			err = json.Unmarshal(v, &s)
			c.EditMode = Emacs
			if s == string(Vi) {
				c.EditMode = Vi
			}
		case "completion_type":
			var s string
			err = json.Unmarshal(v, &s)
			c.CompletionType = List
			if s == string(Circular) {
				c.CompletionType = Circular
			}
		case "auto_cd":
			err = json.Unmarshal(v, &c.AutoCD)
		case "aliases":
			err = json.Unmarshal(v, &c.Aliases)
		case "env":
			err = json.Unmarshal(v, &c.Env)
		default:
			fmt.Fprintf(w, "Unknown config entry: %s=%s\n", k, v)
		}

		if err != nil {
			return fmt.Errorf("config entry %s: %w", k, err)
		}
	}

	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}

	if c.Env == nil {
		c.Env = map[string]string{}
	}

	return nil
}

// Save writes c to path, creating the parent directory as needed.
func (c *T) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

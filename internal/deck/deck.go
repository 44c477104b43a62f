// Package deck parses and validates squad/deck files: a thin
// File/Entry struct pair unmarshaled with yaml.v3, no configuration
// framework.
package deck

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/berserk-vibe/matchd/internal/carddb"
)

// Entry is one line of a deck file: a card definition ID and how many
// copies.
type Entry struct {
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count" json:"count"`
}

// File is the persisted deck format.
type File struct {
	Name      string  `yaml:"name" json:"name"`
	Protected bool    `yaml:"protected" json:"protected"`
	Cards     []Entry `yaml:"cards" json:"cards"`
}

// Parse reads a YAML deck file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("deck: parse: %w", err)
	}
	return &f, nil
}

// codePayload is the deck-code wire shape: {"n": name, "c": [[name,count],...]}.
type codePayload struct {
	N string          `json:"n"`
	C [][2]any        `json:"c"`
}

// Encode produces a base64 deck code from a File.
func Encode(f *File) (string, error) {
	payload := codePayload{N: f.Name}
	for _, e := range f.Cards {
		payload.C = append(payload.C, [2]any{e.Name, e.Count})
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses a deck code back into a File (Protected is always false:
// codes are shareable, not bundled-read-only).
func Decode(code string) (*File, error) {
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("deck: decode: %w", err)
	}
	var payload codePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("deck: decode payload: %w", err)
	}
	f := &File{Name: payload.N}
	for _, pair := range payload.C {
		name, _ := pair[0].(string)
		countF, _ := pair[1].(float64)
		f.Cards = append(f.Cards, Entry{Name: name, Count: int(countF)})
	}
	return f, nil
}

// TotalCards returns the sum of all entry counts.
func (f *File) TotalCards() int {
	total := 0
	for _, e := range f.Cards {
		total += e.Count
	}
	return total
}

// Validate enforces deck rules: 30-50 cards total, at most 3 copies of
// any one definition, and every named card must exist in the registry.
func (f *File) Validate() error {
	copies := map[string]int{}
	for _, e := range f.Cards {
		copies[e.Name] += e.Count
		if e.Count < 1 || copies[e.Name] > 3 {
			return fmt.Errorf("deck: at most 3 copies of %q allowed, got %d", e.Name, copies[e.Name])
		}
		if carddb.Lookup(e.Name) == nil {
			return fmt.Errorf("deck: unknown card %q", e.Name)
		}
	}
	total := f.TotalCards()
	if total < 30 || total > 50 {
		return fmt.Errorf("deck: must contain 30-50 cards, got %d", total)
	}
	return nil
}

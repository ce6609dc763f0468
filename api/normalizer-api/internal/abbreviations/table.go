// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_abbreviations

import (
	"encoding/json"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table maps case-sensitive abbreviation literals to their expansion.
// Iteration follows insertion order, which is also the order expansions are
// applied in. A Table must not be modified once handed to a normalizer.
type Table struct {
	entries *orderedmap.OrderedMap[string, string]
}

// Entry is one abbreviation and its expansion.
type Entry struct {
	Abbreviation string
	Expansion    string
}

func NewTable(entries ...Entry) *Table {
	t := &Table{entries: orderedmap.New[string, string]()}
	for _, e := range entries {
		t.Set(e.Abbreviation, e.Expansion)
	}
	return t
}

// Set adds or overrides an entry. Overridden entries keep their position.
func (t *Table) Set(abbreviation, expansion string) {
	if abbreviation == "" {
		return
	}
	t.entries.Set(abbreviation, expansion)
}

func (t *Table) Get(abbreviation string) (string, bool) {
	return t.entries.Get(abbreviation)
}

func (t *Table) Len() int {
	return t.entries.Len()
}

// Entries returns a snapshot in application order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Abbreviation: pair.Key, Expansion: pair.Value})
	}
	return out
}

// Merge returns a new table holding t followed by other. Keys present in
// both take the expansion from other but keep the position from t.
func (t *Table) Merge(other *Table) *Table {
	merged := NewTable(t.Entries()...)
	if other != nil {
		for _, e := range other.Entries() {
			merged.Set(e.Abbreviation, e.Expansion)
		}
	}
	return merged
}

// Parse reads a JSON object of abbreviation to expansion, keeping the key
// order of the document.
func Parse(data []byte) (*Table, error) {
	entries := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, entries); err != nil {
		return nil, fmt.Errorf("abbreviations: invalid table: %w", err)
	}
	t := NewTable()
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		t.Set(pair.Key, pair.Value)
	}
	return t, nil
}

// Load reads a JSON table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("abbreviations: unable to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadWithDefaults merges the table at path over Default. An empty path
// yields the default table.
func LoadWithDefaults(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	custom, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Default().Merge(custom), nil
}

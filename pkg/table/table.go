// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table holds the ordered source-to-replacement mapping applied by the fixer.
package table

import (
	"github.com/walteh/textfix/pkg/text"
	orderedmap "github.com/wk8/go-ordered-map"
	"gitlab.com/tozd/go/errors"
)

// 📚 Table is an ordered mapping from source text to replacement text.
// Setting an existing key overwrites its value and keeps its position.
type Table struct {
	entries *orderedmap.OrderedMap
}

// 🏭 New creates an empty table
func New() *Table {
	return &Table{entries: orderedmap.New()}
}

// 📝 Set adds or overwrites an entry
func (t *Table) Set(from, to string) {
	t.entries.Set(from, to)
}

// 🔍 Get returns the replacement for a source string
func (t *Table) Get(from string) (string, bool) {
	v, ok := t.entries.Get(from)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of entries
func (t *Table) Len() int {
	return t.entries.Len()
}

// 📋 Rules projects the table into replacement rules, in table order
func (t *Table) Rules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		rules = append(rules, text.ReplacementRule{
			FromText: pair.Key.(string),
			ToText:   pair.Value.(string),
		})
	}
	return rules
}

// 🔀 Merge sets every entry of other on t, in other's order
func (t *Table) Merge(other *Table) {
	for pair := other.entries.Oldest(); pair != nil; pair = pair.Next() {
		t.entries.Set(pair.Key, pair.Value)
	}
}

// ✅ Validate checks that the table can be applied
func (t *Table) Validate() error {
	if t.Len() == 0 {
		return errors.New("replacement table is empty")
	}
	if err := text.NewSimpleTextReplacer().ValidateRules(t.Rules()); err != nil {
		return errors.Errorf("validating table: %w", err)
	}
	return nil
}

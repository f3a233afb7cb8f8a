// Copyright 2025 go-highway Authors
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

package ptxglue

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// itemKind distinguishes the pieces a PTX module is split into.
type itemKind int

const (
	itemLine  itemKind = iota // any line outside an entry
	itemGlobl                 // "// .globl name" marker
	itemEntry                 // a complete .entry declaration
)

type ptxItem struct {
	kind  itemKind
	name  string
	lines []string
}

// Module is a PTX text split into top-level items. Only kernel entries
// are interpreted; everything else is carried through verbatim.
type Module struct {
	items           []ptxItem
	trailingNewline bool
}

var (
	entryRe = regexp.MustCompile(`^\s*(?:\.(?:visible|weak|extern)\s+)*\.entry\s+([^\s(]+)`)
	globlRe = regexp.MustCompile(`^\s*//\s*\.globl\s+(\S+)\s*$`)
)

// ParsePTX splits text into top-level items.
func ParsePTX(text string) (*Module, error) {
	m := &Module{trailingNewline: strings.HasSuffix(text, "\n")}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if g := globlRe.FindStringSubmatch(line); g != nil {
			m.items = append(m.items, ptxItem{kind: itemGlobl, name: g[1], lines: []string{line}})
			continue
		}
		e := entryRe.FindStringSubmatch(line)
		if e == nil {
			m.items = append(m.items, ptxItem{kind: itemLine, lines: []string{line}})
			continue
		}

		end, err := entryEnd(lines, i)
		if err != nil {
			return nil, fmt.Errorf("entry %s at line %d: %w", e[1], i+1, err)
		}
		m.items = append(m.items, ptxItem{kind: itemEntry, name: e[1], lines: lines[i : end+1]})
		i = end
	}
	return m, nil
}

// entryEnd returns the index of the last line of the entry starting at
// start: the line closing its body, or a bodiless declaration ending in ';'.
func entryEnd(lines []string, start int) (int, error) {
	depth := 0
	opened := false
	for i := start; i < len(lines); i++ {
		code := lines[i]
		if idx := strings.Index(code, "//"); idx >= 0 {
			code = code[:idx]
		}
		for _, r := range code {
			switch r {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
				if depth < 0 {
					return 0, fmt.Errorf("%w: unbalanced '}'", ErrMalformedPTX)
				}
			}
		}
		if opened && depth == 0 {
			return i, nil
		}
		if !opened && strings.HasSuffix(strings.TrimSpace(code), ";") {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unterminated entry", ErrMalformedPTX)
}

// Entries returns the kernel names in declaration order.
func (m *Module) Entries() []string {
	var names []string
	for _, it := range m.items {
		if it.kind == itemEntry {
			names = append(names, it.name)
		}
	}
	return names
}

// Filter returns a copy of m keeping only the whitelisted entries. The
// .globl markers of dropped entries go with them, as does one blank line
// following each dropped entry. Every whitelisted kernel must be present.
func (m *Module) Filter(whitelist []string) (*Module, error) {
	if len(whitelist) == 0 {
		return nil, ErrEmptyWhitelist
	}
	entries := m.Entries()
	for _, name := range whitelist {
		if !slices.Contains(entries, name) {
			return nil, &CompileError{Stage: "filter", Kernel: name, Err: ErrMissingKernel}
		}
	}

	dropped := make(map[string]bool)
	for _, name := range entries {
		if !slices.Contains(whitelist, name) {
			dropped[name] = true
		}
	}

	out := &Module{trailingNewline: m.trailingNewline}
	skipBlank := false
	for _, it := range m.items {
		switch {
		case it.kind == itemEntry && dropped[it.name]:
			skipBlank = true
			continue
		case it.kind == itemGlobl && dropped[it.name]:
			continue
		case skipBlank && it.kind == itemLine && strings.TrimSpace(it.lines[0]) == "":
			skipBlank = false
			continue
		}
		skipBlank = false
		out.items = append(out.items, it)
	}
	return out, nil
}

// String reassembles the module text.
func (m *Module) String() string {
	var sb strings.Builder
	first := true
	for _, it := range m.items {
		for _, line := range it.lines {
			if !first {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
			first = false
		}
	}
	if m.trailingNewline {
		sb.WriteByte('\n')
	}
	return sb.String()
}

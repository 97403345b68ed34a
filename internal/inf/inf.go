// Package inf reads driver-description (INF) documents: bracketed
// section headers followed by comma-delimited `key = value, value, ...`
// lines. It resolves the source encoding, tokenizes sections and lines,
// and expands %token% references against the document's [Strings] table.
//
// The reader is deliberately dumb about meaning: it hands back sections
// and lines in file order and leaves every interpretation decision to
// the report pipeline.
package inf

import (
	"fmt"
	"os"
	"strings"

	"infreport/internal/domain"
	"infreport/internal/errdefs"
)

// DefaultMaxSize caps how much input Load is willing to read when the
// caller passes no limit.
const DefaultMaxSize = 16 << 20

const stringsSection = "strings"

// Line is one parsed logical line of a section: the key column and the
// ordered comma-delimited fields, all with string-table tokens expanded.
type Line struct {
	key    string
	fields []string
}

// Key returns the key column (the text left of '=', or the whole line
// when no '=' is present).
func (l Line) Key() string { return l.key }

// FieldCount returns the number of fields on the line.
func (l Line) FieldCount() int { return len(l.fields) }

// FieldAt returns field i in file order.
func (l Line) FieldAt(i int) string { return l.fields[i] }

// Document is a fully tokenized driver-description document.
type Document struct {
	names    map[string]string // fold -> first-seen spelling
	order    []string          // first-seen spellings, file order
	sections map[string][]Line // fold -> lines, duplicate headers merged in order
}

// Load reads, decodes, and parses the document at path. maxSize caps the
// input size; zero or negative selects DefaultMaxSize. Oversized input
// fails with errdefs.KindResourceExhaustion before any read.
func Load(path string, maxSize int64) (*Document, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errdefs.New(errdefs.KindUnclassified, fmt.Errorf("stat input: %w", err))
	}
	if info.Size() > maxSize {
		return nil, errdefs.Newf(errdefs.KindResourceExhaustion,
			"input %s is %d bytes, limit is %d", path, info.Size(), maxSize)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errdefs.New(errdefs.KindUnclassified, fmt.Errorf("read input: %w", err))
	}
	return ParseBytes(raw)
}

// ParseBytes decodes raw (see DecodeText) and parses the result.
func ParseBytes(raw []byte) (*Document, error) {
	text, err := DecodeText(raw)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Parse tokenizes an already-decoded document.
func Parse(text string) *Document {
	doc := &Document{
		names:    make(map[string]string),
		sections: make(map[string][]Line),
	}

	// First pass: logical lines grouped under their section headers,
	// untouched by expansion.
	type rawSection struct {
		fold  string
		lines []string
	}
	var raws []*rawSection
	byFold := make(map[string]*rawSection)

	current := (*rawSection)(nil)
	for _, logical := range logicalLines(text) {
		if name, ok := sectionHeader(logical); ok {
			fold := strings.ToLower(name)
			if _, seen := doc.names[fold]; !seen {
				doc.names[fold] = name
				doc.order = append(doc.order, name)
			}
			if sec, seen := byFold[fold]; seen {
				current = sec
			} else {
				current = &rawSection{fold: fold}
				byFold[fold] = current
				raws = append(raws, current)
			}
			continue
		}
		if current == nil {
			// Stray content before the first header carries no section
			// identity and is skipped.
			continue
		}
		current.lines = append(current.lines, logical)
	}

	// Second pass: the string table, parsed without expansion so its own
	// values stay literal.
	table := make(map[string]string)
	if sec, ok := byFold[stringsSection]; ok {
		for _, logical := range sec.lines {
			lhs, rhs, hasEq := splitKeyValue(logical)
			if !hasEq {
				continue
			}
			token := strings.ToLower(unquote(strings.TrimSpace(lhs)))
			if token == "" {
				continue
			}
			if _, dup := table[token]; !dup {
				table[token] = unquote(strings.TrimSpace(rhs))
			}
		}
	}

	// Final pass: every section's lines, with expansion applied.
	for _, sec := range raws {
		lines := make([]Line, 0, len(sec.lines))
		for _, logical := range sec.lines {
			lines = append(lines, parseLine(logical, table))
		}
		doc.sections[sec.fold] = lines
	}
	return doc
}

// Sections enumerates every section name present in the document.
func (d *Document) Sections() *domain.SectionSet {
	set := domain.NewSectionSet()
	for _, name := range d.order {
		set.Add(name)
	}
	return set
}

// ForEachLine visits the lines of the named section in file order,
// matching the name case-insensitively. The visitor returns true to
// continue and false to stop early. A missing section is fatal.
//
// Together with Sections this satisfies domain.Document.
func (d *Document) ForEachLine(section string, visit func(domain.Line) bool) error {
	lines, ok := d.sections[strings.ToLower(section)]
	if !ok {
		return errdefs.Newf(errdefs.KindMissingSection, "section %q not found", section)
	}
	for _, line := range lines {
		if !visit(line) {
			return nil
		}
	}
	return nil
}

// logicalLines splits text into lines, strips comments and whitespace,
// joins `\` continuations, and drops blanks.
func logicalLines(text string) []string {
	var out []string
	pending := ""
	for _, physical := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(physical, "\r")
		line = strings.TrimSpace(stripComment(line))
		if pending != "" {
			line = pending + line
			pending = ""
		}
		if rest, cont := strings.CutSuffix(line, "\\"); cont {
			pending = rest
			continue
		}
		if line != "" {
			out = append(out, line)
		}
	}
	if pending != "" {
		out = append(out, pending)
	}
	return out
}

// stripComment removes a trailing `;` comment, honoring double quotes.
func stripComment(line string) string {
	inQuote := false
	for i, r := range line {
		switch r {
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				return line[:i]
			}
		}
	}
	return line
}

// sectionHeader reports whether line is a `[Name]` header and extracts
// the name.
func sectionHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, "[") {
		return "", false
	}
	end := strings.LastIndexByte(line, ']')
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(line[1:end]), true
}

// parseLine splits one logical line into its key and fields and expands
// string-table tokens in each.
func parseLine(logical string, table map[string]string) Line {
	lhs, rhs, hasEq := splitKeyValue(logical)
	if !hasEq {
		return Line{key: expand(unquote(strings.TrimSpace(logical)), table)}
	}

	line := Line{key: expand(unquote(strings.TrimSpace(lhs)), table)}
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return line
	}
	for _, field := range splitFields(rhs) {
		line.fields = append(line.fields, expand(unquote(strings.TrimSpace(field)), table))
	}
	return line
}

// splitKeyValue splits on the first '=' outside quotes.
func splitKeyValue(s string) (lhs, rhs string, hasEq bool) {
	inQuote := false
	for i, r := range s {
		switch r {
		case '"':
			inQuote = !inQuote
		case '=':
			if !inQuote {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// splitFields splits on commas outside quotes. An empty rhs never
// reaches here, so the result always has at least one element.
func splitFields(s string) []string {
	var fields []string
	start := 0
	inQuote := false
	for i, r := range s {
		switch r {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				fields = append(fields, s[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, s[start:])
}

// unquote removes one layer of surrounding double quotes and collapses
// the `""` escape.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}
	return s
}

// expand replaces %token% references with their string-table values.
// Token matching is case-insensitive; unknown tokens stay verbatim and
// %% is a literal percent sign.
func expand(s string, table map[string]string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(s, '%')
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		rest := s[open+1:]
		end := strings.IndexByte(rest, '%')
		if end < 0 {
			b.WriteString(s[open:])
			return b.String()
		}
		token := rest[:end]
		if token == "" {
			b.WriteByte('%')
		} else if value, ok := table[strings.ToLower(token)]; ok {
			b.WriteString(value)
		} else {
			b.WriteByte('%')
			b.WriteString(token)
			b.WriteByte('%')
		}
		s = rest[end+1:]
	}
}

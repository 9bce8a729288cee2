package core

import (
	"strings"

	"pkgset-sync/internal/types"
)

const mkPackageToken = "mkPackage"

// entryScanner walks group file text outside of string literals and
// comments. It recognizes only what the upsert engine needs: labelled
// mkPackage assignments and the braces of the record literal.
type entryScanner struct {
	src string
	pos int
}

// ScanEntries returns every `label = mkPackage [..] "repo" "version"`
// assignment in content, in file order.
func ScanEntries(content string) []types.Entry {
	s := &entryScanner{src: content}
	var entries []types.Entry
	for s.pos < len(s.src) {
		if s.skipTrivia() {
			continue
		}
		c := s.src[s.pos]
		if c == '`' || (isLabelStart(c) && !s.prevIsLabel()) {
			start := s.pos
			name, ok := s.readLabel()
			if !ok {
				s.pos = start + 1
				continue
			}
			afterLabel := s.pos
			if entry, ok := s.readEntryTail(start, name); ok {
				entries = append(entries, entry)
				continue
			}
			s.pos = afterLabel
			continue
		}
		s.pos++
	}
	return entries
}

// FindEntries returns the entries whose label is exactly name.
func FindEntries(content string, name string) []types.Entry {
	var matches []types.Entry
	for _, entry := range ScanEntries(content) {
		if entry.Name == name {
			matches = append(matches, entry)
		}
	}
	return matches
}

// DuplicateEntries returns labels assigned more than once, in order of
// their second occurrence.
func DuplicateEntries(content string) []string {
	seen := map[string]int{}
	var dups []string
	for _, entry := range ScanEntries(content) {
		seen[entry.Name]++
		if seen[entry.Name] == 2 {
			dups = append(dups, entry.Name)
		}
	}
	return dups
}

// recordClose returns the offset of the last closing brace outside strings
// and comments.
func recordClose(content string) (int, bool) {
	s := &entryScanner{src: content}
	last := -1
	for s.pos < len(s.src) {
		if s.skipTrivia() {
			continue
		}
		if s.src[s.pos] == '}' {
			last = s.pos
		}
		s.pos++
	}
	return last, last >= 0
}

func (s *entryScanner) readEntryTail(start int, name string) (types.Entry, bool) {
	s.skipSpace()
	if !s.consume("=") || s.peek() == '=' {
		return types.Entry{}, false
	}
	s.skipSpace()
	if !strings.HasPrefix(s.src[s.pos:], mkPackageToken) {
		return types.Entry{}, false
	}
	s.pos += len(mkPackageToken)
	if s.pos < len(s.src) && isLabelChar(s.src[s.pos]) {
		return types.Entry{}, false
	}
	s.skipSpace()
	listStart := s.pos
	if !s.skipList() {
		return types.Entry{}, false
	}
	deps := s.src[listStart:s.pos]
	if !s.skipListAnnotation() {
		return types.Entry{}, false
	}
	repo, ok := s.readString()
	if !ok {
		return types.Entry{}, false
	}
	s.skipSpace()
	version, ok := s.readString()
	if !ok {
		return types.Entry{}, false
	}
	return types.Entry{
		Name:         name,
		Start:        start,
		End:          s.pos,
		Dependencies: deps,
		Repo:         repo,
		Version:      version,
	}, true
}

// readLabel reads a plain or backtick-quoted label at the cursor.
func (s *entryScanner) readLabel() (string, bool) {
	if s.src[s.pos] == '`' {
		end := strings.IndexByte(s.src[s.pos+1:], '`')
		if end <= 0 {
			return "", false
		}
		name := s.src[s.pos+1 : s.pos+1+end]
		s.pos += end + 2
		return name, true
	}
	start := s.pos
	for s.pos < len(s.src) && isLabelChar(s.src[s.pos]) {
		if strings.HasPrefix(s.src[s.pos:], "--") {
			break
		}
		s.pos++
	}
	return s.src[start:s.pos], s.pos > start
}

// skipList moves past a bracketed list literal, honoring nested brackets
// and string literals.
func (s *entryScanner) skipList() bool {
	if !s.consume("[") {
		return false
	}
	depth := 1
	for s.pos < len(s.src) {
		if s.skipTrivia() {
			continue
		}
		switch s.src[s.pos] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				s.pos++
				return true
			}
		}
		s.pos++
	}
	return false
}

// skipListAnnotation moves to the next string literal, allowing a type
// annotation such as `: List Text` after an empty list.
func (s *entryScanner) skipListAnnotation() bool {
	for s.pos < len(s.src) {
		if s.skipComment() {
			continue
		}
		switch s.src[s.pos] {
		case '"':
			return true
		case ',', '}', '=', '[', ']':
			return false
		}
		s.pos++
	}
	return false
}

func (s *entryScanner) readString() (string, bool) {
	if s.peek() != '"' {
		return "", false
	}
	start := s.pos + 1
	if !s.skipString() {
		return "", false
	}
	return s.src[start : s.pos-1], true
}

// skipTrivia consumes one string literal or comment at the cursor.
func (s *entryScanner) skipTrivia() bool {
	if s.pos >= len(s.src) {
		return false
	}
	if s.src[s.pos] == '"' {
		if !s.skipString() {
			s.pos = len(s.src)
		}
		return true
	}
	if strings.HasPrefix(s.src[s.pos:], "''") {
		end := strings.Index(s.src[s.pos+2:], "''")
		if end < 0 {
			s.pos = len(s.src)
		} else {
			s.pos += end + 4
		}
		return true
	}
	return s.skipComment()
}

func (s *entryScanner) skipComment() bool {
	rest := s.src[s.pos:]
	switch {
	case strings.HasPrefix(rest, "--"):
		end := strings.IndexByte(rest, '\n')
		if end < 0 {
			s.pos = len(s.src)
		} else {
			s.pos += end + 1
		}
		return true
	case strings.HasPrefix(rest, "{-"):
		depth := 0
		for s.pos < len(s.src) {
			switch {
			case strings.HasPrefix(s.src[s.pos:], "{-"):
				depth++
				s.pos += 2
			case strings.HasPrefix(s.src[s.pos:], "-}"):
				depth--
				s.pos += 2
				if depth == 0 {
					return true
				}
			default:
				s.pos++
			}
		}
		return true
	}
	return false
}

// skipString moves past a double-quoted literal starting at the cursor.
func (s *entryScanner) skipString() bool {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '"':
			s.pos++
			return true
		}
		s.pos++
	}
	return false
}

func (s *entryScanner) skipSpace() {
	for s.pos < len(s.src) {
		if s.skipComment() {
			continue
		}
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *entryScanner) consume(token string) bool {
	if strings.HasPrefix(s.src[s.pos:], token) {
		s.pos += len(token)
		return true
	}
	return false
}

func (s *entryScanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *entryScanner) prevIsLabel() bool {
	return s.pos > 0 && isLabelChar(s.src[s.pos-1])
}

func isLabelStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isLabelChar(c byte) bool {
	return isLabelStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '/'
}

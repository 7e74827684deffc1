package database

import "strings"

// SplitStatements splits a SQL script on statement-terminating semicolons.
// Semicolons inside single-quoted strings, quoted identifiers, dollar-quoted
// bodies, line comments and block comments do not terminate a statement.
// Comments are dropped, surrounding whitespace is trimmed and empty
// statements are discarded.
func SplitStatements(script string) []string {
	var stmts []string
	var b strings.Builder

	i, n := 0, len(script)
	for i < n {
		switch c := script[i]; {
		case c == '\'':
			i = copyQuoted(&b, script, i)
		case c == '"':
			i = copyIdent(&b, script, i)
		case c == '$':
			i = copyDollarQuoted(&b, script, i)
		case c == '-' && i+1 < n && script[i+1] == '-':
			i = skipLineComment(script, i)
		case c == '/' && i+1 < n && script[i+1] == '*':
			i = skipBlockComment(script, i)
		case c == ';':
			if stmt := strings.TrimSpace(b.String()); stmt != "" {
				stmts = append(stmts, stmt)
			}
			b.Reset()
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}

	if stmt := strings.TrimSpace(b.String()); stmt != "" {
		stmts = append(stmts, stmt)
	}
	return stmts
}

// copyQuoted copies a single-quoted string literal, honoring '' escapes.
func copyQuoted(b *strings.Builder, s string, start int) int {
	j := start + 1
	for j < len(s) {
		if s[j] == '\'' {
			if j+1 < len(s) && s[j+1] == '\'' {
				j += 2
				continue
			}
			j++
			break
		}
		j++
	}
	b.WriteString(s[start:j])
	return j
}

// copyIdent copies a double-quoted identifier.
func copyIdent(b *strings.Builder, s string, start int) int {
	j := start + 1
	for j < len(s) && s[j] != '"' {
		j++
	}
	if j < len(s) {
		j++
	}
	b.WriteString(s[start:j])
	return j
}

// copyDollarQuoted copies a $tag$...$tag$ body. A lone dollar sign that does
// not open a valid tag is copied through as-is.
func copyDollarQuoted(b *strings.Builder, s string, start int) int {
	j := start + 1
	for j < len(s) && (isTagByte(s[j]) || s[j] == '$') {
		if s[j] == '$' {
			break
		}
		j++
	}
	if j >= len(s) || s[j] != '$' {
		b.WriteByte('$')
		return start + 1
	}

	tag := s[start : j+1]
	end := strings.Index(s[j+1:], tag)
	if end < 0 {
		b.WriteByte('$')
		return start + 1
	}
	stop := j + 1 + end + len(tag)
	b.WriteString(s[start:stop])
	return stop
}

func isTagByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func skipLineComment(s string, start int) int {
	if idx := strings.IndexByte(s[start:], '\n'); idx >= 0 {
		return start + idx
	}
	return len(s)
}

func skipBlockComment(s string, start int) int {
	if idx := strings.Index(s[start+2:], "*/"); idx >= 0 {
		return start + 2 + idx + 2
	}
	return len(s)
}

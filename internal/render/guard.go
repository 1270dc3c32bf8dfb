package render

import "strings"

// forbidden may not appear anywhere in a statement, in any letter case.
// Matching is by substring: a literal or identifier containing one of these
// words is rejected too.
var forbidden = []string{
	";", "--", "/*", "*/", "xp_",
	"exec", "execute",
	"insert", "update", "delete", "drop", "alter", "create", "truncate",
}

// Guard checks a rendered statement before it is returned.
//
// It rejects comment and statement-separator tokens, extended procedure
// prefixes, DML/DDL keywords, and any text that is not a SELECT.
func Guard(sql string) error {
	lower := strings.ToLower(sql)
	for _, token := range forbidden {
		if strings.Contains(lower, token) {
			return &UnsafeStatementError{Reason: ErrUnsafeQuery, Token: token}
		}
	}

	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(sql)), "SELECT") {
		return &UnsafeStatementError{Reason: ErrNotSelect}
	}

	return nil
}

package lang

import (
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/bethropolis/tidepad/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
)

// QueryFS is the filesystem the highlight queries are read from.
var QueryFS fs.FS

// Language describes one grammar and the files it applies to.
type Language struct {
	Name           string
	TreeSitterLang *sitter.Language
	Extensions     []string
	// QueryPath is the directory under queries/ holding highlights.scm.
	QueryPath string

	queryOnce sync.Once
	query     *sitter.Query
	queryErr  error
}

// QuerySource returns the raw highlight query for this language.
func (l *Language) QuerySource() ([]byte, error) {
	if QueryFS == nil {
		return nil, fmt.Errorf("query filesystem not set")
	}
	if l.QueryPath == "" {
		return nil, fmt.Errorf("no query path defined for language %s", l.Name)
	}
	p := path.Join("queries", l.QueryPath, "highlights.scm")
	data, err := fs.ReadFile(QueryFS, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read query %s: %w", p, err)
	}
	logger.DebugTagf("highlight", "Loaded query from %s for %s (%d bytes)", p, l.Name, len(data))
	return data, nil
}

// Query compiles the highlight query once and caches it.
func (l *Language) Query() (*sitter.Query, error) {
	l.queryOnce.Do(func() {
		src, err := l.QuerySource()
		if err != nil {
			l.queryErr = err
			return
		}
		l.query, l.queryErr = sitter.NewQuery(src, l.TreeSitterLang)
		if l.queryErr != nil {
			l.queryErr = fmt.Errorf("query for %s: %w", l.Name, l.queryErr)
		}
	})
	return l.query, l.queryErr
}

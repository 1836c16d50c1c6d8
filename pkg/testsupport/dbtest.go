package testsupport

import (
	"fmt"
	"sync/atomic"

	"github.com/goliatone/go-builder/internal/projects"
	"github.com/uptrace/bun"
)

var dbSeq atomic.Int64

// NewSQLiteMemoryDB opens a private in-memory sqlite database for repository
// tests. Each call gets its own database so parallel tests never share state.
func NewSQLiteMemoryDB() (*bun.DB, error) {
	dsn := fmt.Sprintf("file:builder_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	return projects.NewSQLiteDB(dsn)
}

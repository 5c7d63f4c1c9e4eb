package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path of a fresh SQLite database file for the test.
// The directory is removed when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "leasedesk-"+uuid.NewString()+".db")
}

package mocks

import (
	"io/fs"

	"github.com/stretchr/testify/mock"

	"github.com/lc/rdgate/internal/filesys"
)

var _ filesys.FS = (*MockFS)(nil)

// MockFS is a mock implementation of the filesys.FS interface.
// It is built on testify/mock and adheres to the methods defined in
// filesys.OsFS.
type MockFS struct {
	mock.Mock
}

// Stat mocks the Stat method.
func (m *MockFS) Stat(p string) (fs.FileInfo, error) {
	args := m.Called(p)
	// Need to handle potential nil interface return
	var fileInfo fs.FileInfo
	if args.Get(0) != nil {
		fileInfo = args.Get(0).(fs.FileInfo)
	}
	return fileInfo, args.Error(1)
}

// ReadFile mocks the ReadFile method.
func (m *MockFS) ReadFile(p string) ([]byte, error) {
	args := m.Called(p)
	// Need to handle potential nil slice return
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}

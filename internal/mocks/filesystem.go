package mocks

import (
	"github.com/brettbedarf/shellsim"
	"github.com/stretchr/testify/mock"
)

// MockFileSystem implements shellsim.FileSystem for testing across packages
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) Pwd() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileSystem) ListDirectory(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileSystem) ChangeDirectory(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileSystem) MakeDirectory(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileSystem) MakeDirectoryAll(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileSystem) CreateOrTouchFile(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileSystem) ReadFile(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) DeleteFile(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockFileSystem) CopyFile(src, dst string) error {
	return m.Called(src, dst).Error(0)
}

func (m *MockFileSystem) MoveFile(src, dst string) error {
	return m.Called(src, dst).Error(0)
}

func (m *MockFileSystem) WriteFile(path, content string, append bool) error {
	return m.Called(path, content, append).Error(0)
}

var _ shellsim.FileSystem = (*MockFileSystem)(nil)

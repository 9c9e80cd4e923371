package mocks

import (
	"github.com/brettbedarf/shellsim"
	"github.com/stretchr/testify/mock"
)

// MockInspector implements shellsim.Inspector for objective tests
type MockInspector struct {
	mock.Mock
}

func (m *MockInspector) CurrentDirectory() string {
	return m.Called().String(0)
}

func (m *MockInspector) FileExists(path string) bool {
	return m.Called(path).Bool(0)
}

func (m *MockInspector) FileContentContains(path, substr string) bool {
	return m.Called(path, substr).Bool(0)
}

func (m *MockInspector) DirectoryExists(path string) bool {
	return m.Called(path).Bool(0)
}

var _ shellsim.Inspector = (*MockInspector)(nil)

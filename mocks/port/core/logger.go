package core

import (
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock of coreport.Logger
type MockLogger struct {
	mock.Mock
}

// NewMockLogger creates a MockLogger that accepts any log call
func NewMockLogger() *MockLogger {
	m := new(MockLogger)
	m.On("Debug", mock.Anything, mock.Anything).Maybe()
	m.On("Info", mock.Anything, mock.Anything).Maybe()
	m.On("Warn", mock.Anything, mock.Anything).Maybe()
	m.On("Error", mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() coreport.LogLevel {
	args := m.Called()
	return args.Get(0).(coreport.LogLevel)
}

// With returns the mock itself so field-scoped loggers are still observable
func (m *MockLogger) With(fields map[string]any) coreport.Logger {
	return m
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}

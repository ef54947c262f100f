package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Runner is a mock implementation of launcher.Runner
type Runner struct {
	mock.Mock
}

func (m *Runner) Start(dir, bin string, args ...string) error {
	callArgs := m.Called(dir, bin, args)
	return callArgs.Error(0)
}

// Opener is a mock implementation of launcher.Opener
type Opener struct {
	mock.Mock
}

func (m *Opener) Open(uri string) error {
	args := m.Called(uri)
	return args.Error(0)
}

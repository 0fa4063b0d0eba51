package dataset

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	mock.Mock
}

var _ Provider = &MockProvider{} // Compile-time check

// Load implements the Provider interface.
func (m *MockProvider) Load(ctx context.Context, name string) (*Dataset, error) {
	ret := m.Called(ctx, name)
	ds, _ := ret.Get(0).(*Dataset)
	return ds, ret.Error(1)
}

package mocks

// MockedRegistry aggregates the newsletter and bulk registry mocks into
// a single backend that satisfies routes.Registry. Tests reach the
// recorders through the embedded mocks, e.g. MockNewsletterRegistry.EXPECT().
type MockedRegistry struct {
	*MockNewsletterRegistry
	*MockBulkRegistry
}

func NewMockedRegistry(nr *MockNewsletterRegistry, br *MockBulkRegistry) *MockedRegistry {
	return &MockedRegistry{
		MockNewsletterRegistry: nr,
		MockBulkRegistry:       br,
	}
}

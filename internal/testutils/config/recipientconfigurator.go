package config_test

// TestPreviewRecipient is the inbox mocked worker scenarios send
// previews to.
const TestPreviewRecipient = "reviews@pitchside.test"

type TestRecipientConfigurator struct{}

func (cfg TestRecipientConfigurator) GetPreviewRecipient() (string, error) {
	return TestPreviewRecipient, nil
}

func NewTestRecipientConfigurator() TestRecipientConfigurator {
	return TestRecipientConfigurator{}
}

package email

import (
	"context"
	"errors"
	"sync"
)

type MockCall struct {
	To      string
	Subject string
	Body    string
}

// MockClient records sends instead of delivering, for tests and local
// development.
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// FailNext makes the next Send return an error, then resets.
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockClient) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{To: to, Subject: subject, Body: body})

	if m.FailNext {
		m.FailNext = false
		return errors.New("mock email send failure")
	}

	return nil
}

package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClientRecordsSends(t *testing.T) {
	m := NewMockClient()

	err := m.Send(context.Background(), "owner@acmeclinic.com", "Your code", "123456")
	require.NoError(t, err)

	require.Len(t, m.Calls, 1)
	assert.Equal(t, "owner@acmeclinic.com", m.Calls[0].To)
	assert.Equal(t, "Your code", m.Calls[0].Subject)
	assert.Equal(t, "123456", m.Calls[0].Body)
}

func TestMockClientFailNext(t *testing.T) {
	m := NewMockClient()
	m.FailNext = true

	err := m.Send(context.Background(), "owner@acmeclinic.com", "Your code", "123456")
	assert.Error(t, err)

	// The failure is one-shot and the attempt is still recorded.
	err = m.Send(context.Background(), "owner@acmeclinic.com", "Your code", "654321")
	assert.NoError(t, err)
	assert.Len(t, m.Calls, 2)
}

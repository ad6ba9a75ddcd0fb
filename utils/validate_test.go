package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"owner@acmeclinic.com", "a.b+tag@sub.domain.org"}
	invalid := []string{"", "plainaddress", "@no-local.com", "user@", "user@domain", "user @spaces.com"}

	for _, e := range valid {
		assert.True(t, ValidateEmail(e), "expected valid: %s", e)
	}
	for _, e := range invalid {
		assert.False(t, ValidateEmail(e), "expected invalid: %s", e)
	}
}

func TestValidateZip(t *testing.T) {
	assert.True(t, ValidateZip("62704"))
	assert.True(t, ValidateZip("62704-1234"))

	for _, z := range []string{"", "1234", "123456", "62704-123", "abcde", "62704 1234"} {
		assert.False(t, ValidateZip(z), "expected invalid: %s", z)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"5551234567", "555-123-4567", "(555) 123-4567", "+1 555 123 4567", "1-555-123-4567"}
	invalid := []string{"", "555-1234", "555-123-4567x89", "phone", "555123456789"}

	for _, p := range valid {
		assert.True(t, ValidatePhone(p), "expected valid: %s", p)
	}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), "expected invalid: %s", p)
	}
}

func TestIsImageMIME(t *testing.T) {
	assert.True(t, IsImageMIME("image/jpeg"))
	assert.True(t, IsImageMIME(" IMAGE/PNG "))
	assert.False(t, IsImageMIME("application/pdf"))
	assert.False(t, IsImageMIME(""))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "ja***@example.com", RedactEmail("jane.doe@example.com"))
	assert.Equal(t, "***@example.com", RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-email"))
}

func TestRedactPhone(t *testing.T) {
	assert.Equal(t, "********78", RedactPhone("0812345678"))
	assert.Equal(t, "**", RedactPhone("9"))
}

func TestRedactPIIValue(t *testing.T) {
	assert.Equal(t, "ja***@example.com", redactPIIValue("email", "jane@example.com"))
	assert.Equal(t, "******21", redactPIIValue("phone", "66812321"))
	// Emails embedded in free-form fields are still masked
	assert.Equal(t, "duplicate for ja***@example.com", redactPIIValue("detail", "duplicate for jane@example.com"))
}

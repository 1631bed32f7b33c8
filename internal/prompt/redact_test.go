package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactPII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "email",
			in:   "reach me at priya.sharma@example.com please",
			want: "reach me at [EMAIL] please",
		},
		{
			name: "international phone",
			in:   "call +91 98765 43210 tomorrow",
			want: "call [PHONE] tomorrow",
		},
		{
			name: "dashed phone",
			in:   "my number is 415-555-0123",
			want: "my number is [PHONE]",
		},
		{
			name: "years and short numbers stay",
			in:   "I studied from 2019-2023 and scored 8.5 CGPA",
			want: "I studied from 2019-2023 and scored 8.5 CGPA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactPII(tt.in))
		})
	}
}

func TestContainsPII(t *testing.T) {
	assert.True(t, ContainsPII("a@b.co"))
	assert.True(t, ContainsPII("9876543210"))
	assert.False(t, ContainsPII("Go, SQL and Docker"))
}

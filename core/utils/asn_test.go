package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseASN(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"64500", 64500, false},
		{"AS64500", 64500, false},
		{"as64500", 64500, false},
		{" AS4200000000 ", 4200000000, false},
		{"0", 0, true},
		{"AS", 0, true},
		{"AS-FOO", 0, true},
		{"4294967296", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseASN(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatASN(t *testing.T) {
	assert.Equal(t, "AS64500", FormatASN(64500))
}

func TestTrimASPrefix(t *testing.T) {
	assert.Equal(t, "64500", TrimASPrefix("AS64500"))
	assert.Equal(t, "64500", TrimASPrefix("aS64500"))
	assert.Equal(t, "64500", TrimASPrefix("64500"))
	assert.Equal(t, "A", TrimASPrefix("A"))
}

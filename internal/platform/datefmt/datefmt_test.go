package datefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"date", "2024-03-05", "05/03/2024"},
		{"timestamp", "2024-03-05 14:22:01", "05/03/2024"},
		{"timestamp fractional", "2024-03-05 14:22:01.123456", "05/03/2024"},
		{"timestamptz short offset", "2024-03-05 14:22:01-03", "05/03/2024"},
		{"timestamptz full offset", "2024-03-05 14:22:01+05:30", "05/03/2024"},
		{"rfc3339", "2024-03-05T14:22:01Z", "05/03/2024"},
		{"already formatted", "05/03/2024", "05/03/2024"},
		{"garbage keeps raw", "fecha pendiente", "fecha pendiente"},
		{"empty keeps empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.raw))
		})
	}
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Gophers", "gophers"},
		{"single space", "Dev Guild", "dev-guild"},
		{"trailing space keeps hyphen", "Dev Guild ", "dev-guild-"},
		{"leading space keeps hyphen", " Dev Guild", "-dev-guild"},
		{"whitespace run collapses", "Dev   Guild", "dev-guild"},
		{"tabs and newlines", "Dev\t\nGuild", "dev-guild"},
		{"already lower", "gophers united", "gophers-united"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("gopher01"))
	assert.True(t, IsValidUsername("abc"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername("way.too.fancy"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("hunter2a"))
	assert.False(t, IsValidPassword("no"))
	assert.False(t, IsValidPassword("with-dash"))
}

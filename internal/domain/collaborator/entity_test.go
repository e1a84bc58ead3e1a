package collaborator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMarried(t *testing.T) {
	tests := []struct {
		civilStatus string
		want        bool
	}{
		{"marié", true},
		{"Marié(e)", true},
		{"married", true},
		{"Verheiratet", true},
		{"célibataire", false},
		{"single", false},
		{"divorcé", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.civilStatus, func(t *testing.T) {
			c := Collaborator{CivilStatus: tt.civilStatus}
			assert.Equal(t, tt.want, c.IsMarried())
		})
	}
}

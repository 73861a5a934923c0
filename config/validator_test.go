package config

import (
	"testing"

	"github.com/grovetools/juju-prompt/juju"
	"github.com/stretchr/testify/assert"
)

func TestValidateModule(t *testing.T) {
	tests := []struct {
		name      string
		table     map[string]interface{}
		wantError bool
		errorMsg  string
	}{
		{
			name:  "empty table",
			table: map[string]interface{}{},
		},
		{
			name: "all keys",
			table: map[string]interface{}{
				"format":   "[$version]($style)",
				"symbol":   "J ",
				"style":    "bold",
				"disabled": true,
			},
		},
		{
			name:      "unknown key",
			table:     map[string]interface{}{"colour": "red"},
			wantError: true,
			errorMsg:  "colour",
		},
		{
			name:      "wrong type",
			table:     map[string]interface{}{"disabled": "yes"},
			wantError: true,
			errorMsg:  "/disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateModule("juju", tt.table, &juju.Config{})
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) && tt.errorMsg != "" {
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}

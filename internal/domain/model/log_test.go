package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	entry := &LogEntry{ActionType: ActionRecordPothole}

	entry.WithField("job_id", "abc").WithField("materials_kg", 100.0)

	assert.Equal(t, "abc", entry.Fields["job_id"])
	assert.Equal(t, 100.0, entry.Fields["materials_kg"])
}

func TestLogEntry_WithFields(t *testing.T) {
	tests := []struct {
		name     string
		entry    *LogEntry
		fields   map[string]interface{}
		expected map[string]interface{}
	}{
		{
			name:     "initializes nil map",
			entry:    &LogEntry{},
			fields:   map[string]interface{}{"company": "Bombela"},
			expected: map[string]interface{}{"company": "Bombela"},
		},
		{
			name:     "overwrites existing keys",
			entry:    &LogEntry{Fields: map[string]interface{}{"company": "Bombela", "bags": 2}},
			fields:   map[string]interface{}{"company": "Unamusa"},
			expected: map[string]interface{}{"company": "Unamusa", "bags": 2},
		},
		{
			name:     "empty input keeps entry unchanged",
			entry:    &LogEntry{Fields: map[string]interface{}{"bags": 2}},
			fields:   map[string]interface{}{},
			expected: map[string]interface{}{"bags": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.WithFields(tt.fields)
			assert.Equal(t, tt.expected, tt.entry.Fields)
		})
	}
}

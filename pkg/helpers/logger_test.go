package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"development", "development", "", logrus.DebugLevel, false},
		{"production", "production", "", logrus.InfoLevel, true},
		{"override", "production", "warn", logrus.WarnLevel, true},
		{"bad override keeps default", "production", "loud", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, "app", tt.env, tt.level)
			assert.Equal(t, tt.wantLevel, l.GetLevel())
			_, isJSON := l.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "app", "production", "")
	buf.Reset()

	LogError(l, "request failed", errors.New("db down"), logrus.Fields{"request_id": "r1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "db down", entry["error"])
	assert.Equal(t, "r1", entry["request_id"])
}

func TestLogInfo_NilFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "app", "production", "")
	buf.Reset()

	LogInfo(l, "started", nil)
	assert.Contains(t, buf.String(), `"msg":"started"`)
}

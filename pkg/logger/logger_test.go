package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	l := NewLogger()
	buf := new(bytes.Buffer)
	l.SetOutput(buf)
	require.NoError(t, l.SetFormat(FormatJSON))
	return l, buf
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newTestLogger(t)
	require.NoError(t, l.SetLevel("warn"))
	assert.Equal(t, "warning", l.Level())

	l.Debug("hidden")
	l.Info("hidden")
	l.Warnf("removed %d keys", 3)
	l.Error("boom")

	lines := decode(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warning", lines[0]["level"])
	assert.Equal(t, "removed 3 keys", lines[0]["msg"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["msg"])
}

func TestLogger_TraceLevel(t *testing.T) {
	l, buf := newTestLogger(t)
	require.NoError(t, l.SetLevel("trace"))
	l.Trace("walk")
	l.Tracef("walk %s", "again")
	l.Debugf("depth=%d", 4)
	lines := decode(t, buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "trace", lines[0]["level"])
	assert.Equal(t, "walk again", lines[1]["msg"])
	assert.Equal(t, "debug", lines[2]["level"])
}

func TestLogger_SetLevelInvalid(t *testing.T) {
	l := NewLogger()
	assert.Error(t, l.SetLevel("loud"))
	assert.Equal(t, "info", l.Level())
}

func TestLogger_SetFormatInvalid(t *testing.T) {
	l := NewLogger()
	assert.Error(t, l.SetFormat("xml"))
	assert.NoError(t, l.SetFormat("TEXT"))
}

func TestLogger_PrintFuncAndFile(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetPrintFunc(true)
	l.SetPrintFile(true)
	l.Info("located")
	lines := decode(t, buf)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0]["func"], "TestLogger_PrintFuncAndFile")
	assert.Contains(t, lines[0]["file"], "logger_test.go:")
}

func TestLogger_Panic(t *testing.T) {
	l, buf := newTestLogger(t)
	assert.Panics(t, func() {
		l.Panicf("bad %s", "state")
	})
	lines := decode(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "panic", lines[0]["level"])
}

func TestLogger_Entry(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Entry("bstree").Info("hello")
	lines := decode(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "bstree", lines[0]["component"])
}

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against the test directory's config and
// database, returning combined output. Repeated calls against the same dir
// share one database.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	full := []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "kindling.db"),
	}
	cmd.SetArgs(append(full, args...))

	err := cmd.Execute()
	return buf.String(), err
}

// devConfig writes a development-mode config into dir.
func devConfig(t *testing.T, dir string) {
	t.Helper()
	content := "db_path: " + filepath.Join(dir, "kindling.db") + "\nmode: development\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

// decodeResponse parses a JSON-format CLI response.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

// TestRoot_InvalidFormat tests that unknown output formats are rejected
// before any command runs.
func TestRoot_InvalidFormat(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "--format", "xml", "history")
	assert.Error(t, err)
}

// TestAdd_AppearsInHistory tests the add-then-list flow.
func TestAdd_AppearsInHistory(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "add", "a1", "--title", "Go maps in action")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--format", "json", "history")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)

	records, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, records, 1)
	rec := records[0].(map[string]interface{})
	assert.Equal(t, "a1", rec["article_id"])
	assert.Equal(t, "Go maps in action", rec["article_title"])
	assert.Equal(t, false, rec["is_read"])
}

// TestRead_UpdatesStreakAndTags tests that a read credits the streak for its
// day and counts its tags.
func TestRead_UpdatesStreakAndTags(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "add", "a1")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "read", "a1",
		"--day", "2026-08-25", "--tags", "go,databases",
		"--now", "2026-08-25T08:00:00Z")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--format", "json", "streak", "--today", "2026-08-25")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["streak"])

	out, err = runCLI(t, dir, "--format", "json", "tags")
	require.NoError(t, err)
	resp = decodeResponse(t, out)
	tags := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), tags["go"])
	assert.Equal(t, float64(1), tags["databases"])
}

// TestDelay_CapacityRefused tests that a third delay is refused with exit
// code 1 and leaves the backlog untouched.
func TestDelay_CapacityRefused(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "delay", "a1", "--day", "2026-08-25", "--now", "2026-08-25T08:00:00Z")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "delay", "a2", "--day", "2026-08-25", "--now", "2026-08-25T09:00:00Z")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "delay", "a3", "--day", "2026-08-25", "--now", "2026-08-25T10:00:00Z")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "BACKLOG_FULL")

	out, err = runCLI(t, dir, "--format", "json", "backlog")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	entries := resp.Data.([]interface{})
	assert.Len(t, entries, 2)
}

// TestDelay_Duplicate tests the ALREADY_DELAYED refusal.
func TestDelay_Duplicate(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "delay", "a1", "--day", "2026-08-25", "--now", "2026-08-25T08:00:00Z")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "delay", "a1", "--day", "2026-08-25", "--now", "2026-08-25T09:00:00Z")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "ALREADY_DELAYED")
}

// TestSweep_RemovesExpired tests that sweep drops entries two calendar days
// old and reports them.
func TestSweep_RemovesExpired(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "delay", "a1", "--day", "2026-08-25", "--now", "2026-08-25T08:00:00Z")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--format", "json", "sweep", "--now", "2026-08-27T08:00:00Z")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]interface{})
	removed := data["removed"].([]interface{})
	require.Len(t, removed, 1)
	assert.Equal(t, "a1", removed[0])

	out, err = runCLI(t, dir, "--format", "json", "backlog")
	require.NoError(t, err)
	resp = decodeResponse(t, out)
	assert.Empty(t, resp.Data)
}

// TestUnread_RefusedInProduction tests the NOT_PERMITTED refusal under the
// default mode.
func TestUnread_RefusedInProduction(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "add", "a1")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "unread", "a1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "NOT_PERMITTED")
}

// TestUnread_DevelopmentMode tests that development mode permits clearing
// read state.
func TestUnread_DevelopmentMode(t *testing.T) {
	dir := t.TempDir()
	devConfig(t, dir)

	_, err := runCLI(t, dir, "add", "a1")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "read", "a1", "--day", "2026-08-25", "--now", "2026-08-25T08:00:00Z")
	require.NoError(t, err)

	_, err = runCLI(t, dir, "unread", "a1")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--format", "json", "history")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	rec := resp.Data.([]interface{})[0].(map[string]interface{})
	assert.Equal(t, false, rec["is_read"])
}

// TestLog_RecordsMutations tests that the journal lists operations in order.
func TestLog_RecordsMutations(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "add", "a1")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "read", "a1", "--day", "2026-08-25", "--now", "2026-08-25T08:00:00Z")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--format", "json", "log")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	events := resp.Data.([]interface{})
	require.Len(t, events, 2)
	first := events[0].(map[string]interface{})
	second := events[1].(map[string]interface{})
	assert.Equal(t, "add_to_history", first["op"])
	assert.Equal(t, "mark_read", second["op"])
}

// TestBacklogRemove_NoOp tests that removing an absent entry succeeds
// quietly.
func TestBacklogRemove_NoOp(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "backlog", "remove", "ghost")
	assert.NoError(t, err)
}

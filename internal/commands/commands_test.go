package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "fintrack-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "fintrack")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/fintrack")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runFintrack(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, append([]string{"--dir", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func initDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runFintrack(t, dir, "init")
	require.NoError(t, err, out)
	return dir
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	out, err := runFintrack(t, dir, "init")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Initialized fintrack at "+dir)

	_, err = os.Stat(filepath.Join(dir, "fintrack.yaml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "fintrack.db"))
	require.NoError(t, err)

	// A second init refuses to overwrite.
	out, err = runFintrack(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, out, "already initialized")
}

func TestTxAddAndList(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "tx", "add",
		"--type", "expense", "--amount", "12.50", "--category", "Food & Dining",
		"--date", "2024-03-01", "--description", "lunch")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added expense 12.50 (Food & Dining) on 2024-03-01")

	out, err = runFintrack(t, dir, "tx", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "lunch")
	assert.Contains(t, out, "-$12.50")

	out, err = runFintrack(t, dir, "tx", "list", "--type", "income")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No transactions found matching your filters.")
}

func TestTxAdd_RejectsBadCategory(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "tx", "add",
		"--type", "income", "--amount", "100", "--category", "Food & Dining")
	require.Error(t, err)
	assert.Contains(t, out, "category")
}

func TestBudget_DuplicateRejected(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "budget", "add",
		"--category", "Travel", "--amount", "300", "--start", "2024-01-01")
	require.NoError(t, err, out)

	out, err = runFintrack(t, dir, "budget", "add",
		"--category", "Travel", "--amount", "500", "--start", "2024-02-01")
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}

func TestBillPay(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "bill", "add",
		"--name", "Rent", "--amount", "800", "--category", "Bills & Utilities",
		"--due", "2099-01-01")
	require.NoError(t, err, out)
	id := extractID(t, out)

	out, err = runFintrack(t, dir, "bill", "pay", id)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Bill paid: recorded expense")

	out, err = runFintrack(t, dir, "bill", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No bills added")

	out, err = runFintrack(t, dir, "tx", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Payment for Rent")
}

func TestReport_EmptyPeriod(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "report", "--period", "month")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No transactions found for the selected period")
}

func TestExportImport(t *testing.T) {
	dir := initDir(t)
	out, err := runFintrack(t, dir, "tx", "add",
		"--type", "income", "--amount", "1000", "--category", "Salary",
		"--date", "2024-03-05")
	require.NoError(t, err, out)

	file := filepath.Join(t.TempDir(), "backup.json")
	out, err = runFintrack(t, dir, "export", "--out", file)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Exported data to "+file)

	// Import into a fresh directory.
	dir2 := initDir(t)
	out, err = runFintrack(t, dir2, "import", file)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 1 transactions, 0 budgets, 0 goals, 0 bills")

	out, err = runFintrack(t, dir2, "tx", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Salary")
}

func TestImport_BadFile(t *testing.T) {
	dir := initDir(t)
	file := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(file, []byte("not json"), 0o644))

	out, err := runFintrack(t, dir, "import", file)
	require.Error(t, err)
	assert.Contains(t, out, "invalid import format")
}

func TestClear_RequiresForce(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "clear")
	require.Error(t, err)
	assert.Contains(t, out, "--force")

	out, err = runFintrack(t, dir, "clear", "--force")
	require.NoError(t, err, out)
	assert.Contains(t, out, "All data cleared")
}

func TestLoginProfileLogout(t *testing.T) {
	dir := initDir(t)

	out, err := runFintrack(t, dir, "login", "--email", "me@example.com", "--name", "Me")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Logged in as Me <me@example.com>")

	out, err = runFintrack(t, dir, "profile")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Me <me@example.com>")

	out, err = runFintrack(t, dir, "profile", "--name", "New Name")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Profile updated: New Name <me@example.com>")

	out, err = runFintrack(t, dir, "logout")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Logged out")

	out, err = runFintrack(t, dir, "profile")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Not logged in")
}

// extractID pulls the bracketed record ID from a command's confirmation line.
func extractID(t *testing.T, out string) string {
	t.Helper()
	start := strings.LastIndex(out, "[")
	end := strings.LastIndex(out, "]")
	require.True(t, start >= 0 && end > start, "no ID in output: %s", out)
	return out[start+1 : end]
}

// cmd/tunectl/cmd/root_test.go
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/drivecfg/internal/wire"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func tuningFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "driverconf.txt")
}

func TestShow_DefaultsWhenFileMissing(t *testing.T) {
	out, err := run(t, "-f", tuningFile(t), "show")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 14)
	assert.Contains(t, lines[0], "NAME")
	assert.Equal(t, []string{"speed_limit", "3.00", "300", "3.00"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"servo_min", "-1.00", "-100", "-1.00"}, strings.Fields(lines[12]))
}

func TestSetGet(t *testing.T) {
	path := tuningFile(t)

	_, err := run(t, "-f", path, "set", "speed_limit", "4.5")
	require.NoError(t, err)
	_, err = run(t, "-f", path, "set", "servo_min", "--raw", "--", "-120")
	require.NoError(t, err)

	out, err := run(t, "-f", path, "get", "speed_limit")
	require.NoError(t, err)
	assert.Equal(t, "4.50\n", out)

	out, err = run(t, "-f", path, "get", "--raw", "servo_min")
	require.NoError(t, err)
	assert.Equal(t, "-120\n", out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "speed_limit          450\n")
}

func TestSet_UnknownParam(t *testing.T) {
	path := tuningFile(t)
	_, err := run(t, "-f", path, "set", "foo", "1")
	require.ErrorContains(t, err, "unknown parameter")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing saved")
}

func TestNudge(t *testing.T) {
	path := tuningFile(t)

	out, err := run(t, "-f", path, "nudge", "servo_offset", "down")
	require.NoError(t, err)
	assert.Equal(t, "servo offset -0.01\n", out)

	out, err = run(t, "-f", path, "nudge", "servo_offset", "up", "--step", "y")
	require.NoError(t, err)
	assert.Equal(t, "servo offset 0.99\n", out)

	_, err = run(t, "-f", path, "nudge", "servo_offset", "sideways")
	require.Error(t, err)
}

func TestReset(t *testing.T) {
	path := tuningFile(t)
	require.NoError(t, os.WriteFile(path, []byte("speed_limit 1\n"), 0o644))

	_, err := run(t, "-f", path, "reset")
	require.NoError(t, err)

	out, err := run(t, "-f", path, "get", "--raw", "speed_limit")
	require.NoError(t, err)
	assert.Equal(t, "300\n", out)
}

func TestFrameDecode(t *testing.T) {
	path := tuningFile(t)
	require.NoError(t, os.WriteFile(path, []byte("throttle_bias 25\n"), 0o644))

	framePath := filepath.Join(t.TempDir(), "params.bin")
	_, err := run(t, "-f", path, "frame", "-o", framePath)
	require.NoError(t, err)

	data, err := os.ReadFile(framePath)
	require.NoError(t, err)
	require.Len(t, data, wire.Size(13))
	assert.Equal(t, "cfg1", string(data[:4]))

	out, err := run(t, "-f", tuningFile(t), "decode", framePath)
	require.NoError(t, err)
	assert.Contains(t, out, "throttle_bias")
	assert.Regexp(t, `throttle_bias\s+0\.25\s+25\s+0\.00`, out)
}

func TestFrame_HexDump(t *testing.T) {
	out, err := run(t, "-f", tuningFile(t), "frame")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "00000000  63 66 67 31 22 00 00 00"))
}

func TestDecode_BadFrame(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(bad, []byte("nope1234"), 0o644))

	_, err := run(t, "-f", tuningFile(t), "decode", bad)
	require.ErrorIs(t, err, wire.ErrBadTag)
}

func TestDecode_IgnoresTuningFile(t *testing.T) {
	framePath := filepath.Join(t.TempDir(), "params.bin")
	_, err := run(t, "-f", tuningFile(t), "frame", "-o", framePath)
	require.NoError(t, err)

	// a directory cannot be read as a tuning file
	unreadable := t.TempDir()
	_, err = run(t, "-f", unreadable, "show")
	require.Error(t, err)

	out, err := run(t, "-f", unreadable, "decode", framePath)
	require.NoError(t, err)
	assert.Regexp(t, `speed_limit\s+3\.00\s+300`, out)
}

func TestShow_OverlongLineDoesNotBlockReset(t *testing.T) {
	path := tuningFile(t)
	body := "speed_limit 11\n" + strings.Repeat("x", 70000) + " 1\nservo_max 33\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := run(t, "-f", path, "get", "--raw", "servo_max")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)

	_, err = run(t, "-f", path, "reset")
	require.NoError(t, err)
	out, err = run(t, "-f", path, "get", "--raw", "speed_limit")
	require.NoError(t, err)
	assert.Equal(t, "300\n", out)
}

func TestExport(t *testing.T) {
	out, err := run(t, "-f", tuningFile(t), "export", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, `tag = "cfg1"`)
	assert.Contains(t, out, "[[params]]")
}

func TestPush_RequiresCompanion(t *testing.T) {
	_, err := run(t, "-f", tuningFile(t), "push")
	require.ErrorIs(t, err, errNoCompanion)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	tuning := filepath.Join(dir, "car.txt")
	require.NoError(t, os.WriteFile(tuning, []byte("black_thresh 55\n"), 0o644))

	cfgPath := filepath.Join(dir, "drivecfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("tuning:\n  path: "+tuning+"\nlog:\n  level: error\n"), 0o644))

	out, err := run(t, "-c", cfgPath, "get", "--raw", "black_thresh")
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)

	badCfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badCfg, []byte("companion:\n  unit_id: 1\n"), 0o644))
	_, err = run(t, "-c", badCfg, "show")
	require.ErrorContains(t, err, "config validation failed")
}

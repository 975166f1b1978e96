package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/chisquare-gof/common"
	"go.uber.org/zap/zaptest"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(zaptest.NewLogger(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var exampleArgs = []string{
	"--upper", "2,4,6,8,10",
	"--observed", "18,22,25,20,15",
	"--expected", "20,20,20,20,20",
}

func TestTestCommandText(t *testing.T) {
	out, err := runCLI(t, append([]string{"test", "--alpha", "0.05", "--chart"}, exampleArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Chi-Square Statistic: χ² = 2.90")
	assert.Contains(t, out, "degrees of freedom = 4")
	assert.Contains(t, out, "Conclusion: Fail to reject the null hypothesis.")
	assert.Contains(t, out, "Observed Frequency")
}

func TestTestCommandJSON(t *testing.T) {
	out, err := runCLI(t, append([]string{"test", "--format", "json", "--strategy", "table"}, exampleArgs...)...)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 9.488, res["critical_value"])
	assert.Equal(t, 0.05, res["alpha"], "alpha falls back to the config default")
	assert.Equal(t, false, res["reject_null"])
}

func TestTestCommandErrors(t *testing.T) {
	_, err := runCLI(t, "test", "--upper", "1,2", "--observed", "1,x", "--expected", "1,1")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
	assert.Equal(t, ExitInvalidInput, exitCode(err))

	_, err = runCLI(t, "test", "--upper", "1,2", "--observed", "1,1", "--expected", "0,1")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = runCLI(t, append([]string{"test", "--format", "xml"}, exampleArgs...)...)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = runCLI(t, append([]string{"test", "--strategy", "table", "--alpha", "0.07"}, exampleArgs...)...)
	assert.ErrorIs(t, err, common.ErrorQuantileUnavailable)
	assert.Equal(t, ExitError, exitCode(err))
}

func TestCriticalCommand(t *testing.T) {
	out, err := runCLI(t, "critical", "--alpha", "0.05", "--dof", "4", "--strategy", "table")
	require.NoError(t, err)
	assert.Equal(t, "9.488", strings.TrimSpace(out))

	out, err = runCLI(t, "critical", "--alpha", "0.07", "--dof", "250")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	_, err = runCLI(t, "critical", "--alpha", "0.05", "--dof", "0")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chisq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quantile:\n  strategy: table\nalpha: 0.01\n"), 0o600))

	out, err := runCLI(t, "--config", path, "critical", "--dof", "4")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%v", 13.277), strings.TrimSpace(out))
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ingonyama-zk/sppark/config"
	"github.com/ingonyama-zk/sppark/ntt"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, env := range []string{config.NPowEnvVar, config.ArithNPowEnvVar, ntt.BackendEnvVar} {
		t.Setenv(env, "")
	}
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestBackends(t *testing.T) {
	out, err := execute(t, Backends())
	require.NoError(t, err)
	require.Contains(t, out, "pure")
	require.Contains(t, out, ntt.BackendInfo("pure"))
}

func TestNTTCommand(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, NTT(), "--npow=5", "--iterations=2", "--backend=pure", "--order=NR")
	require.NoError(t, err)
}

func TestNTTCommand_InvalidDevice(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, NTT(), "--npow=3", "--device=4", "--backend=pure")
	require.ErrorIs(t, err, ntt.ErrDeviceCompute)
}

func TestNTTCommand_UnknownBackend(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, NTT(), "--npow=3", "--backend=fpga")
	require.ErrorIs(t, err, ntt.ErrUnknownBackend)
}

func TestNTTCommand_EnvNPow(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.NPowEnvVar, "40")

	_, err := execute(t, NTT())
	require.ErrorIs(t, err, config.ErrNPowTooLarge)
}

func TestArithCommand(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, Arith(), "--arith-npow=2")
	require.NoError(t, err)
}

func TestGenerateCommand(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, Generate(), "--npow=4", "--with-points")
	require.NoError(t, err)
}

func TestGenerateCommand_Profile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	_, err := execute(t, Generate(), "--npow=3", "--profile-dir="+dir)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "gen.cpu.pprof"))
	require.FileExists(t, filepath.Join(dir, "gen.heap.pprof"))
}

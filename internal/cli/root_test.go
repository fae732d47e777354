package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "santa", cmd.Use)
	assert.Contains(t, cmd.Long, "gives to themselves")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"roster", "draw", "check", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	storeFlag := cmd.PersistentFlags().Lookup("store")
	require.NotNil(t, storeFlag)
	assert.Equal(t, StoreMemory, storeFlag.DefValue)
}

func TestDrawCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	drawCmd, _, err := cmd.Find([]string{"draw"})
	require.NoError(t, err)

	outputFlag := drawCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "Secret-Santa-Assignments.xlsx", outputFlag.DefValue)

	attemptsFlag := drawCmd.Flags().Lookup("attempts")
	require.NotNil(t, attemptsFlag)
	assert.Equal(t, "100", attemptsFlag.DefValue)

	require.NotNil(t, drawCmd.Flags().Lookup("seed"))
}

func TestRosterCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	rosterCmd, _, err := cmd.Find([]string{"roster"})
	require.NoError(t, err)

	require.NotNil(t, rosterCmd.Flags().Lookup("add"))
	require.NotNil(t, rosterCmd.Flags().Lookup("remove"))
}

func TestRootCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--format", "xml", "roster", "x.xlsx"}, "invalid format"},
		{"store", []string{"--store", "redis", "roster", "x.xlsx"}, "invalid store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

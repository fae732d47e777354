package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/santa/internal/core"
	"github.com/roach88/santa/internal/session"
)

func TestOutputFormatter_JSONReport(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Report(data, func(io.Writer) { t.Fatal("text renderer called in json mode") })
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_YAMLReport(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "yaml",
		Writer: buf,
	}

	err := formatter.Report(map[string]int{"participants": 3}, func(io.Writer) {})
	require.NoError(t, err)

	var resp struct {
		Status string         `yaml:"status"`
		Data   map[string]int `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Data["participants"])
}

func TestOutputFormatter_TextReport(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Report(nil, func(w io.Writer) {
		_, _ = io.WriteString(w, "plain output\n")
	})
	require.NoError(t, err)
	assert.Equal(t, "plain output\n", buf.String())
}

func TestOutputFormatter_JSONFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	n := session.Notice{
		Severity: core.SeverityError,
		Message:  session.MsgInsufficient,
		Err:      core.NewInsufficientParticipantsError(1),
	}
	require.NoError(t, formatter.Failure(n))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(core.ErrCodeInsufficientParticipants), resp.Error.Code)
	assert.Equal(t, session.MsgInsufficient, resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestOutputFormatter_FailureVerboseDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "json",
		Writer:  buf,
		Verbose: true,
	}

	n := session.Notice{Severity: core.SeverityError, Message: "boom", Err: errors.New("disk on fire")}
	require.NoError(t, formatter.Failure(n))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FAILED", resp.Error.Code)
	assert.Equal(t, "disk on fire", resp.Error.Details)
}

func TestOutputFormatter_TextFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	n := session.Notice{Severity: core.SeverityError, Message: session.MsgNothingToExport}
	require.NoError(t, formatter.Failure(n))
	assert.Contains(t, buf.String(), session.MsgNothingToExport)
}

func TestOutputFormatter_Tables(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	alice := core.Participant{Name: "Alice", Email: "alice@x.com"}
	bob := core.Participant{Name: "Bob", Email: "bob@x.com", SecretChildName: "Alice"}

	formatter.Participants(buf, []core.Participant{alice, bob})
	formatter.Assignments(buf, []core.Assignment{
		{Giver: alice, Receiver: bob, GiverIndex: 0, ReceiverIndex: 1},
	})

	out := buf.String()
	for _, want := range []string{"NAME", "EMAIL", "GIVER", "RECEIVER", "Alice", "bob@x.com"} {
		assert.Contains(t, out, want)
	}
}

func TestExitError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewExitError(ExitCommandError, "bad flags")
		assert.Equal(t, "bad flags", err.Error())
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.False(t, IsReported(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		inner := errors.New("no such file")
		err := WrapExitError(ExitCommandError, "failed to read roster file", inner)
		assert.Equal(t, "failed to read roster file: no such file", err.Error())
		assert.ErrorIs(t, err, inner)
	})

	t.Run("reported notice", func(t *testing.T) {
		n := session.Notice{Severity: core.SeverityError, Message: session.MsgEmptyImport, Err: core.NewEmptyResultError(2)}
		err := noticeError(n)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.True(t, IsReported(err))
		assert.True(t, core.IsEmptyResult(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, ExitFailure, GetExitCode(errors.New("x")))
	})
}

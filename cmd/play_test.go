package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

func TestPlayCmd_Defaults(t *testing.T) {
	wf := withMockWorkflow(t)
	wf.EXPECT().Play(mock.Anything, domain.PlayArgs{SolverArgs: defaultSolverArgs("words.txt")}).Return(nil).Once()

	_, err := executeCommand(t, newTestRootCmd(newPlayCmd), "play", "words.txt")
	require.NoError(t, err)
}

func TestPlayCmd_Flags(t *testing.T) {
	args := defaultSolverArgs("words.txt")
	args.Solutions = "answers.txt"
	args.Policy = m.PolicyMax
	args.Threads = 2
	args.UseCache = false
	args.CacheDir = "/tmp/rankings"

	wf := withMockWorkflow(t)
	wf.EXPECT().Play(mock.Anything, domain.PlayArgs{SolverArgs: args, Opening: "tree.json"}).Return(nil).Once()

	_, err := executeCommand(t, newTestRootCmd(newPlayCmd),
		"play", "words.txt",
		"-s", "answers.txt",
		"--policy", "max",
		"-p", "2",
		"--no-cache",
		"--cache-dir", "/tmp/rankings",
		"--opening", "tree.json",
	)
	require.NoError(t, err)
}

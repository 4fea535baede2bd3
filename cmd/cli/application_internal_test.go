package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

const (
	testFixtureFileNameConstant      = "tracked.txt"
	testFixtureFileContentConstant   = "content\n"
	testFixtureCommitMessageConstant = "initial commit"
	testFixtureAuthorNameConstant    = "git2bridge tests"
	testFixtureAuthorEmailConstant   = "git2bridge@example.com"
	testInvalidLogLevelConstant      = "invalid"
	testMissingRepositoryConstant    = "missing-repository"
	testInspectCommandNameConstant   = "inspect"
	testLogLevelFlagConstant         = "--log-level"
	testLocalFlagConstant            = "--local"
	testUpstreamFlagConstant         = "--upstream"
)

func createCommittedFixture(testInstance *testing.T) (string, plumbing.Hash, plumbing.Hash) {
	testInstance.Helper()

	repositoryPath := testInstance.TempDir()
	fixtureRepository, initializationError := gogit.PlainInit(repositoryPath, false)
	require.NoError(testInstance, initializationError)

	firstCommit := commitFixtureFile(testInstance, fixtureRepository, repositoryPath, testFixtureFileContentConstant)
	secondCommit := commitFixtureFile(testInstance, fixtureRepository, repositoryPath, testFixtureFileContentConstant+testFixtureFileContentConstant)
	return repositoryPath, firstCommit, secondCommit
}

func commitFixtureFile(testInstance *testing.T, fixtureRepository *gogit.Repository, repositoryPath string, fileContent string) plumbing.Hash {
	testInstance.Helper()

	writeError := os.WriteFile(filepath.Join(repositoryPath, testFixtureFileNameConstant), []byte(fileContent), 0o644)
	require.NoError(testInstance, writeError)

	worktree, worktreeError := fixtureRepository.Worktree()
	require.NoError(testInstance, worktreeError)

	_, addError := worktree.Add(testFixtureFileNameConstant)
	require.NoError(testInstance, addError)

	commitHash, commitError := worktree.Commit(testFixtureCommitMessageConstant, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  testFixtureAuthorNameConstant,
			Email: testFixtureAuthorEmailConstant,
			When:  time.Now(),
		},
	})
	require.NoError(testInstance, commitError)
	return commitHash
}

func TestApplicationRejectsInvalidLogLevel(testInstance *testing.T) {
	repositoryPath, _, _ := createCommittedFixture(testInstance)

	application := NewApplication()
	application.rootCommand.SetArgs([]string{testLogLevelFlagConstant, testInvalidLogLevelConstant, testInspectCommandNameConstant, repositoryPath})
	require.Error(testInstance, application.Execute())
}

func TestApplicationInspectsCommittedFixture(testInstance *testing.T) {
	repositoryPath, _, _ := createCommittedFixture(testInstance)

	application := NewApplication()
	application.rootCommand.SetArgs([]string{testInspectCommandNameConstant, repositoryPath})
	require.NoError(testInstance, application.Execute())
}

func TestApplicationReportsOpenFailure(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), testMissingRepositoryConstant)

	application := NewApplication()
	application.rootCommand.SetArgs([]string{testInspectCommandNameConstant, missingPath})
	require.Error(testInstance, application.Execute())
}

func TestApplicationRequiresBothDivergenceFlags(testInstance *testing.T) {
	repositoryPath, firstCommit, _ := createCommittedFixture(testInstance)

	application := NewApplication()
	application.rootCommand.SetArgs([]string{testInspectCommandNameConstant, repositoryPath, testLocalFlagConstant, firstCommit.String()})

	executionError := application.Execute()
	require.Error(testInstance, executionError)
	require.EqualError(testInstance, executionError, inspectErrorDivergencePairConstant)
}

func TestApplicationCountsDivergence(testInstance *testing.T) {
	repositoryPath, firstCommit, secondCommit := createCommittedFixture(testInstance)

	application := NewApplication()
	application.rootCommand.SetArgs([]string{
		testInspectCommandNameConstant,
		repositoryPath,
		testLocalFlagConstant,
		secondCommit.String(),
		testUpstreamFlagConstant,
		firstCommit.String(),
	})
	require.NoError(testInstance, application.Execute())
}

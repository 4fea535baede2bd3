package cli

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/git2bridge/internal/bridge"
)

const (
	inspectUseConstant                    = "inspect <repository-path>"
	inspectShortDescriptionConstant       = "Inspect a repository through the libgit2 boundary"
	inspectLongDescriptionConstant        = "inspect opens the repository with libgit2, reports bareness, working directory, HEAD branch, and working-tree status, and optionally counts divergence between two commits."
	inspectLocalFlagNameConstant          = "local"
	inspectLocalFlagUsageConstant         = "Hex object identifier of the local commit for divergence counting."
	inspectUpstreamFlagNameConstant       = "upstream"
	inspectUpstreamFlagUsageConstant      = "Hex object identifier of the upstream commit for divergence counting."
	inspectUntrackedFlagNameConstant      = "include-untracked"
	inspectUntrackedFlagUsageConstant     = "Count untracked files in the status summary."
	inspectErrorDivergencePairConstant    = "specify both --local and --upstream"
	loggerNotInitializedMessageConstant   = "logger not initialized"
	libraryInitErrorTemplateConstant      = "libgit2 initialization failed with code %d"
	openErrorTemplateConstant             = "opening repository %s failed with libgit2 code %d"
	headErrorTemplateConstant             = "resolving HEAD failed with libgit2 code %d"
	statusOptionsErrorTemplateConstant    = "initializing status options failed with libgit2 code %d"
	statusListErrorTemplateConstant       = "computing status failed with libgit2 code %d"
	aheadBehindErrorTemplateConstant      = "counting divergence failed with libgit2 code %d"
	objectIdentifierErrorTemplateConstant = "invalid object identifier %q: expected %d hexadecimal characters"
	repositoryOpenedMessageConstant       = "repository opened"
	workdirResolvedMessageConstant        = "working directory resolved"
	headResolvedMessageConstant           = "HEAD resolved"
	unbornHeadMessageConstant             = "repository has no commits yet"
	statusComputedMessageConstant         = "status computed"
	divergenceMessageConstant             = "divergence counted"
	logFieldPathConstant                  = "path"
	logFieldBareConstant                  = "bare"
	logFieldWorkdirConstant               = "workdir"
	logFieldBranchConstant                = "branch"
	logFieldEntryCountConstant            = "entry_count"
	logFieldAheadConstant                 = "ahead"
	logFieldBehindConstant                = "behind"
)

// InspectCommandBuilder assembles the inspect command.
type InspectCommandBuilder struct {
	LoggerProvider        func() *zap.Logger
	ConfigurationProvider func() InspectConfiguration
}

// Build constructs the inspect command.
func (builder *InspectCommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   inspectUseConstant,
		Short: inspectShortDescriptionConstant,
		Long:  inspectLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(inspectLocalFlagNameConstant, "", inspectLocalFlagUsageConstant)
	command.Flags().String(inspectUpstreamFlagNameConstant, "", inspectUpstreamFlagUsageConstant)
	command.Flags().Bool(inspectUntrackedFlagNameConstant, false, inspectUntrackedFlagUsageConstant)

	return command
}

func (builder *InspectCommandBuilder) run(command *cobra.Command, arguments []string) error {
	repositoryPath := arguments[0]

	logger := builder.LoggerProvider()
	if logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	inspectConfiguration := builder.ConfigurationProvider()
	if command.Flags().Changed(inspectUntrackedFlagNameConstant) {
		inspectConfiguration.IncludeUntracked, _ = command.Flags().GetBool(inspectUntrackedFlagNameConstant)
	}

	localValue, _ := command.Flags().GetString(inspectLocalFlagNameConstant)
	upstreamValue, _ := command.Flags().GetString(inspectUpstreamFlagNameConstant)
	if (len(localValue) > 0) != (len(upstreamValue) > 0) {
		return errors.New(inspectErrorDivergencePairConstant)
	}

	if initializationCode := bridge.Init(); initializationCode < 0 {
		return fmt.Errorf(libraryInitErrorTemplateConstant, initializationCode)
	}
	defer bridge.Shutdown()

	repositoryHandle, openCode := bridge.OpenRepository(repositoryPath)
	if openCode != bridge.ErrorCodeOK {
		return fmt.Errorf(openErrorTemplateConstant, repositoryPath, openCode)
	}
	defer repositoryHandle.Free()

	logger.Info(
		repositoryOpenedMessageConstant,
		zap.String(logFieldPathConstant, repositoryPath),
		zap.Bool(logFieldBareConstant, repositoryHandle.IsBare() != 0),
	)

	if workdirValue := repositoryHandle.Workdir(); !workdirValue.IsNull() {
		logger.Info(workdirResolvedMessageConstant, zap.String(logFieldWorkdirConstant, workdirValue.String()))
	}

	if headError := reportHead(logger, repositoryHandle); headError != nil {
		return headError
	}

	statusEntryCount, statusError := computeStatusEntryCount(repositoryHandle, inspectConfiguration)
	if statusError != nil {
		return statusError
	}
	logger.Info(statusComputedMessageConstant, zap.Uint64(logFieldEntryCountConstant, uint64(statusEntryCount)))

	if len(localValue) > 0 {
		return reportDivergence(logger, repositoryHandle, localValue, upstreamValue)
	}

	return nil
}

func reportHead(logger *zap.Logger, repositoryHandle bridge.Repository) error {
	headReference, headCode := repositoryHandle.Head()
	switch headCode {
	case bridge.ErrorCodeOK:
		branchName := headReference.Shorthand().String()
		headReference.Free()
		logger.Info(headResolvedMessageConstant, zap.String(logFieldBranchConstant, branchName))
		return nil
	case bridge.ErrorCodeUnbornBranch:
		logger.Warn(unbornHeadMessageConstant)
		return nil
	default:
		return fmt.Errorf(headErrorTemplateConstant, headCode)
	}
}

func computeStatusEntryCount(repositoryHandle bridge.Repository, inspectConfiguration InspectConfiguration) (uint, error) {
	var statusOptions bridge.StatusOptions
	if initializationCode := bridge.InitStatusOptions(&statusOptions, bridge.StatusOptionsVersion); initializationCode != bridge.ErrorCodeOK {
		return 0, fmt.Errorf(statusOptionsErrorTemplateConstant, initializationCode)
	}

	statusOptions.SetShow(bridge.StatusShowIndexAndWorkdir)

	statusFlags := uint(0)
	if inspectConfiguration.IncludeUntracked {
		statusFlags |= bridge.StatusOptIncludeUntracked | bridge.StatusOptRecurseUntrackedDirs
	}
	statusOptions.SetFlags(statusFlags)

	if len(inspectConfiguration.Pathspec) > 0 {
		statusOptions.SetPathspec(inspectConfiguration.Pathspec)
		defer statusOptions.FreePathspec()
	}

	statusList, creationCode := bridge.NewStatusList(repositoryHandle, &statusOptions)
	if creationCode != bridge.ErrorCodeOK {
		return 0, fmt.Errorf(statusListErrorTemplateConstant, creationCode)
	}
	defer statusList.Free()

	return statusList.EntryCount(), nil
}

func reportDivergence(logger *zap.Logger, repositoryHandle bridge.Repository, localValue string, upstreamValue string) error {
	localIdentifier, localParseError := parseObjectIdentifier(localValue)
	if localParseError != nil {
		return localParseError
	}

	upstreamIdentifier, upstreamParseError := parseObjectIdentifier(upstreamValue)
	if upstreamParseError != nil {
		return upstreamParseError
	}

	aheadCount, behindCount, resultCode := bridge.AheadBehind(repositoryHandle, localIdentifier, upstreamIdentifier)
	if resultCode != bridge.ErrorCodeOK {
		return fmt.Errorf(aheadBehindErrorTemplateConstant, resultCode)
	}

	logger.Info(
		divergenceMessageConstant,
		zap.Uint64(logFieldAheadConstant, uint64(aheadCount)),
		zap.Uint64(logFieldBehindConstant, uint64(behindCount)),
	)

	return nil
}

func parseObjectIdentifier(hexValue string) (bridge.ObjectID, error) {
	var identifier bridge.ObjectID
	if len(hexValue) != hex.EncodedLen(bridge.OIDRawSize) {
		return identifier, fmt.Errorf(objectIdentifierErrorTemplateConstant, hexValue, hex.EncodedLen(bridge.OIDRawSize))
	}

	decodedBytes, decodeError := hex.DecodeString(hexValue)
	if decodeError != nil {
		return identifier, fmt.Errorf(objectIdentifierErrorTemplateConstant, hexValue, hex.EncodedLen(bridge.OIDRawSize))
	}

	copy(identifier[:], decodedBytes)
	return identifier, nil
}

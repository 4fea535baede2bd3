package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/git2bridge/internal/utils"
)

const (
	testConfigurationNameConstant     = "config"
	testConfigurationTypeConstant     = "yaml"
	testEnvironmentPrefixConstant     = "GIT2BRIDGETEST"
	testConfigurationFileNameConstant = "config.yaml"
	testConfigurationContentConstant  = "log_level: debug\n"
	testLogLevelDefaultValueConstant  = "info"
	testLogLevelKeyConstant           = "log_level"
	testEnvironmentVariableConstant   = "GIT2BRIDGETEST_LOG_LEVEL"
	testEnvironmentLogLevelConstant   = "warn"
	testConfigurationPermissionsValue = os.FileMode(0o644)
)

type testConfiguration struct {
	LogLevel string `mapstructure:"log_level"`
}

func TestConfigurationLoaderReadsFile(testInstance *testing.T) {
	configurationDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(configurationDirectory, testConfigurationFileNameConstant)
	writeError := os.WriteFile(configurationFilePath, []byte(testConfigurationContentConstant), testConfigurationPermissionsValue)
	require.NoError(testInstance, writeError)

	configurationLoader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{configurationDirectory},
	)

	var loadedValues testConfiguration
	loadedMetadata, loadError := configurationLoader.LoadConfiguration(configurationFilePath, nil, &loadedValues)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "debug", loadedValues.LogLevel)
	require.Equal(testInstance, configurationFilePath, loadedMetadata.ConfigFileUsed)
}

func TestConfigurationLoaderAppliesDefaults(testInstance *testing.T) {
	configurationLoader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{testInstance.TempDir()},
	)

	var loadedValues testConfiguration
	_, loadError := configurationLoader.LoadConfiguration("", map[string]any{testLogLevelKeyConstant: testLogLevelDefaultValueConstant}, &loadedValues)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, testLogLevelDefaultValueConstant, loadedValues.LogLevel)
}

func TestConfigurationLoaderHonorsEnvironmentOverride(testInstance *testing.T) {
	testInstance.Setenv(testEnvironmentVariableConstant, testEnvironmentLogLevelConstant)

	configurationLoader := utils.NewConfigurationLoader(
		testConfigurationNameConstant,
		testConfigurationTypeConstant,
		testEnvironmentPrefixConstant,
		[]string{testInstance.TempDir()},
	)

	var loadedValues testConfiguration
	_, loadError := configurationLoader.LoadConfiguration("", map[string]any{testLogLevelKeyConstant: testLogLevelDefaultValueConstant}, &loadedValues)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, testEnvironmentLogLevelConstant, loadedValues.LogLevel)
}

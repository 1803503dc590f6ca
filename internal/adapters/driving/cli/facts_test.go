package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactsCmd_Use(t *testing.T) {
	assert.Equal(t, "facts [query]", factsCmd.Use)
}

func TestFactsCmd_HasLimitFlag(t *testing.T) {
	flag := factsCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "5", flag.DefValue)
}

func TestFactsCmd_PrintsFacts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"facts", "work in germany"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "EU Blue Card")
	assert.Contains(t, buf.String(), "Germany")
	assert.Contains(t, buf.String(), "0.91")
}

func TestFactsCmd_EmptyResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	retrievalService = &mockRetrievalService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"facts", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No facts found")
}

func TestFactsCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	retrievalService = &errRetrievalService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"facts", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "retrieval failed")
}

func TestFactsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := retrievalService
	retrievalService = nil
	defer func() {
		retrievalService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"facts", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "retrieval service not configured")
}

func TestFactsCountriesCmd_ListsCountries(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"facts", "countries"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Catalogued countries (2)")
	assert.Contains(t, buf.String(), "Canada, Germany")
}

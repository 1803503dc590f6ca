package docscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_ExtractFields(t *testing.T) {
	doc := []byte(`Passport Summary

Nationality: Portugal
Date of Expiry: 2031-04-15
some free text without a colon separator is skipped
Languages: Portuguese, English
`)

	fields, err := NewTextExtractor().ExtractFields(context.Background(), doc, "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "Portugal", fields["Nationality"])
	assert.Equal(t, "2031-04-15", fields["Date of Expiry"])
	assert.Equal(t, "Portuguese, English", fields["Languages"])
	assert.NotContains(t, fields, "Passport Summary")
}

func TestTextExtractor_LaterDuplicateWins(t *testing.T) {
	doc := []byte("Nationality: India\nNationality: Portugal\n")

	fields, err := NewTextExtractor().ExtractFields(context.Background(), doc, "text/plain; charset=utf-8")

	require.NoError(t, err)
	assert.Equal(t, "Portugal", fields["Nationality"])
}

func TestTextExtractor_UnsupportedMIME(t *testing.T) {
	_, err := NewTextExtractor().ExtractFields(context.Background(), []byte("binary"), "application/pdf")

	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestTextExtractor_EmptyDocument(t *testing.T) {
	fields, err := NewTextExtractor().ExtractFields(context.Background(), nil, "")

	require.NoError(t, err)
	assert.Empty(t, fields)
}

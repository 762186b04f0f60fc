package services

import (
	"context"
	"strings"
	"testing"

	"github.com/condomanager/condomanager-api/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bylawsText = "Chapter 3. The elevator maintenance contract is renewed every January with the provider Vertical Lift Ltda. " +
	"Chapter 4. Pets are allowed in common areas only on a leash."

func TestDocumentUploadRejectsNonPDF(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Condo A")
	svc := NewDocumentService(db, nil, extract.PlainText{}, nil)

	_, err := svc.Upload(context.Background(), "Bylaws", condo.ID, "bylaws.txt", "text/plain", []byte(bylawsText))
	require.ErrorIs(t, err, ErrNotPDF)
}

func TestDocumentAskFindsSnippet(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Condo A")
	svc := NewDocumentService(db, nil, extract.PlainText{}, nil)

	_, err := svc.Upload(context.Background(), "Bylaws", condo.ID, "bylaws.pdf", "application/pdf", []byte(bylawsText))
	require.NoError(t, err)

	answer, err := svc.Ask(context.Background(), condo.ID, "When is the elevator contract renewed?")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(answer, "I found the following information:"))
	assert.Contains(t, answer, "In document 'Bylaws'")
	assert.Contains(t, answer, "elevator maintenance contract")
}

func TestDocumentAskHandlesMisses(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Condo A")
	svc := NewDocumentService(db, nil, extract.PlainText{}, nil)

	_, err := svc.Upload(context.Background(), "Bylaws", condo.ID, "bylaws.pdf", "application/pdf", []byte(bylawsText))
	require.NoError(t, err)

	// Every word is 3 characters or fewer: no usable keywords.
	answer, err := svc.Ask(context.Background(), condo.ID, "is it ok?")
	require.NoError(t, err)
	assert.Equal(t, "Please ask a more specific question.", answer)

	answer, err = svc.Ask(context.Background(), condo.ID, "What about swimming lessons?")
	require.NoError(t, err)
	assert.Equal(t, "I could not find information about that in the registered documents.", answer)
}

func TestDocumentAskScopedToCondominium(t *testing.T) {
	db := newTestDB(t)
	condoA := seedCondominium(t, db, "Condo A")
	condoB := seedCondominium(t, db, "Condo B")
	svc := NewDocumentService(db, nil, extract.PlainText{}, nil)

	_, err := svc.Upload(context.Background(), "Bylaws", condoA.ID, "bylaws.pdf", "application/pdf", []byte(bylawsText))
	require.NoError(t, err)

	answer, err := svc.Ask(context.Background(), condoB.ID, "When is the elevator contract renewed?")
	require.NoError(t, err)
	assert.Equal(t, "I could not find information about that in the registered documents.", answer)
}

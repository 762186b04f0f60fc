package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/condomanager/condomanager-api/internal/ai"
	"github.com/condomanager/condomanager-api/internal/extract"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/condomanager/condomanager-api/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotPDF = errors.New("only PDF files are accepted")

// Snippet window around the first keyword hit.
const (
	snippetBefore = 100
	snippetAfter  = 300
)

// Canned answers for the keyword search path.
const (
	answerTooVague  = "Please ask a more specific question."
	answerNotFound  = "I could not find information about that in the registered documents."
	answerFoundHead = "I found the following information:\n\n"
)

type DocumentService struct {
	db        *gorm.DB
	uploader  storage.Uploader
	extractor extract.TextExtractor
	ai        *ai.Client
}

func NewDocumentService(db *gorm.DB, uploader storage.Uploader, extractor extract.TextExtractor, aiClient *ai.Client) *DocumentService {
	return &DocumentService{db: db, uploader: uploader, extractor: extractor, ai: aiClient}
}

// Upload extracts the document's text and persists it for search.
// The stored file lives behind the storage contract; when storage is
// not configured only the logical path is recorded.
func (s *DocumentService) Upload(ctx context.Context, title string, condominiumID uuid.UUID, filename, contentType string, data []byte) (*models.Document, error) {
	if contentType != "application/pdf" {
		return nil, ErrNotPDF
	}

	text, err := s.extractor.Extract(ctx, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	path := "storage/" + filename
	if s.uploader != nil {
		stored := uuid.NewString() + "_" + filename
		url, err := s.uploader.Upload(ctx, stored, contentType, data)
		if err == nil {
			path = url
		} else if !errors.Is(err, storage.ErrNotConfigured) {
			return nil, err
		}
	}

	doc := models.Document{
		ID:            uuid.New(),
		Title:         title,
		FilePath:      path,
		ContentText:   text,
		CondominiumID: condominiumID,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the condominium exists", ErrIntegrityViolation)
		}
		return nil, err
	}

	return &doc, nil
}

// Ask answers a question from the condominium's documents. Keywords
// longer than 3 characters are substring-matched case-insensitively;
// the first hit per document yields one context snippet. When an AI
// endpoint is configured the snippets are sent to it as context and
// its answer wins; on AI failure the snippets themselves are returned.
func (s *DocumentService) Ask(ctx context.Context, condominiumID uuid.UUID, question string) (string, error) {
	keywords := extractKeywords(question)
	if len(keywords) == 0 {
		return answerTooVague, nil
	}

	var docs []models.Document
	if err := s.db.Where("condominium_id = ?", condominiumID).Find(&docs).Error; err != nil {
		return "", err
	}

	var snippets []string
	for _, doc := range docs {
		if snippet, ok := firstSnippet(doc.ContentText, keywords); ok {
			snippets = append(snippets, fmt.Sprintf("In document '%s': ...%s...", doc.Title, snippet))
		}
	}

	if len(snippets) == 0 {
		return answerNotFound, nil
	}

	fallback := answerFoundHead + strings.Join(snippets, "\n\n")

	if s.ai != nil && s.ai.Configured() {
		answer, err := s.ai.Answer(ctx, strings.Join(snippets, "\n\n"), question)
		if err == nil {
			return answer, nil
		}
		slog.Warn("AI answer failed, falling back to snippets", "error", err)
	}

	return fallback, nil
}

func extractKeywords(question string) []string {
	var keywords []string
	for _, word := range strings.Fields(question) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// firstSnippet returns a context window around the first keyword found
// in text, one per document.
func firstSnippet(text string, keywords []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		idx := strings.Index(lower, strings.ToLower(keyword))
		if idx < 0 {
			continue
		}

		start := idx - snippetBefore
		if start < 0 {
			start = 0
		}
		end := idx + snippetAfter
		if end > len(text) {
			end = len(text)
		}
		return strings.ReplaceAll(text[start:end], "\n", " "), true
	}
	return "", false
}

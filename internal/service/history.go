package service

import (
	"readhelper/internal/domain"
	"readhelper/internal/repository"

	"go.uber.org/zap"
)

// HistoryService handles keyword history maintenance
type HistoryService struct {
	keywordRepo repository.KeywordRepository
	logger      *zap.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(keywordRepo repository.KeywordRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		keywordRepo: keywordRepo,
		logger:      logger,
	}
}

// ClearHistory removes keyword history records: everything when
// keywords is empty, otherwise only the named ones (normalized first).
func (s *HistoryService) ClearHistory(userID int64, keywords []string) error {
	if len(keywords) == 0 {
		s.logger.Info("clearing full keyword history", zap.Int64("user_id", userID))
		return s.keywordRepo.ClearKeywordHistory(userID)
	}

	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if n := domain.NormalizeKeyword(kw); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil
	}

	return s.keywordRepo.ClearKeywords(userID, normalized)
}

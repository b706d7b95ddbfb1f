package evidence

import (
	"strings"

	"log/slog"

	"github.com/endoforge/appforge/internal/domain"
)

// Service answers clinical questions from the canned evidence catalog.
// Matching is a sequence of case-insensitive substring tests; the first
// topic with a hit wins, so catalog order matters.
type Service struct {
	logger *slog.Logger
}

// New constructs a Service.
func New(logger *slog.Logger) Service {
	return Service{logger: logger}
}

// Answer returns the canned response for the first topic whose keywords
// match the question, or the fallback response when nothing matches.
func (s Service) Answer(question string) domain.EvidenceResponse {
	q := strings.ToLower(question)
	for _, t := range topics {
		if t.matches(q) {
			s.logger.Info("evidence answered", "topic", t.key)
			return t.response
		}
	}
	s.logger.Info("evidence answered", "topic", "fallback")
	return fallbackResponse
}

type topic struct {
	key      string
	keywords []string
	response domain.EvidenceResponse
}

func (t topic) matches(q string) bool {
	for _, kw := range t.keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

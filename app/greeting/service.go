package greeting

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrUnknownLanguage = errors.New("greeting: unknown language")

// Service builds greetings for people.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Greet greets name in lang. An empty name greets the world.
func (s *Service) Greet(lang, name string) (string, error) {
	g, ok := s.repo.Find(lang)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if name == "" {
		name = "world"
	}
	s.log.Debug("greeting", slog.String("lang", lang))
	return g + ", " + name + "!", nil
}

func (s *Service) Languages() []string { return s.repo.Languages() }

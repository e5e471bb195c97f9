package dashboard

import (
	"github.com/modernhome/storefront-backend/internal/contact"
)

// Service aggregates the counts and recent activity shown on the admin
// dashboard.
type Service struct {
	repo     Repository
	messages contact.Repository
}

func NewService(repo Repository, messages contact.Repository) *Service {
	return &Service{repo: repo, messages: messages}
}

func (s *Service) Overview() (Stats, error) {
	products, err := s.repo.CountProducts()
	if err != nil {
		return Stats{}, err
	}
	categories, err := s.repo.CountCategories()
	if err != nil {
		return Stats{}, err
	}
	messages, err := s.messages.Count()
	if err != nil {
		return Stats{}, err
	}

	recentProducts, err := s.repo.RecentProducts(RecentLimit)
	if err != nil {
		return Stats{}, err
	}
	recentMessages, err := s.messages.Recent(RecentLimit)
	if err != nil {
		return Stats{}, err
	}

	summaries := make([]MessageSummary, 0, len(recentMessages))
	for _, m := range recentMessages {
		summaries = append(summaries, MessageSummary{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			CreatedAt: m.CreatedAt,
		})
	}

	return Stats{
		TotalProducts:   products,
		TotalCategories: categories,
		TotalMessages:   messages,
		RecentProducts:  recentProducts,
		RecentMessages:  summaries,
	}, nil
}

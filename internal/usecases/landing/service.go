package landing

import (
	"errors"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
)

var ErrSectionNotFound = errors.New("seção não encontrada")

type Lander interface {
	GetLanding() domain.LandingPage
	GetSection(id string) (domain.LandingSection, error)
}

// Service serve o conteúdo estático da landing page
type Service struct {
	page domain.LandingPage
}

func NewService() Lander {
	return &Service{page: seed.Landing()}
}

func (s *Service) GetLanding() domain.LandingPage {
	sections := make([]domain.LandingSection, len(s.page.Sections))
	copy(sections, s.page.Sections)
	return domain.LandingPage{Sections: sections}
}

func (s *Service) GetSection(id string) (domain.LandingSection, error) {
	for _, section := range s.page.Sections {
		if section.ID == id {
			return section, nil
		}
	}
	return domain.LandingSection{}, ErrSectionNotFound
}

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

func TestBrands_FreshCopies(t *testing.T) {
	first := Brands()
	first[0].Status = domain.BrandStatusPaused

	second := Brands()
	assert.Equal(t, domain.BrandStatusActive, second[0].Status)
	assert.Equal(t, "TechCorp Solutions", second[0].Name)
}

func TestEmailSteps_Shape(t *testing.T) {
	steps := EmailSteps()

	kinds := make([]domain.StepKind, 0, len(steps))
	for _, s := range steps {
		kinds = append(kinds, s.Kind)
	}

	assert.Equal(t, []domain.StepKind{
		domain.StepKindEmail,
		domain.StepKindDelay,
		domain.StepKindEmail,
		domain.StepKindCondition,
		domain.StepKindEmail,
	}, kinds)
	assert.Equal(t, 3, steps[1].DelayDays)
	assert.Equal(t, "if_replied", steps[3].Condition)
}

func TestLanding_SectionOrder(t *testing.T) {
	page := Landing()

	ids := make([]string, 0, len(page.Sections))
	for _, s := range page.Sections {
		ids = append(ids, s.ID)
	}

	assert.Equal(t, []string{"hero", "problem", "solution", "persona", "beta", "testimonial", "final-cta"}, ids)
	assert.Equal(t, "Cold Email Scaling Shouldn't Be This Hard.", page.Sections[6].Headline)
}

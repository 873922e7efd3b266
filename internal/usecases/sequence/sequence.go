package sequence

import (
	"errors"
	"fmt"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

var (
	ErrInvalidKind  = errors.New("tipo de passo inválido")
	ErrStepNotFound = errors.New("passo não encontrado")
)

// Valores iniciais dos passos criados pelo construtor de workflow
const (
	DefaultDelayDays = 2
	DefaultCondition = "if_replied"
)

type IDGenerator func() (string, error)

// List é a sequência ordenada de passos de uma campanha.
// Não há motor de execução: "aguardar 3 dias" é só um rótulo.
// List não é segura para uso concorrente; quem a possui deve serializar o acesso.
type List struct {
	steps []domain.EmailStep
	newID IDGenerator
}

func New(newID IDGenerator, steps []domain.EmailStep) *List {
	l := &List{
		steps: make([]domain.EmailStep, len(steps)),
		newID: newID,
	}
	copy(l.steps, steps)
	return l
}

// Steps devolve uma cópia dos passos na ordem atual
func (l *List) Steps() []domain.EmailStep {
	out := make([]domain.EmailStep, len(l.steps))
	copy(out, l.steps)
	return out
}

func (l *List) Len() int {
	return len(l.steps)
}

// AddStep anexa um novo passo do tipo pedido ao final da sequência.
// O formato da sequência não é validado (dois delays seguidos são aceitos).
func (l *List) AddStep(kind domain.StepKind) (domain.EmailStep, error) {
	if !kind.IsValid() {
		return domain.EmailStep{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	id, err := l.newID()
	if err != nil {
		return domain.EmailStep{}, fmt.Errorf("erro ao gerar id do passo: %w", err)
	}

	step := domain.EmailStep{ID: id, Kind: kind}
	switch kind {
	case domain.StepKindDelay:
		step.DelayDays = DefaultDelayDays
	case domain.StepKindCondition:
		step.Condition = DefaultCondition
	}

	l.steps = append(l.steps, step)
	return step, nil
}

// AddEmail anexa um passo de email já com assunto e corpo
func (l *List) AddEmail(subject, body string) (domain.EmailStep, error) {
	step, err := l.AddStep(domain.StepKindEmail)
	if err != nil {
		return domain.EmailStep{}, err
	}

	last := &l.steps[len(l.steps)-1]
	last.Subject = subject
	last.Body = body

	step.Subject = subject
	step.Body = body
	return step, nil
}

// ToggleExpand inverte a visibilidade de um único passo; os demais não mudam
func (l *List) ToggleExpand(id string) (domain.EmailStep, error) {
	for i := range l.steps {
		if l.steps[i].ID == id {
			l.steps[i].Expanded = !l.steps[i].Expanded
			return l.steps[i], nil
		}
	}

	return domain.EmailStep{}, fmt.Errorf("%w: %s", ErrStepNotFound, id)
}

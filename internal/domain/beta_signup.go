package domain

import "strings"

// BetaSignup é o registro enviado para a tabela de inscrições beta
type BetaSignup struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	MonthlyVolume string `json:"monthly_volume"`
}

// BetaSignupColumns são as colunas da tabela de inscrições, na ordem do formulário
var BetaSignupColumns = []string{"full_name", "email", "company", "role", "monthly_volume"}

// Record achata os campos do formulário em chave/valor.
// Campos opcionais vazios viram nil (NULL na tabela), igual para REST e Postgres.
func (b BetaSignup) Record() map[string]interface{} {
	return map[string]interface{}{
		"full_name":      b.FullName,
		"email":          b.Email,
		"company":        optional(b.Company),
		"role":           optional(b.Role),
		"monthly_volume": optional(b.MonthlyVolume),
	}
}

func optional(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

// MissingRequired retorna os campos obrigatórios vazios
func (b BetaSignup) MissingRequired() []string {
	missing := make([]string, 0)
	if strings.TrimSpace(b.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(b.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}

func (b BetaSignup) IsEmpty() bool {
	return b == BetaSignup{}
}

var (
	BetaRoles   = []string{"agency", "marketer", "founder", "sdr", "other"}
	BetaVolumes = []string{"low", "medium", "high", "enterprise"}
)

type BetaForm struct {
	Fields     BetaSignup `json:"fields"`
	Submitting bool       `json:"submitting"`
}

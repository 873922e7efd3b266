package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/seed"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/filtering"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/notifying"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/session"
	"github.com/vfg2006/coldinfra-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coldinfra-dashboard/pkg/log"
)

// CSVImportSource é a origem dos leads importados por upload
const CSVImportSource = "CSV Import"

var generatedLeadMatcher = filtering.Matcher[domain.GeneratedLead]{
	Keys:   func(l domain.GeneratedLead) []string { return []string{l.Name, l.Email, l.Company} },
	Status: func(l domain.GeneratedLead) string { return string(l.Status) },
}

var generatedLeadStatuses = []string{
	string(domain.GeneratedLeadReplied),
	string(domain.GeneratedLeadBooked),
	string(domain.GeneratedLeadNoResponse),
}

var finderLeadMatcher = filtering.Matcher[domain.Lead]{
	Keys:   func(l domain.Lead) []string { return []string{l.Name, l.Email, l.Company} },
	Status: func(l domain.Lead) string { return string(l.Status) },
}

var finderLeadStatuses = []string{
	string(domain.LeadStatusNotSent),
	string(domain.LeadStatusSent),
	string(domain.LeadStatusReplied),
}

func (s *Service) ListGeneratedLeads(w *session.Workspace, query domain.ListQuery) (LeadGenerationView, error) {
	if err := validateStatus(query.Status, generatedLeadStatuses...); err != nil {
		return LeadGenerationView{}, err
	}

	w.Lock()
	defer w.Unlock()

	return LeadGenerationView{
		Leads:   filtering.Apply(w.GeneratedLeads, query.Search, query.Status, generatedLeadMatcher),
		Counts:  filtering.CountByStatus(w.GeneratedLeads, generatedLeadMatcher.Status, generatedLeadStatuses...),
		ByBrand: seed.BrandLeadStats(),
	}, nil
}

func (s *Service) ListFinderLeads(w *session.Workspace, query domain.ListQuery) (LeadFinderView, error) {
	if err := validateStatus(query.Status, finderLeadStatuses...); err != nil {
		return LeadFinderView{}, err
	}

	w.Lock()
	defer w.Unlock()

	return LeadFinderView{
		Leads:         filtering.Apply(w.FinderLeads, query.Search, query.Status, finderLeadMatcher),
		Counts:        filtering.CountByStatus(w.FinderLeads, finderLeadMatcher.Status, finderLeadStatuses...),
		SelectedCount: selectedLeads(w.FinderLeads),
	}, nil
}

func selectedLeads(leads []domain.Lead) int {
	count := 0
	for _, l := range leads {
		if l.Selected {
			count++
		}
	}
	return count
}

func (s *Service) ToggleLead(w *session.Workspace, id string) (domain.Lead, error) {
	w.Lock()
	defer w.Unlock()

	for i := range w.FinderLeads {
		if w.FinderLeads[i].ID == id {
			w.FinderLeads[i].Selected = !w.FinderLeads[i].Selected
			return w.FinderLeads[i], nil
		}
	}

	return domain.Lead{}, notFound("lead", id)
}

// AddLeadsToCart só notifica; sem leads selecionados nada acontece além do aviso
func (s *Service) AddLeadsToCart(ctx context.Context, w *session.Workspace) (domain.LeadCart, error) {
	w.Lock()
	cart := domain.LeadCart{SelectedCount: selectedLeads(w.FinderLeads)}
	w.Unlock()

	if cart.SelectedCount == 0 {
		s.notify(ctx, w.ID, notifying.Destructive("No leads selected", "Select at least one lead to add to your cart."))
		return cart, NewDashboardError(ErrNothingSelected, apiErrors.ErrInvalidRequest, "leads")
	}

	s.notify(ctx, w.ID, notifying.Info(
		"Leads Added to Cart",
		fmt.Sprintf("%d leads added to your cart. Proceed to checkout.", cart.SelectedCount),
	))

	return cart, nil
}

// UploadLeads valida o arquivo na hora e importa as linhas depois do atraso simulado.
// Colunas: name, email, title, company. Cabeçalho é opcional.
func (s *Service) UploadLeads(ctx context.Context, w *session.Workspace, fileName string, content []byte) (domain.LeadUpload, error) {
	logger := log.ForContext(ctx)

	if strings.TrimSpace(fileName) == "" {
		s.notify(ctx, w.ID, notifying.Destructive("Upload Failed", "Please select a CSV or Excel file first."))
		return domain.LeadUpload{}, NewDashboardError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "file")
	}

	leads, err := parseLeadsCSV(content)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler CSV de leads")
		s.notify(ctx, w.ID, notifying.Destructive("Upload Failed", "The file could not be read as CSV."))
		return domain.LeadUpload{}, NewDashboardError(ErrInvalidCSV, apiErrors.ErrInvalidFormat, err.Error())
	}

	upload := domain.LeadUpload{FileName: fileName, Rows: len(leads)}

	s.notify(ctx, w.ID, notifying.Info(
		"CSV Upload Started",
		fmt.Sprintf("Processing %q - this may take a moment.", fileName),
	))

	err = s.tasks.After(s.cfg.UploadDelay, func() {
		imported := s.importLeads(w, leads)

		s.notify(ctx, w.ID, notifying.Success(
			"Upload Complete",
			fmt.Sprintf("Successfully imported %d leads from your CSV.", imported),
		))
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao agendar importação de leads")
		return domain.LeadUpload{}, NewDashboardError(errors.Join(ErrScheduleFailed, err), apiErrors.ErrInternalServer, "")
	}

	return upload, nil
}

func (s *Service) importLeads(w *session.Workspace, leads []domain.Lead) int {
	w.Lock()
	defer w.Unlock()

	imported := 0
	for _, lead := range leads {
		id, err := s.newID()
		if err != nil {
			log.L.WithError(err).Error("Erro ao gerar id do lead importado")
			continue
		}

		lead.ID = id
		w.FinderLeads = append(w.FinderLeads, lead)
		imported++
	}

	return imported
}

func parseLeadsCSV(content []byte) ([]domain.Lead, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	leads := make([]domain.Lead, 0)
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
				continue
			}
		}

		fields := make([]string, 4)
		for i := 0; i < len(fields) && i < len(record); i++ {
			fields[i] = strings.TrimSpace(record[i])
		}

		if fields[0] == "" && fields[1] == "" {
			continue
		}

		leads = append(leads, domain.Lead{
			Name:    fields[0],
			Email:   fields[1],
			Title:   fields[2],
			Company: fields[3],
			Source:  CSVImportSource,
			Status:  domain.LeadStatusNotSent,
		})
	}

	return leads, nil
}

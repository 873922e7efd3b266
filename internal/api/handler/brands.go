package handler

import (
	"net/http"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
	"github.com/vfg2006/coldinfra-dashboard/internal/usecases/dashboard"
)

type IDRequest struct {
	ID string `json:"id"`
}

type DateRangeRequest struct {
	DateRange domain.DateRange `json:"date_range"`
}

func ListBrands(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		view, err := service.ListBrands(ws, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar marcas")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func UpdateBrandStatus(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateBrandStatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		brand, err := service.SetBrandStatus(r.Context(), ws, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status da marca")
			return
		}

		writeJSON(w, r, http.StatusOK, brand)
	}
}

func SetBrandDateRange(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req DateRangeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.SetDateRange(ws, req.DateRange); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar período")
			return
		}

		writeJSON(w, r, http.StatusOK, req)
	}
}

// ExportBrandsCSV baixa a lista filtrada de marcas
func ExportBrandsCSV(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		content, err := service.ExportBrandsCSV(r.Context(), ws, listQuery(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar marcas")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="brands.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

func AddBrand(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		if err := service.AddBrand(r.Context(), ws); err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar marca")
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

func RecommendBrandSetup(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFrom(w, r)
		if !ok {
			return
		}

		var req domain.BrandSetupRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		recommendation, err := service.RecommendSetup(r.Context(), ws, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular recomendação")
			return
		}

		writeJSON(w, r, http.StatusOK, recommendation)
	}
}

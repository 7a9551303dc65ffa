package httpapi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"banyan-data/internal/domain"
	"banyan-data/internal/repository"
	"banyan-data/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams workbook downloads.
type ExportHandler struct {
	export *service.ExportService
	logger *zap.Logger
}

func NewExportHandler(export *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{export: export, logger: logger}
}

func (h *ExportHandler) stream(w http.ResponseWriter, r *http.Request, filter repository.FormFilter, filename string) {
	data, err := h.export.BuildWorkbook(r.Context(), filter)
	if err != nil {
		h.logger.Error("Workbook export failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("Failed to export data."))
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}

// ExportFacility streams the workbook for one facility.
func (h *ExportHandler) ExportFacility(w http.ResponseWriter, r *http.Request, _ *domain.User, facilityID string) {
	h.stream(w, r, repository.FormFilter{Facility: facilityID},
		fmt.Sprintf("facility_%s_data.xlsx", facilityID))
}

// ExportAllFacilities streams the workbook with every stored record.
func (h *ExportHandler) ExportAllFacilities(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	h.stream(w, r, repository.FormFilter{}, "all_facilities_data.xlsx")
}

// ExportUserForms streams the workbook with only the caller's submissions.
func (h *ExportHandler) ExportUserForms(w http.ResponseWriter, r *http.Request, user *domain.User) {
	h.stream(w, r, repository.FormFilter{CreatedBy: user.ID}, "user_forms_data.xlsx")
}

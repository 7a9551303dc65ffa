package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"banyan-data/internal/domain"
	"banyan-data/internal/service"
)

// FormsHandler serves the submit/list pairs for all six form types.
type FormsHandler struct {
	forms  *service.FormService
	logger *zap.Logger
}

func NewFormsHandler(forms *service.FormService, logger *zap.Logger) *FormsHandler {
	return &FormsHandler{forms: forms, logger: logger}
}

func (h *FormsHandler) writeSubmitError(w http.ResponseWriter, formType string, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, Fail(verr.Violations[0]))
		return
	}
	h.logger.Error("Form submission failed",
		zap.String("form_type", formType),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail("Failed to submit form. Please try again."))
}

func (h *FormsHandler) writeListError(w http.ResponseWriter, formType string, err error) {
	h.logger.Error("Form listing failed",
		zap.String("form_type", formType),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail("Failed to fetch forms"))
}

func facilityParam(r *http.Request) string {
	return r.URL.Query().Get("facility")
}

func (h *FormsHandler) CreateOutreach(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var rec domain.Outreach
	if err := readBodyJSON(r, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	created, err := h.forms.SubmitOutreach(r.Context(), user, &rec)
	if err != nil {
		h.writeSubmitError(w, "outreach", err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage("Form submitted successfully", created))
}

func (h *FormsHandler) ListOutreach(w http.ResponseWriter, r *http.Request, user *domain.User) {
	recs, err := h.forms.ListOutreach(r.Context(), user, facilityParam(r))
	if err != nil {
		h.writeListError(w, "outreach", err)
		return
	}
	if recs == nil {
		recs = []domain.Outreach{}
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}

func (h *FormsHandler) CreateReintegration(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var rec domain.Reintegration
	if err := readBodyJSON(r, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	created, err := h.forms.SubmitReintegration(r.Context(), user, &rec)
	if err != nil {
		h.writeSubmitError(w, "reintegration", err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage("Form submitted successfully", created))
}

func (h *FormsHandler) ListReintegration(w http.ResponseWriter, r *http.Request, user *domain.User) {
	recs, err := h.forms.ListReintegration(r.Context(), user, facilityParam(r))
	if err != nil {
		h.writeListError(w, "reintegration", err)
		return
	}
	if recs == nil {
		recs = []domain.Reintegration{}
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}

func (h *FormsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var rec domain.Transaction
	if err := readBodyJSON(r, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	created, err := h.forms.SubmitTransaction(r.Context(), user, &rec)
	if err != nil {
		h.writeSubmitError(w, "transactions", err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage("Form submitted successfully", created))
}

func (h *FormsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, user *domain.User) {
	recs, err := h.forms.ListTransactions(r.Context(), user, facilityParam(r))
	if err != nil {
		h.writeListError(w, "transactions", err)
		return
	}
	if recs == nil {
		recs = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}

func (h *FormsHandler) CreateAwarenessMeeting(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var rec domain.AwarenessMeeting
	if err := readBodyJSON(r, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	created, err := h.forms.SubmitAwarenessMeeting(r.Context(), user, &rec)
	if err != nil {
		h.writeSubmitError(w, "awareness", err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage("Form submitted successfully", created))
}

func (h *FormsHandler) ListAwarenessMeetings(w http.ResponseWriter, r *http.Request, user *domain.User) {
	recs, err := h.forms.ListAwarenessMeetings(r.Context(), user, facilityParam(r))
	if err != nil {
		h.writeListError(w, "awareness", err)
		return
	}
	if recs == nil {
		recs = []domain.AwarenessMeeting{}
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}

func (h *FormsHandler) CreateHospitalVisit(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var rec domain.HospitalVisit
	if err := readBodyJSON(r, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	created, err := h.forms.SubmitHospitalVisit(r.Context(), user, &rec)
	if err != nil {
		h.writeSubmitError(w, "hospital-visits", err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage("Form submitted successfully", created))
}

func (h *FormsHandler) ListHospitalVisits(w http.ResponseWriter, r *http.Request, user *domain.User) {
	recs, err := h.forms.ListHospitalVisits(r.Context(), user, facilityParam(r))
	if err != nil {
		h.writeListError(w, "hospital-visits", err)
		return
	}
	if recs == nil {
		recs = []domain.HospitalVisit{}
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}

func (h *FormsHandler) CreateMastersheet(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var rec domain.Mastersheet
	if err := readBodyJSON(r, &rec); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}
	created, err := h.forms.SubmitMastersheet(r.Context(), user, &rec)
	if err != nil {
		h.writeSubmitError(w, "mastersheet", err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage("Form submitted successfully", created))
}

func (h *FormsHandler) ListMastersheet(w http.ResponseWriter, r *http.Request, user *domain.User) {
	recs, err := h.forms.ListMastersheet(r.Context(), user, facilityParam(r))
	if err != nil {
		h.writeListError(w, "mastersheet", err)
		return
	}
	if recs == nil {
		recs = []domain.Mastersheet{}
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}

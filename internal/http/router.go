package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"banyan-data/internal/domain"
)

// Router wraps the standard library ServeMux so route registration stays in
// one place per handler group.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) RegisterAuthRoutes(h *AuthHandler, mw *AuthMiddleware) {
	r.Handle("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Register(w, req)
	})

	r.Handle("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Login(w, req)
	})

	r.Handle("/api/auth/verify", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		mw.Wrap(h.Verify)(w, req)
	})
}

// formRoute registers the POST/GET pair for one form type behind the auth
// middleware.
func (r *Router) formRoute(pattern string, mw *AuthMiddleware, create, list AuthedHandler) {
	r.Handle(pattern, func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodPost:
			mw.Wrap(create)(w, req)
		case http.MethodGet:
			mw.Wrap(list)(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func (r *Router) RegisterFormRoutes(h *FormsHandler, mw *AuthMiddleware) {
	r.formRoute("/api/forms/outreach", mw, h.CreateOutreach, h.ListOutreach)
	r.formRoute("/api/forms/reintegration", mw, h.CreateReintegration, h.ListReintegration)
	r.formRoute("/api/forms/transactions", mw, h.CreateTransaction, h.ListTransactions)
	r.formRoute("/api/forms/awareness", mw, h.CreateAwarenessMeeting, h.ListAwarenessMeetings)
	r.formRoute("/api/forms/hospital-visits", mw, h.CreateHospitalVisit, h.ListHospitalVisits)
	r.formRoute("/api/forms/mastersheet", mw, h.CreateMastersheet, h.ListMastersheet)
}

func (r *Router) RegisterExportRoutes(h *ExportHandler, mw *AuthMiddleware) {
	const facilityPrefix = "/api/forms/export/facility/"
	r.Handle(facilityPrefix, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(req.URL.Path, facilityPrefix)
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		mw.Wrap(func(w http.ResponseWriter, req *http.Request, user *domain.User) {
			h.ExportFacility(w, req, user, id)
		})(w, req)
	})

	r.Handle("/api/forms/export/all-facilities", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		mw.Wrap(h.ExportAllFacilities)(w, req)
	})

	r.Handle("/api/forms/export/user-forms", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		mw.Wrap(h.ExportUserForms)(w, req)
	})
}

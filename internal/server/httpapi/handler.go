package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/catalog"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set(common.ContentTypeHeaderName, common.JSONContent)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict decodes a JSON body and rejects unknown fields.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

func (s *HTTPServer) badRequest(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusBadRequest, "invalid_argument", "invalid argument")
}

func (s *HTTPServer) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(w, r, &in); err != nil {
		s.badRequest(w, r)
		return
	}

	u, err := s.svc.Users.Register(r.Context(), in.Email, in.Name, []byte(in.Password))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, userFromModel(u))
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(w, r, &in); err != nil {
		s.badRequest(w, r)
		return
	}

	pair, u, err := s.svc.Users.Login(r.Context(), in.Email, []byte(in.Password))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, credentialsResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userFromModel(u),
	})
}

// refreshToken answers 401 for unknown and expired refresh tokens; the
// client treats that as the end of the session.
func (s *HTTPServer) refreshToken(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(w, r, &in); err != nil || in.RefreshToken == "" {
		s.badRequest(w, r)
		return
	}

	access, err := s.svc.Users.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}

func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(w, r, &in); err != nil || in.RefreshToken == "" {
		s.badRequest(w, r)
		return
	}

	if err := s.svc.Users.Logout(r.Context(), in.RefreshToken); err != nil {
		s.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	u, err := s.svc.Users.Me(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(u))
}

func (s *HTTPServer) listPackages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalog.Filter{Query: q.Get("q"), BrandID: q.Get("brandID")}

	pkgs, err := s.svc.Catalog.ListPackages(r.Context(), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]packageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, packageFromModel(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) getPackage(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Catalog.GetPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, packageFromModel(*p))
}

func (s *HTTPServer) placeOrder(w http.ResponseWriter, r *http.Request) {
	var in orderRequest
	if err := decodeStrict(w, r, &in); err != nil {
		s.badRequest(w, r)
		return
	}

	userID, _ := UserIDFromContext(r.Context())
	o, err := s.svc.Orders.PlaceOrder(r.Context(), userID, in.PackageID, in.Quantity)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Order placed", "order_id", o.ID, "package_id", o.PackageID)
	writeJSON(w, http.StatusCreated, orderFromModel(*o))
}

func (s *HTTPServer) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	orders, err := s.svc.Orders.ListOrders(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderFromModel(o))
	}
	writeJSON(w, http.StatusOK, out)
}

package devserver

import (
	"net/http"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/session"
)

const loggedOutMessage = "Logged out successfully"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.OK(api.MessageResponse{Message: "OK"}))
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req session.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := s.auth.Login(r.Context(), req)
		if err != nil {
			respondErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, api.OK(*res))
	}
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req session.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := s.auth.Register(r.Context(), req)
		if err != nil {
			respondErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, api.OK(*res))
	}
}

// RefreshHandler rotates the refresh token. The presented token is spent either way.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		pair, _, err := s.tokens.Refresh(req.RefreshToken)
		if err != nil {
			respondErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, api.OK(pair))
	}
}

// LogoutHandler revokes the refresh token and, when a valid bearer is presented, the
// access token too. It succeeds even without credentials.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req session.LogoutRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
			return
		}
		if raw, ok := bearerToken(r); ok {
			if claims, _, err := s.tokens.Authenticate(raw); err == nil {
				if err := s.tokens.Revoke(claims, req.RefreshToken); err != nil {
					respondErr(w, err)
					return
				}
				writeJSON(w, http.StatusOK, api.OK(api.MessageResponse{Message: loggedOutMessage}))
				return
			}
		}
		if err := s.auth.Logout(r.Context(), req.RefreshToken); err != nil {
			respondErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, api.OK(api.MessageResponse{Message: loggedOutMessage}))
	}
}

func (s *Server) ForgotPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req session.ForgotPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		msg, err := s.auth.ForgotPassword(r.Context(), req)
		if err != nil {
			respondErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, api.OK(api.MessageResponse{Message: msg}))
	}
}

func (s *Server) ResetPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req session.ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		msg, err := s.auth.ResetPassword(r.Context(), req)
		if err != nil {
			respondErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, api.OK(api.MessageResponse{Message: msg}))
	}
}

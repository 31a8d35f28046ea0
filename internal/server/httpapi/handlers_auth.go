package httpapi

import (
	"net/http"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	sess, err := s.accounts.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err, "User not found", "Server error during signup")
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{Message: "User created successfully", Token: sess.Token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	sess, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err, "User not found", "Server error during login")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Message: "Login successful", Token: sess.Token})
}

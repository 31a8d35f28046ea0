package httpapi

import "net/http"

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.accounts.ListAccounts(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "User not found", "Server error fetching users")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, CodeNotFound, "User not found")
		return
	}

	p := principal(r)
	if err := s.accounts.DeleteAccount(r.Context(), p.AccountID, id); err != nil {
		s.writeServiceError(w, r, err, "User not found", "Server error deleting user")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

func (s *Server) handlePromoteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, CodeNotFound, "User not found")
		return
	}

	if err := s.accounts.PromoteAccount(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "User not found", "Server error promoting user")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "User promoted to admin successfully"})
}

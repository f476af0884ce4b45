package handlers

import (
	"errors"
	"net/http"

	"github.com/giftflow-app/backend/internal/store"
)

// --------- DTOs ---------

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token  string `json:"token"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// --------- Handlers ---------

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var in signupRequest
	if err := s.decodeValid(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stored, err := s.passwords.Hash(in.Password)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not store credentials")
		return
	}

	user, err := s.store.CreateUser(in.Name, in.Email, stored)
	if errors.Is(err, store.ErrEmailTaken) {
		errorJSON(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not create user")
		return
	}

	token, err := s.tokens.Mint(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not mint token")
		return
	}
	s.store.PutToken(token, user.Email)

	s.logger.Info().Str("userId", user.ID).Msg("user signed up")
	writeJSON(w, http.StatusOK, authResponse{Token: token, Name: user.Name, Email: user.Email, UserID: user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := s.decodeValid(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, ok := s.store.UserByEmail(in.Email)
	if !ok || !s.passwords.Compare(user.Password, in.Password) {
		errorJSON(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Reuse the first-inserted token for this email if one exists; mint
	// otherwise. PutToken runs either way, which also covers a seeded user
	// that never had a token recorded.
	token, ok := s.store.TokenForEmail(user.Email)
	if !ok {
		var err error
		token, err = s.tokens.Mint(user)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, "could not mint token")
			return
		}
	}
	s.store.PutToken(token, user.Email)

	s.logger.Info().Str("userId", user.ID).Msg("user logged in")
	writeJSON(w, http.StatusOK, authResponse{Token: token, Name: user.Name, Email: user.Email, UserID: user.ID})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name":   user.Name,
		"email":  user.Email,
		"userId": user.ID,
	})
}

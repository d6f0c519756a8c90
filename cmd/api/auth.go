package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/starbank/vendas-api/internal/auth"
	"github.com/starbank/vendas-api/internal/response"
	"github.com/starbank/vendas-api/internal/rules"
	"github.com/starbank/vendas-api/internal/store"
)

type credentialsInput struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type loginResult struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if input.Identity == "" || input.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "identity and password are required")
		return
	}

	canonical, err := rules.Normalize(input.Identity)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, "identity is not a valid organizational login")
		return
	}

	identity, err := app.auth.Register(r.Context(), canonical, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			writeJSONError(w, http.StatusConflict, "user already exists")
			return
		}
		app.logger.Error("failed to register account", zap.String("identity", canonical), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to register account")
		return
	}

	resp := response.OK(identity, "Account created. Please log in.")
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	canonical, err := rules.Normalize(input.Identity)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, "identity is not a valid organizational login")
		return
	}

	identity, err := app.auth.Authenticate(r.Context(), canonical, input.Password)
	if err != nil {
		// Wrong password and unknown user share one message on purpose.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		app.logger.Error("failed to authenticate", zap.String("identity", canonical), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	token, err := app.tokens.Issue(identity)
	if err != nil {
		app.logger.Error("failed to issue session token", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	resp := response.OK(loginResult{
		Token:    token,
		Identity: identity.Canonical,
		Role:     identity.Role,
	}, "Connected.")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

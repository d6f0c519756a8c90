package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/starbank/vendas-api/internal/auth"
	"github.com/starbank/vendas-api/internal/insights"
	"github.com/starbank/vendas-api/internal/response"
	"github.com/starbank/vendas-api/internal/rules"
)

const tickerSize = 5

type dashboardResult struct {
	Owner      string          `json:"owner"`
	Total      decimal.Decimal `json:"total"`
	Streak     int             `json:"streak"`
	Tier       string          `json:"tier"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	Message    string          `json:"message"`
	Commission decimal.Decimal `json:"commission"`
	NextGoal   decimal.Decimal `json:"next_goal"`
	Remaining  decimal.Decimal `json:"remaining"`
	Progress   float64         `json:"progress"`
}

// handleDashboard assembles the operator status view: accumulated
// total under the requested scope, the tier evaluation for it, and the
// caller's own daily streak.
func (app *application) handleDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing session")
		return
	}

	scope := rules.Scope(session, app.admins, r.URL.Query().Get("owner"))

	records, err := app.store.Sales.List(r.Context(), scope)
	if err != nil {
		app.logger.Error("failed to list sales", zap.String("scope", scope), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	dates, err := app.store.Sales.SaleDates(r.Context(), session.Identity)
	if err != nil {
		app.logger.Error("failed to load sale dates", zap.String("owner", session.Identity), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	total := insights.Total(records)
	eval := app.profile.Evaluate(total)

	remaining := eval.NextGoal.Sub(total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	resp := response.OK(dashboardResult{
		Owner:      scope,
		Total:      total,
		Streak:     rules.Streak(dates, time.Now()),
		Tier:       eval.Tier,
		Color:      eval.Meta.Color,
		Icon:       eval.Meta.Icon,
		Message:    eval.Meta.Message,
		Commission: eval.Commission.Round(2),
		NextGoal:   eval.NextGoal,
		Remaining:  remaining,
		Progress:   eval.Progress,
	}, "")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// handleTicker is public like the original banner: the latest sales
// across all operators, anonymizable only by not being logged in to
// see the rest of the data.
func (app *application) handleTicker(w http.ResponseWriter, r *http.Request) {
	latest, err := app.store.Sales.Latest(r.Context(), tickerSize)
	if err != nil {
		app.logger.Error("failed to load ticker", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to load ticker")
		return
	}

	goal := app.profile.Evaluate(decimal.Zero).NextGoal
	resp := response.OK(insights.TickerMessages(latest, goal), "")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleDailyFlow(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing session")
		return
	}

	scope := rules.Scope(session, app.admins, r.URL.Query().Get("owner"))

	records, err := app.store.Sales.List(r.Context(), scope)
	if err != nil {
		app.logger.Error("failed to list sales", zap.String("scope", scope), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to build daily flow")
		return
	}

	flow, err := insights.DailyFlow(records)
	if err != nil {
		app.logger.Error("failed to aggregate daily flow", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to build daily flow")
		return
	}

	resp := response.OK(flow, "")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleTopOperations(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing session")
		return
	}

	limit := 5
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			limit = l
		}
	}

	scope := rules.Scope(session, app.admins, r.URL.Query().Get("owner"))

	records, err := app.store.Sales.List(r.Context(), scope)
	if err != nil {
		app.logger.Error("failed to list sales", zap.String("scope", scope), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to rank operations")
		return
	}

	top, err := insights.TopOperations(records, limit)
	if err != nil {
		app.logger.Error("failed to rank operations", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to rank operations")
		return
	}

	resp := response.OK(top, "")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

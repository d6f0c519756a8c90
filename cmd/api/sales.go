package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/starbank/vendas-api/internal/auth"
	"github.com/starbank/vendas-api/internal/insights"
	"github.com/starbank/vendas-api/internal/response"
	"github.com/starbank/vendas-api/internal/rules"
	"github.com/starbank/vendas-api/internal/store"
)

type createSaleInput struct {
	Date      string          `json:"date"`
	Client    string          `json:"client"`
	Agreement string          `json:"agreement"`
	Product   string          `json:"product"`
	Amount    decimal.Decimal `json:"amount"`
}

type salesMetadata struct {
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type listSalesResult struct {
	Records  []store.SaleRecord `json:"records"`
	Metadata salesMetadata      `json:"metadata"`
}

func (app *application) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing session")
		return
	}

	var input createSaleInput
	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if input.Client == "" || input.Agreement == "" || input.Product == "" {
		writeJSONError(w, http.StatusBadRequest, "client, agreement and product are required")
		return
	}
	if input.Amount.IsNegative() {
		writeJSONError(w, http.StatusBadRequest, "amount must not be negative")
		return
	}

	// The sale date is user-editable at entry; it defaults to today.
	date, err := parseTime(parseDateOrDefault(input.Date, time.Now().Format("2006-01-02")))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid date format (YYYY-MM-DD expected)")
		return
	}

	record := &store.SaleRecord{
		Owner:     session.Identity,
		Date:      date,
		Client:    input.Client,
		Agreement: input.Agreement,
		Product:   input.Product,
		Amount:    input.Amount.Round(2),
	}

	if err := app.store.Sales.Insert(r.Context(), record); err != nil {
		app.logger.Error("failed to insert sale", zap.String("owner", session.Identity), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to record sale")
		return
	}

	app.logger.Info("sale recorded",
		zap.Int64("id", record.ID),
		zap.String("owner", record.Owner),
		zap.String("product", record.Product),
	)

	resp := response.OK(record, "Transação registrada!")
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleListSales(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing session")
		return
	}

	scope := rules.Scope(session, app.admins, r.URL.Query().Get("owner"))

	records, err := app.store.Sales.List(r.Context(), scope)
	if err != nil {
		app.logger.Error("failed to list sales", zap.String("scope", scope), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to list sales")
		return
	}

	resp := response.OK(listSalesResult{
		Records: records,
		Metadata: salesMetadata{
			Quantity:    len(records),
			TotalAmount: insights.Total(records),
		},
	}, "")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// handleDeleteSale removes a record by id. Any authenticated session
// that can see an id may delete it; deleting an absent id is a no-op.
func (app *application) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	if err := app.store.Sales.Delete(r.Context(), id); err != nil {
		app.logger.Error("failed to delete sale", zap.Int64("id", id), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to delete sale")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) handleListOwners(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing session")
		return
	}
	if !rules.IsAdmin(session, app.admins) {
		writeJSONError(w, http.StatusForbidden, "aggregate views are restricted to admins")
		return
	}

	owners, err := app.store.Sales.DistinctOwners(r.Context())
	if err != nil {
		app.logger.Error("failed to list owners", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "failed to list owners")
		return
	}

	resp := response.OK(append([]string{rules.AllOwners}, owners...), "")
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

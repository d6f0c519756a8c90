// Package insights derives the dashboard's chart and feed data from
// already-fetched sale records. Like the rules package it performs no
// I/O; unlike it, the outputs are display series, not business values.
package insights

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"

	"github.com/starbank/vendas-api/internal/rules"
	"github.com/starbank/vendas-api/internal/store"
)

const dateLayout = "2006-01-02"

// DailyTotal is one point of the temporal-flow chart series.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// TopOperation is one row of the top-operations ranking.
type TopOperation struct {
	Client  string  `json:"client"`
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
}

func frameOf(records []store.SaleRecord) dataframe.DataFrame {
	dates := make([]string, len(records))
	clients := make([]string, len(records))
	products := make([]string, len(records))
	amounts := make([]float64, len(records))
	for i, r := range records {
		dates[i] = r.Date.Format(dateLayout)
		clients[i] = r.Client
		products[i] = r.Product
		amounts[i] = r.Amount.InexactFloat64()
	}

	return dataframe.New(
		series.New(dates, series.String, "data"),
		series.New(clients, series.String, "cliente"),
		series.New(products, series.String, "produto"),
		series.New(amounts, series.Float, "valor"),
	)
}

// DailyFlow sums the recorded volume per calendar day, date-ascending.
func DailyFlow(records []store.SaleRecord) ([]DailyTotal, error) {
	if len(records) == 0 {
		return []DailyTotal{}, nil
	}

	df := frameOf(records)
	grouped := df.GroupBy("data").Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_SUM},
		[]string{"valor"},
	)
	if grouped.Err != nil {
		return nil, fmt.Errorf("failed to aggregate daily flow: %w", grouped.Err)
	}
	grouped = grouped.Arrange(dataframe.Sort("data"))
	if grouped.Err != nil {
		return nil, fmt.Errorf("failed to sort daily flow: %w", grouped.Err)
	}

	days := grouped.Col("data").Records()
	totals := grouped.Col("valor_SUM").Float()

	flow := make([]DailyTotal, len(days))
	for i := range days {
		flow[i] = DailyTotal{Date: days[i], Total: totals[i]}
	}
	return flow, nil
}

// TopOperations ranks the records by amount, highest first, keeping the
// top n.
func TopOperations(records []store.SaleRecord, n int) ([]TopOperation, error) {
	if len(records) == 0 || n <= 0 {
		return []TopOperation{}, nil
	}

	df := frameOf(records).Arrange(dataframe.RevSort("valor"))
	if df.Err != nil {
		return nil, fmt.Errorf("failed to rank operations: %w", df.Err)
	}

	if n > df.Nrow() {
		n = df.Nrow()
	}
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	df = df.Subset(indexes)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to take top operations: %w", df.Err)
	}

	clients := df.Col("cliente").Records()
	products := df.Col("produto").Records()
	amounts := df.Col("valor").Float()

	top := make([]TopOperation, n)
	for i := 0; i < n; i++ {
		top[i] = TopOperation{Client: clients[i], Product: products[i], Amount: amounts[i]}
	}
	return top, nil
}

// Total sums the amounts of a record set exactly.
func Total(records []store.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// TickerMessages formats the live-feed banner from the most recent
// sales, newest first, closing with the current goal. With nothing
// recorded yet it falls back to the system-online message.
func TickerMessages(latest []store.SaleRecord, goal decimal.Decimal) []string {
	if len(latest) == 0 {
		return []string{"💠 Sistema Starbank Online"}
	}

	msgs := make([]string, 0, len(latest)+1)
	for _, r := range latest {
		name := rules.Denormalize(r.Owner)
		if fields := strings.Fields(name); len(fields) > 0 {
			name = fields[0]
		}
		msgs = append(msgs, fmt.Sprintf("⚡ LIVE: %s VENDEU R$ %s (%s)",
			strings.ToUpper(name), r.Amount.StringFixed(2), r.Product))
	}

	msgs = append(msgs, fmt.Sprintf("🚀 FOCO NA META: R$ %sk",
		goal.Div(decimal.NewFromInt(1000)).String()))
	return msgs
}

package query

import (
	"math"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// ServiceAggregates are the columns of the services stats row.
func ServiceAggregates(table string) []interface{} {
	return []interface{}{
		goqu.COUNT(goqu.Star()).As("total"),
		zeroIfNull(goqu.AVG(col(table, "note"))).As("avg_rating"),
		zeroIfNull(goqu.SUM(col(table, "nombre_avis"))).As("total_reviews"),
	}
}

// AgencyAggregates are the columns of the agencies stats row.
func AgencyAggregates(table string) []interface{} {
	return append(ServiceAggregates(table),
		zeroIfNull(goqu.SUM(col(table, "nombre_clients"))).As("total_clients"),
		zeroIfNull(goqu.SUM(col(table, "annee_experience"))).As("total_experience"),
	)
}

// StatsSQL aggregates over the filtered collection. Ordering and limit are
// deliberately left out: stats describe the whole filtered set.
func (c Collection) StatsSQL(p Params, aggregates []interface{}) (string, []interface{}, error) {
	ds := Apply(c.Base(), c.Filters(p)...)
	return ds.Select(aggregates...).ToSQL()
}

// RoundRating rounds an average rating to one decimal, half away from zero.
// NaN and infinities become 0.
func RoundRating(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

func zeroIfNull(e exp.SQLFunctionExpression) exp.SQLFunctionExpression {
	return goqu.COALESCE(e, goqu.L("0"))
}

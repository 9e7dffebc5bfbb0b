// Package query turns list parameters into Postgres queries for the catalog
// and content collections. Filtering is an explicit, ordered list of
// predicates applied to a goqu dataset; statistics reuse the same filters.
package query

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

// Default orderings, in the same syntax as the ordering parameter.
const (
	DefaultServiceOrder = "-created_at"
	DefaultAgencyOrder  = "-created_at"
	DefaultContentOrder = "ordre,-created_at"
)

var dialect = goqu.Dialect("postgres")

// Predicate narrows or orders a dataset.
type Predicate func(ds *goqu.SelectDataset) *goqu.SelectDataset

// Apply runs the predicates over ds in order.
func Apply(ds *goqu.SelectDataset, preds ...Predicate) *goqu.SelectDataset {
	for _, p := range preds {
		ds = p(ds)
	}
	return ds
}

// Collection describes a listable table.
type Collection struct {
	Table        string
	SearchFields []string
	OrderFields  []string
	DefaultOrder string

	// extra returns collection specific filters.
	extra func(table string, p Params) []Predicate
}

// Services is the public service catalog.
var Services = Collection{
	Table:        "services",
	SearchFields: []string{"nom", "description"},
	OrderFields:  []string{"nom", "note", "created_at"},
	DefaultOrder: DefaultServiceOrder,
}

// Agencies is the public partner agency list.
var Agencies = Collection{
	Table:        "agencies",
	SearchFields: []string{"nom", "description", "ville"},
	OrderFields:  []string{"nom", "ville", "note", "created_at"},
	DefaultOrder: DefaultAgencyOrder,
	extra: func(table string, p Params) []Predicate {
		return []Predicate{
			CityEquals(table, p.City),
			HasServiceNamed(table, p.ServiceName),
		}
	},
}

// Base is the unfiltered dataset.
func (c Collection) Base() *goqu.SelectDataset {
	return dialect.From(c.Table).Prepared(true)
}

// Filters returns the predicates that define the filtered collection.
// Ordering and limit are not part of it.
func (c Collection) Filters(p Params) []Predicate {
	preds := []Predicate{
		ActiveOnly(c.Table),
		ActiveEquals(c.Table, p.Active),
		Search(c.Table, c.SearchFields, p.Search),
		MinRating(c.Table, p.MinRating),
	}
	if c.extra != nil {
		preds = append(preds, c.extra(c.Table, p)...)
	}
	return preds
}

// Pipeline is Filters followed by ordering and the result-count cap.
func (c Collection) Pipeline(p Params) []Predicate {
	return append(c.Filters(p),
		OrderBy(c.Table, c.OrderKeys(p.Ordering)),
		Limit(p.Limit),
	)
}

// OrderKeys keeps the requested keys found in the allow-list and falls back
// to the default ordering when none survive.
func (c Collection) OrderKeys(requested []string) []string {
	allowed := make(map[string]bool, len(c.OrderFields))
	for _, f := range c.OrderFields {
		allowed[f] = true
	}

	var keys []string
	for _, key := range requested {
		if allowed[strings.TrimPrefix(key, "-")] {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return splitOrder(c.DefaultOrder)
	}
	return keys
}

// ListSQL builds the list query.
func (c Collection) ListSQL(p Params) (string, []interface{}, error) {
	ds := c.Base().Select(goqu.T(c.Table).All())
	return Apply(ds, c.Pipeline(p)...).ToSQL()
}

// ByIDSQL builds the detail query; inactive rows are not visible.
func (c Collection) ByIDSQL(id int) (string, []interface{}, error) {
	ds := c.Base().Select(goqu.T(c.Table).All())
	return Apply(ds, ActiveOnly(c.Table), func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		return ds.Where(col(c.Table, "id").Eq(id))
	}).ToSQL()
}

// ContentListSQL lists active content blocks, optionally restricted to one
// type tag, in display order.
func ContentListSQL(blockType string) (string, []interface{}, error) {
	const table = "content_blocks"
	ds := dialect.From(table).Prepared(true).Select(goqu.T(table).All())
	return Apply(ds,
		ActiveOnly(table),
		TypeEquals(table, blockType),
		OrderBy(table, splitOrder(DefaultContentOrder)),
	).ToSQL()
}

// ActiveOnly restricts to visible rows.
func ActiveOnly(table string) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		return ds.Where(col(table, "actif").IsTrue())
	}
}

// ActiveEquals filters on the active flag when requested.
func ActiveEquals(table string, active *bool) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		if active == nil {
			return ds
		}
		return ds.Where(col(table, "actif").Eq(*active))
	}
}

// Search requires every term to appear, case-insensitively, in at least one
// of the fields.
func Search(table string, fields, terms []string) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		if len(terms) == 0 || len(fields) == 0 {
			return ds
		}
		all := make([]exp.Expression, 0, len(terms))
		for _, term := range terms {
			pattern := containsPattern(term)
			matches := make([]exp.Expression, 0, len(fields))
			for _, f := range fields {
				matches = append(matches, col(table, f).ILike(pattern))
			}
			all = append(all, goqu.Or(matches...))
		}
		return ds.Where(goqu.And(all...))
	}
}

// MinRating keeps rows rated at least threshold. NULL ratings never match.
func MinRating(table string, threshold *float64) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		if threshold == nil {
			return ds
		}
		return ds.Where(col(table, "note").Gte(*threshold))
	}
}

// CityEquals filters on the exact city.
func CityEquals(table string, city *string) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		if city == nil {
			return ds
		}
		return ds.Where(col(table, "ville").Eq(*city))
	}
}

// HasServiceNamed keeps agencies linked to at least one service whose name
// contains name, case-insensitively. The link join runs in a subquery so an
// agency matching through several services is returned once.
func HasServiceNamed(table, name string) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		if name == "" {
			return ds
		}
		linked := dialect.From(goqu.T("agency_services").As("link")).
			Prepared(true).
			Join(goqu.T("services").As("svc"), goqu.On(goqu.I("svc.id").Eq(goqu.I("link.service_id")))).
			Where(goqu.I("svc.nom").ILike(containsPattern(name))).
			Select(goqu.I("link.agency_id"))
		return ds.Where(col(table, "id").In(linked))
	}
}

// TypeEquals filters content blocks on their type tag.
func TypeEquals(table, blockType string) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		if blockType == "" {
			return ds
		}
		return ds.Where(col(table, "type").Eq(blockType))
	}
}

// OrderBy sorts by keys ("-" prefix for descending) and then by id
// descending so equal keys keep a stable order.
func OrderBy(table string, keys []string) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		order := make([]exp.OrderedExpression, 0, len(keys)+1)
		for _, key := range keys {
			if name, ok := strings.CutPrefix(key, "-"); ok {
				order = append(order, col(table, name).Desc())
			} else {
				order = append(order, col(table, key).Asc())
			}
		}
		order = append(order, col(table, "id").Desc())
		return ds.Order(order...)
	}
}

// Limit caps the number of rows. A zero limit yields no rows.
func Limit(n *int) Predicate {
	return func(ds *goqu.SelectDataset) *goqu.SelectDataset {
		switch {
		case n == nil:
			return ds
		case *n == 0:
			return ds.Where(goqu.L("FALSE"))
		default:
			return ds.Limit(uint(*n))
		}
	}
}

func col(table, name string) exp.IdentifierExpression {
	return goqu.T(table).Col(name)
}

func splitOrder(order string) []string {
	return strings.Split(order, ",")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

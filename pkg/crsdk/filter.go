package crsdk

// The Control Room /list endpoints all accept the same filter protocol:
// an optional sort order, an optional filter tree, and an optional page
// window, posted as a JSON body.

// Sort orders server-side results by a single field.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Filter is a node in the filter tree. Branch nodes carry an operator
// ("and", "or") and operands; leaf nodes compare a field against a value
// with operators such as "eq", "gt", "lt" and "substring".
type Filter struct {
	Operator string    `json:"operator"`
	Field    string    `json:"field,omitempty"`
	Value    string    `json:"value,omitempty"`
	Operands []*Filter `json:"operands,omitempty"`
}

// Page selects a window of the result set.
type Page struct {
	Length int `json:"length"`
	Offset int `json:"offset"`
}

// FilterBody is the request body shared by the /list endpoints. The zero
// value serializes to {} which the Control Room treats as "everything,
// server defaults".
type FilterBody struct {
	Sort   []Sort  `json:"sort,omitempty"`
	Filter *Filter `json:"filter,omitempty"`
	Page   *Page   `json:"page,omitempty"`
}

const auditPageLength = 1000

// AuditRangeFilter builds the createdOn window filter for audit message
// search: newest first, entries strictly inside the range, first 1000 rows.
func AuditRangeFilter(dr DateRange) FilterBody {
	return FilterBody{
		Sort: []Sort{{Field: "createdOn", Direction: "desc"}},
		Filter: &Filter{
			Operator: "and",
			Operands: []*Filter{
				{Operator: "gt", Field: "createdOn", Value: dr.BeginString(LayoutMillis)},
				{Operator: "lt", Field: "createdOn", Value: dr.EndString(LayoutMillis)},
			},
		},
		Page: &Page{Length: auditPageLength, Offset: 0},
	}
}

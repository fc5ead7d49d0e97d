package resource

import (
	"net/url"
	"strconv"
)

// Order is a sort direction accepted by every list endpoint.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Params is the pagination/sort tuple sent to list endpoints. Page is
// 0-based and passed through to the backend unchanged.
type Params struct {
	Page     int
	PageSize int
	Sort     string
	Order    Order
}

// Equal compares by tuple value; the coordinator refetches only when the
// tuple actually changes.
func (p Params) Equal(other Params) bool {
	return p == other
}

// Query renders the tuple as the backend's query parameters.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Order != "" {
		q.Set("order", string(p.Order))
	}
	return q
}

// CacheKey is a stable string form of the tuple for read-through caching.
func (p Params) CacheKey() string {
	return p.Query().Encode()
}

// Per-screen default sort pairs, as the admin console configures them.
var entityDefaults = map[string]Params{
	"seasons":      {Page: 0, PageSize: 10, Sort: "year", Order: OrderDesc},
	"teams":        {Page: 0, PageSize: 10, Sort: "id", Order: OrderDesc},
	"players":      {Page: 0, PageSize: 10, Sort: "id", Order: OrderAsc},
	"matches":      {Page: 0, PageSize: 10, Sort: "kickoff", Order: OrderDesc},
	"lineups":      {Page: 0, PageSize: 10, Sort: "created_at", Order: OrderDesc},
	"player-stats": {Page: 0, PageSize: 10, Sort: "created_at", Order: OrderDesc},
	"team-stats":   {Page: 0, PageSize: 10, Sort: "season_id", Order: OrderDesc},
	"player-teams": {Page: 0, PageSize: 10, Sort: "id", Order: OrderDesc},
	"articles":     {Page: 0, PageSize: 10, Sort: "date", Order: OrderDesc},
	"users":        {Page: 0, PageSize: 10, Sort: "id", Order: OrderAsc},
}

// DefaultsFor returns the default tuple for an entity's list screen.
// Unknown entities fall back to id ascending.
func DefaultsFor(entity string) Params {
	if p, ok := entityDefaults[entity]; ok {
		return p
	}
	return Params{Page: 0, PageSize: 10, Sort: "id", Order: OrderAsc}
}

// Page is the paginated list payload every entity endpoint returns.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}

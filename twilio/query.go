package twilio

import (
	"net/url"
	"strconv"
)

// Query collects the filter parameters of a list action. The zero value
// filters nothing; each setter narrows the result set. Only the fields
// that were set are emitted.
type Query struct {
	values url.Values
}

// NewQuery returns an empty filter set.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Values returns the accumulated parameters, nil for an empty query.
func (q *Query) Values() url.Values {
	if q == nil || len(q.values) == 0 {
		return nil
	}
	return q.values
}

// To keeps only calls placed to the given number.
func (q *Query) To(number string) *Query {
	q.values.Set("To", number)
	return q
}

// From keeps only calls placed from the given number.
func (q *Query) From(number string) *Query {
	q.values.Set("From", number)
	return q
}

// Status keeps only calls in the given state.
func (q *Query) Status(status CallStatus) *Query {
	q.values.Set("Status", string(status))
	return q
}

// ParentCallSid keeps only the legs spawned by the given call.
func (q *Query) ParentCallSid(sid string) *Query {
	q.values.Set("ParentCallSid", sid)
	return q
}

// StartedAfter keeps calls started after date, formatted YYYY-MM-DD.
func (q *Query) StartedAfter(date string) *Query {
	q.values.Set("StartTime>", date)
	return q
}

// StartedBefore keeps calls started before date, formatted YYYY-MM-DD.
func (q *Query) StartedBefore(date string) *Query {
	q.values.Set("StartTime<", date)
	return q
}

// StartedOn keeps calls started on date, formatted YYYY-MM-DD.
func (q *Query) StartedOn(date string) *Query {
	q.values.Set("StartTime", date)
	return q
}

// EndedAfter keeps calls ended after date, formatted YYYY-MM-DD.
func (q *Query) EndedAfter(date string) *Query {
	q.values.Set("EndTime>", date)
	return q
}

// EndedBefore keeps calls ended before date, formatted YYYY-MM-DD.
func (q *Query) EndedBefore(date string) *Query {
	q.values.Set("EndTime<", date)
	return q
}

// CreatedAfter keeps resources created after date, formatted YYYY-MM-DD.
func (q *Query) CreatedAfter(date string) *Query {
	q.values.Set("DateCreated>", date)
	return q
}

// CreatedBefore keeps resources created before date, formatted YYYY-MM-DD.
func (q *Query) CreatedBefore(date string) *Query {
	q.values.Set("DateCreated<", date)
	return q
}

// CreatedOn keeps resources created on date, formatted YYYY-MM-DD.
func (q *Query) CreatedOn(date string) *Query {
	q.values.Set("DateCreated", date)
	return q
}

// UpdatedAfter keeps resources updated after date, formatted YYYY-MM-DD.
func (q *Query) UpdatedAfter(date string) *Query {
	q.values.Set("DateUpdated>", date)
	return q
}

// UpdatedBefore keeps resources updated before date, formatted YYYY-MM-DD.
func (q *Query) UpdatedBefore(date string) *Query {
	q.values.Set("DateUpdated<", date)
	return q
}

// UpdatedOn keeps resources updated on date, formatted YYYY-MM-DD.
func (q *Query) UpdatedOn(date string) *Query {
	q.values.Set("DateUpdated", date)
	return q
}

// FriendlyName keeps only resources labelled with the given name.
func (q *Query) FriendlyName(name string) *Query {
	q.values.Set("FriendlyName", name)
	return q
}

// PageSize limits how many resources one page carries, 1000 at most.
func (q *Query) PageSize(n int) *Query {
	q.values.Set("PageSize", strconv.Itoa(n))
	return q
}

// Page selects a zero-based result page.
func (q *Query) Page(n int) *Query {
	q.values.Set("Page", strconv.Itoa(n))
	return q
}

// PageToken selects a page by the token from a previous page's
// next_page_uri.
func (q *Query) PageToken(token string) *Query {
	q.values.Set("PageToken", token)
	return q
}

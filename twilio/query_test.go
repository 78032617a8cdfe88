package twilio

import (
	"testing"
)

func TestQueryValues(t *testing.T) {
	t.Run("EmptyIsNil", func(t *testing.T) {
		if v := NewQuery().Values(); v != nil {
			t.Errorf("empty query must produce nil values: %v", v)
		}
		var q *Query
		if v := q.Values(); v != nil {
			t.Errorf("nil query must produce nil values: %v", v)
		}
	})

	t.Run("CallFilters", func(t *testing.T) {
		v := NewQuery().
			To("+15005550006").
			From("+15005550001").
			Status(CallStatusCompleted).
			ParentCallSid("CA1").
			Values()
		if v.Get("To") != "+15005550006" || v.Get("From") != "+15005550001" {
			t.Errorf("wrong number filters: %v", v)
		}
		if v.Get("Status") != "completed" || v.Get("ParentCallSid") != "CA1" {
			t.Errorf("wrong status filters: %v", v)
		}
	})

	t.Run("DateRanges", func(t *testing.T) {
		v := NewQuery().
			StartedAfter("2026-08-01").
			StartedBefore("2026-08-31").
			CreatedOn("2026-08-15").
			CreatedAfter("2026-08-01").
			CreatedBefore("2026-08-31").
			UpdatedOn("2026-08-16").
			UpdatedAfter("2026-08-02").
			UpdatedBefore("2026-08-30").
			Values()
		if v.Get("StartTime>") != "2026-08-01" || v.Get("StartTime<") != "2026-08-31" {
			t.Errorf("wrong start time filters: %v", v)
		}
		if v.Get("DateCreated") != "2026-08-15" || v.Get("DateCreated>") != "2026-08-01" || v.Get("DateCreated<") != "2026-08-31" {
			t.Errorf("wrong date created filters: %v", v)
		}
		if v.Get("DateUpdated") != "2026-08-16" || v.Get("DateUpdated>") != "2026-08-02" || v.Get("DateUpdated<") != "2026-08-30" {
			t.Errorf("wrong date updated filters: %v", v)
		}
	})

	t.Run("Paging", func(t *testing.T) {
		v := NewQuery().PageSize(50).Page(2).PageToken("PAdead").Values()
		if v.Get("PageSize") != "50" || v.Get("Page") != "2" {
			t.Errorf("wrong paging filters: %v", v)
		}
		if v.Get("PageToken") != "PAdead" {
			t.Errorf("wrong page token: %v", v)
		}
	})
}

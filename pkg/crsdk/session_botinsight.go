package crsdk

import (
	"context"
	"strconv"
)

// InsightQuery bounds a Bot Insight data request. The zero value asks for
// server defaults: no date window, default page size, first page.
type InsightQuery struct {
	Range  DateRange
	Limit  int
	PageNo int
}

// params encodes the query in the order the API documents it. Unset fields
// are omitted entirely.
func (q InsightQuery) params() []QueryParam {
	var ps []QueryParam
	if !q.Range.Begin.IsZero() {
		ps = append(ps, QueryParam{Key: "fromDate", Value: q.Range.BeginString(LayoutSeconds)})
	}
	if !q.Range.End.IsZero() {
		ps = append(ps, QueryParam{Key: "toDate", Value: q.Range.EndString(LayoutSeconds)})
	}
	if q.Limit > 0 {
		ps = append(ps, QueryParam{Key: "limit", Value: strconv.Itoa(q.Limit)})
	}
	if q.PageNo > 0 {
		ps = append(ps, QueryParam{Key: "pageNo", Value: strconv.Itoa(q.PageNo)})
	}
	return ps
}

// GetBotRunData returns automation execution telemetry from Bot Insight.
func (s *Session) GetBotRunData(ctx context.Context, q InsightQuery) (*BotRunDataResponse, error) {
	var out BotRunDataResponse
	if err := s.Invoke(ctx, OpBotRunData, nil, q.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTaskLogData returns business task-log records from Bot Insight.
func (s *Session) GetTaskLogData(ctx context.Context, q InsightQuery) (*TaskLogDataResponse, error) {
	var out TaskLogDataResponse
	if err := s.Invoke(ctx, OpTaskLogData, nil, q.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package crsdk

import "context"

// SearchAuditMessages returns audit entries whose createdOn falls strictly
// inside dr, newest first, up to one page of 1000.
func (s *Session) SearchAuditMessages(ctx context.Context, dr DateRange) ([]AuditMessage, error) {
	return s.SearchAuditMessagesFilter(ctx, AuditRangeFilter(dr))
}

// SearchAuditMessagesFilter runs an audit search with a caller-built filter
// body, for queries beyond the standard date window.
func (s *Session) SearchAuditMessagesFilter(ctx context.Context, body FilterBody) ([]AuditMessage, error) {
	var out []AuditMessage
	if err := s.Invoke(ctx, OpAuditMessageList, body, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package crsdk

import "context"

// ListWorkItemModels returns the WLM work item model definitions.
func (s *Session) ListWorkItemModels(ctx context.Context) ([]WorkItemModel, error) {
	var out []WorkItemModel
	if err := s.Invoke(ctx, OpWorkItemModelList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWLMAutomations returns the queue-driven automation registrations.
func (s *Session) ListWLMAutomations(ctx context.Context) ([]WLMAutomation, error) {
	var out []WLMAutomation
	if err := s.Invoke(ctx, OpWLMAutomationList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

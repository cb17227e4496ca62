package crsdk

import "context"

// DeployAutomation starts the automation identified by fileID on the given
// runner users and returns the server-assigned deployment ID.
func (s *Session) DeployAutomation(ctx context.Context, fileID int, runAsUserIDs []int) (string, error) {
	if fileID <= 0 {
		return "", &ValidationError{Field: "fileID", Message: "must be a positive identifier"}
	}
	if len(runAsUserIDs) == 0 {
		return "", &ValidationError{Field: "runAsUserIDs", Message: "at least one runner is required"}
	}

	body := deployRequest{FileID: fileID, RunAsUserIDs: runAsUserIDs}

	var out deployResponse
	if err := s.Invoke(ctx, OpAutomationDeploy, body, nil, &out); err != nil {
		return "", err
	}
	return out.DeploymentID, nil
}

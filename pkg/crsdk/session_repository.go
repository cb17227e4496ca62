package crsdk

import "context"

// ListRepositoryFiles returns the bots and folders in the Control Room
// repository.
func (s *Session) ListRepositoryFiles(ctx context.Context) ([]RepositoryFile, error) {
	var out []RepositoryFile
	if err := s.Invoke(ctx, OpRepositoryFileList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package crsdk

import "context"

// GetLicenseDetails returns the Control Room's installed license.
func (s *Session) GetLicenseDetails(ctx context.Context) (*LicenseDetails, error) {
	var out LicenseDetails
	if err := s.Invoke(ctx, OpLicenseDetails, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProductLicenses returns per-product purchased/used license counters.
func (s *Session) ListProductLicenses(ctx context.Context) ([]ProductLicense, error) {
	var out []ProductLicense
	if err := s.Invoke(ctx, OpProductLicenseList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

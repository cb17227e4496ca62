package crsdk

import "context"

// ListDevices returns the registered bot-agent devices.
func (s *Session) ListDevices(ctx context.Context) ([]Device, error) {
	var out []Device
	if err := s.Invoke(ctx, OpDeviceList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDevicePools returns the configured device pools.
func (s *Session) ListDevicePools(ctx context.Context) ([]DevicePool, error) {
	var out []DevicePool
	if err := s.Invoke(ctx, OpDevicePoolList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRunAsUsers returns the user contexts automations may run under.
func (s *Session) ListRunAsUsers(ctx context.Context) ([]RunAsUser, error) {
	var out []RunAsUser
	if err := s.Invoke(ctx, OpRunAsUserList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package hostapi

// MockScene is a test double for Scene.
type MockScene struct {
	HasActiveObjectFunc  func() (bool, error)
	SetModeFunc          func(mode string) error
	RemoveAllObjectsFunc func() error
	ObjectsFunc          func() ([]string, error)
	DeselectAllFunc      func() error
	ImportOBJFunc        func(path string) error
	AddModifierFunc      func(object, kind string, levels int) error
	ExportOBJFunc        func(path string, opts ExportOptions) error
}

// HasActiveObject calls the mock function, defaulting to false.
func (m *MockScene) HasActiveObject() (bool, error) {
	if m.HasActiveObjectFunc != nil {
		return m.HasActiveObjectFunc()
	}
	return false, nil
}

// SetMode calls the mock function.
func (m *MockScene) SetMode(mode string) error {
	if m.SetModeFunc != nil {
		return m.SetModeFunc(mode)
	}
	return nil
}

// RemoveAllObjects calls the mock function.
func (m *MockScene) RemoveAllObjects() error {
	if m.RemoveAllObjectsFunc != nil {
		return m.RemoveAllObjectsFunc()
	}
	return nil
}

// Objects calls the mock function, defaulting to no objects.
func (m *MockScene) Objects() ([]string, error) {
	if m.ObjectsFunc != nil {
		return m.ObjectsFunc()
	}
	return nil, nil
}

// DeselectAll calls the mock function.
func (m *MockScene) DeselectAll() error {
	if m.DeselectAllFunc != nil {
		return m.DeselectAllFunc()
	}
	return nil
}

// ImportOBJ calls the mock function.
func (m *MockScene) ImportOBJ(path string) error {
	if m.ImportOBJFunc != nil {
		return m.ImportOBJFunc(path)
	}
	return nil
}

// AddModifier calls the mock function.
func (m *MockScene) AddModifier(object, kind string, levels int) error {
	if m.AddModifierFunc != nil {
		return m.AddModifierFunc(object, kind, levels)
	}
	return nil
}

// ExportOBJ calls the mock function.
func (m *MockScene) ExportOBJ(path string, opts ExportOptions) error {
	if m.ExportOBJFunc != nil {
		return m.ExportOBJFunc(path, opts)
	}
	return nil
}

// MockAPI is a test double for API.
type MockAPI struct {
	SceneValue   Scene
	Version      string
	Argv         []string
	CloseFunc    func() error
	CloseCallCnt int
}

func (m *MockAPI) Scene() Scene        { return m.SceneValue }
func (m *MockAPI) HostVersion() string { return m.Version }
func (m *MockAPI) HostArgv() []string  { return m.Argv }

func (m *MockAPI) Close() error {
	m.CloseCallCnt++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockAcquirer is a test double for Acquirer.
type MockAcquirer struct {
	AcquireFunc func() (API, error)
	Calls       int
}

func (m *MockAcquirer) Acquire() (API, error) {
	m.Calls++
	if m.AcquireFunc != nil {
		return m.AcquireFunc()
	}
	return nil, ErrNoAPI
}

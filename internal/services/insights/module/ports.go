package module

import dom "tubelens/internal/services/insights/domain"

// Ports holds the ports exposed by the insights module
type Ports struct {
	Archiver dom.ArchivePort
	Service  dom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

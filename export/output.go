package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/orbit/config"
	"github.com/pthm-cable/orbit/scene"
)

// OutputManager writes visualization results to an output directory.
type OutputManager struct {
	dir          string
	sphereFile   *os.File
	childFile    *os.File
	particleFile *os.File

	// Track if headers have been written
	sphereHeaderWritten   bool
	childHeaderWritten    bool
	particleHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled). particles.csv is only
// created when withParticles is set.
func NewOutputManager(dir string, withParticles bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "spheres.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating spheres.csv: %w", err)
	}
	om.sphereFile = f

	f, err = os.Create(filepath.Join(dir, "children.csv"))
	if err != nil {
		om.sphereFile.Close()
		return nil, fmt.Errorf("creating children.csv: %w", err)
	}
	om.childFile = f

	if withParticles {
		f, err = os.Create(filepath.Join(dir, "particles.csv"))
		if err != nil {
			om.sphereFile.Close()
			om.childFile.Close()
			return nil, fmt.Errorf("creating particles.csv: %w", err)
		}
		om.particleFile = f
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteScene writes every sphere of s and returns the sphere summaries.
func (om *OutputManager) WriteScene(s *scene.Scene) ([]SphereRecord, error) {
	spheres := s.Spheres()
	records := make([]SphereRecord, len(spheres))
	for i, sp := range spheres {
		records[i] = NewSphereRecord(i, sp)
	}
	if om == nil {
		return records, nil
	}

	if err := writeRows(om.sphereFile, records, &om.sphereHeaderWritten); err != nil {
		return nil, fmt.Errorf("writing spheres: %w", err)
	}

	var children []ChildRecord
	for i, sp := range spheres {
		children = append(children, ChildRecords(i, sp)...)
	}
	if err := writeRows(om.childFile, children, &om.childHeaderWritten); err != nil {
		return nil, fmt.Errorf("writing children: %w", err)
	}

	if om.particleFile != nil {
		// One sphere at a time keeps the row buffer to a single cloud
		for i, sp := range spheres {
			if err := writeRows(om.particleFile, ParticleRecords(i, sp), &om.particleHeaderWritten); err != nil {
				return nil, fmt.Errorf("writing particles: %w", err)
			}
		}
	}

	return records, nil
}

// writeRows marshals rows, with a header on the first write only.
func writeRows[T any](f *os.File, rows []T, headerWritten *bool) error {
	if len(rows) == 0 {
		return nil
	}
	if !*headerWritten {
		if err := gocsv.Marshal(rows, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(rows, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.sphereFile, om.childFile, om.particleFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

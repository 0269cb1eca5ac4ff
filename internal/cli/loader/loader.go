package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/types"
)

// RequestFile represents data request definitions loaded from a YAML file.
type RequestFile struct {
	// Kind must be "DataRequest"
	Kind string `yaml:"kind"`
	// Spec holds one or more request specifications
	Spec []RequestSpec `yaml:"spec"`
}

// RequestSpec defines one data request.
type RequestSpec struct {
	CompanyID       string `yaml:"companyId"`
	DataType        string `yaml:"dataType"`
	ReportingPeriod string `yaml:"reportingPeriod"`
	MemberComment   string `yaml:"memberComment,omitempty"`
}

// LoadFromFile loads data request definitions from a YAML file.
func LoadFromFile(filepath string) (*RequestFile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file RequestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if file.Kind == "" {
		return nil, fmt.Errorf("'kind' field is required")
	}
	if file.Kind != "DataRequest" {
		return nil, fmt.Errorf("invalid kind '%s', must be 'DataRequest'", file.Kind)
	}
	if len(file.Spec) == 0 {
		return nil, fmt.Errorf("spec must contain at least one request")
	}

	return &file, nil
}

// ToCreateRequestBodies converts the file contents to API request bodies.
func (f *RequestFile) ToCreateRequestBodies() ([]*types.CreateRequestBody, error) {
	bodies := make([]*types.CreateRequestBody, 0, len(f.Spec))
	for i, spec := range f.Spec {
		if spec.CompanyID == "" {
			return nil, fmt.Errorf("spec[%d].companyId is required", i)
		}
		if spec.DataType == "" {
			return nil, fmt.Errorf("spec[%d].dataType is required", i)
		}
		if spec.ReportingPeriod == "" {
			return nil, fmt.Errorf("spec[%d].reportingPeriod is required", i)
		}

		body := &types.CreateRequestBody{
			CompanyID:       spec.CompanyID,
			DataType:        spec.DataType,
			ReportingPeriod: spec.ReportingPeriod,
		}
		if spec.MemberComment != "" {
			comment := spec.MemberComment
			body.MemberComment = &comment
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

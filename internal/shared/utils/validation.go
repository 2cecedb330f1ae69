package utils

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Request body limits
const (
	MaxJSONSize  = 1 * 1024 * 1024 // 1MB
	MaxJSONDepth = 32
)

// JSONValidator checks size and nesting of JSON payloads before they are
// decoded into request types.
type JSONValidator struct {
	maxSize  int
	maxDepth int
}

// NewJSONValidator creates a validator with the given limits
func NewJSONValidator(maxSize, maxDepth int) *JSONValidator {
	return &JSONValidator{maxSize: maxSize, maxDepth: maxDepth}
}

// DefaultJSONValidator returns a validator with the default limits
func DefaultJSONValidator() *JSONValidator {
	return NewJSONValidator(MaxJSONSize, MaxJSONDepth)
}

// MaxSize returns the configured size limit in bytes
func (v *JSONValidator) MaxSize() int {
	return v.maxSize
}

// ValidateSize checks data against the size limit
func (v *JSONValidator) ValidateSize(data []byte) error {
	if len(data) > v.maxSize {
		return fmt.Errorf("JSON size %d bytes exceeds maximum %d bytes", len(data), v.maxSize)
	}
	return nil
}

// ValidateJSON checks size, syntax and nesting depth
func (v *JSONValidator) ValidateJSON(data []byte) error {
	if err := v.ValidateSize(data); err != nil {
		return err
	}

	var doc interface{}
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return checkDepth(doc, 0, v.maxDepth)
}

func checkDepth(data interface{}, depth, maxDepth int) error {
	if depth > maxDepth {
		return fmt.Errorf("JSON nesting depth %d exceeds maximum %d", depth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}

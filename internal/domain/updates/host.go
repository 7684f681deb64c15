package updates

import (
	"errors"
	"fmt"
)

const (
	// propertiesKey is the top-level ENC mapping holding host properties.
	propertiesKey = "properties"
	// updatesKey is the property read and written by this tool.
	updatesKey = "updates"
)

var (
	// ErrNoUpdatesKey is returned when a host document lacks properties.updates.
	ErrNoUpdatesKey = errors.New("host document has no updates key")
	// ErrBadDocument is returned when the document structure around the
	// updates key has an unexpected shape.
	ErrBadDocument = errors.New("unexpected host document structure")
)

// Host is one ENC document together with the host name it belongs to.
// The document keeps every key the classifier put there; only the updates
// property is ever interpreted or changed.
type Host struct {
	// name is the host name, derived from the file name without extension.
	name string
	// document is the decoded YAML mapping of the ENC file.
	document map[string]any
}

// NewHost wraps a decoded ENC document.
func NewHost(name string, document map[string]any) *Host {
	if document == nil {
		document = make(map[string]any)
	}

	return &Host{
		name:     name,
		document: document,
	}
}

// Name returns the host name.
func (h *Host) Name() string {
	return h.name
}

// Document returns the underlying ENC mapping for persistence.
func (h *Host) Document() map[string]any {
	return h.document
}

// UpdateMode reads the updates property.
// The value must exist and be a string; the tool never guesses a default.
func (h *Host) UpdateMode() (UpdateMode, error) {
	properties, err := h.properties()
	if err != nil {
		return "", err
	}

	raw, ok := properties[updatesKey]
	if !ok {
		return "", ErrNoUpdatesKey
	}

	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: updates is %T, not a string", ErrBadDocument, raw)
	}

	return UpdateMode(value), nil
}

// SetUpdateMode writes the updates property.
// It fails when the key is absent so that a mistyped ENC file is never
// silently repaired.
func (h *Host) SetUpdateMode(mode UpdateMode) error {
	properties, err := h.properties()
	if err != nil {
		return err
	}

	if _, ok := properties[updatesKey]; !ok {
		return ErrNoUpdatesKey
	}

	properties[updatesKey] = mode.String()

	return nil
}

// properties resolves the properties mapping of the document.
func (h *Host) properties() (map[string]any, error) {
	raw, ok := h.document[propertiesKey]
	if !ok {
		return nil, ErrNoUpdatesKey
	}

	properties, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: properties is %T, not a mapping", ErrBadDocument, raw)
	}

	return properties, nil
}

package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// JSON renders the document as indented JSON. Map keys are emitted in
// sorted order, so equal documents render to equal bytes.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return data, nil
}

// YAML renders the document as YAML
func (d *Document) YAML() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert document to yaml: %w", err)
	}
	return out, nil
}

// Checksum returns the sha256 of the rendered JSON
func (d *Document) Checksum() (string, error) {
	data, err := d.JSON()
	if err != nil {
		return "", err
	}
	return ChecksumOf(data), nil
}

// ChecksumOf returns the hex sha256 of data
func ChecksumOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

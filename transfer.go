package showroom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kiltia/showroom/pkg/log"
)

const (
	ExportVersion = "1.0.0"
	// MediaType of exported documents.
	MediaType = "application/json"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ExportDocument is the on-disk envelope of an exported configuration.
type ExportDocument struct {
	Version       string        `json:"version"`
	Timestamp     string        `json:"timestamp"`
	Configuration Configuration `json:"configuration"`
}

// ExportFileName is the name offered when an export is downloaded or saved.
func ExportFileName(at time.Time) string {
	return "ui-config-" + at.UTC().Format(time.DateOnly) + ".json"
}

// ExportConfiguration serializes the current tree together with the format
// version and the capture time.
func (s *Store) ExportConfiguration() (string, error) {
	doc := ExportDocument{
		Version:       ExportVersion,
		Timestamp:     s.now().UTC().Format(timestampLayout),
		Configuration: s.Configuration(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding export document: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ImportConfiguration replaces the whole tree with the configuration found
// in an exported document. It returns false and leaves the store untouched
// when the text is not JSON or the configuration fails the shape check; the
// reason is reported to the store's logger.
func (s *Store) ImportConfiguration(text string) bool {
	cfg, partial, err := decodeImport(text)
	if err != nil {
		s.log.Error(
			"failed to import configuration",
			log.L().Tag(log.LogTagImport).Error(err),
		)
		return false
	}
	if partial != nil {
		s.log.Warn(
			"imported configuration has members of unexpected type, leaving them empty",
			log.L().Tag(log.LogTagImport).Error(partial),
		)
	}
	s.write(OpImport, "", func(Configuration) Configuration {
		return cfg
	})
	s.log.Info(
		"configuration imported",
		log.L().Tag(log.LogTagImport).Add("bytes", len(text)),
	)
	return true
}

// decodeImport returns the decoded tree, or an error when the document must
// be rejected. partial reports members that were skipped while decoding an
// otherwise accepted document.
func decodeImport(text string) (cfg Configuration, partial error, err error) {
	var doc any
	if err = json.Unmarshal([]byte(text), &doc); err != nil {
		return cfg, nil, fmt.Errorf("parsing document: %w", err)
	}

	raw := lookup(doc, "configuration")
	if !truthy(raw) {
		return cfg, nil, fmt.Errorf(
			"%w: document has no configuration",
			ErrInvalidShape,
		)
	}
	if err = checkShape(raw); err != nil {
		return cfg, nil, err
	}

	// The shape check only samples a few members, so the rest may not fit
	// the typed tree. encoding/json skips such members and keeps going;
	// they are left at their zero value.
	blob, err := json.Marshal(raw)
	if err != nil {
		return cfg, nil, fmt.Errorf("re-encoding configuration: %w", err)
	}
	if decodeErr := json.Unmarshal(blob, &cfg); decodeErr != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(decodeErr, &typeErr) {
			return Configuration{}, nil, fmt.Errorf("decoding configuration: %w", decodeErr)
		}
		partial = decodeErr
	}
	return cfg, partial, nil
}

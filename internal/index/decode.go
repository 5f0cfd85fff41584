package index

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var errNotRecordList = errors.New("payload is not a list of records")

// DecodeNodes parses a NODES payload.
// Records are decoded with weak typing so spreadsheet exports with numeric cells still load.
func DecodeNodes(data []byte) ([]domain.Node, error) {
	return decodeTable[domain.Node](data)
}

// DecodeChoices parses a CHOICES payload.
func DecodeChoices(data []byte) ([]domain.Choice, error) {
	return decodeTable[domain.Choice](data)
}

func decodeTable[T any](data []byte) ([]T, error) {
	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for i, rec := range records {
		var item T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &item,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// decodeRecords accepts a JSON array of objects or a YAML sequence of mappings.
func decodeRecords(data []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errNotRecordList
	}

	var records []map[string]any
	if trimmed[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}

	if records == nil {
		return nil, errNotRecordList
	}
	return records, nil
}

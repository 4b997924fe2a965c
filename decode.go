package devfolio

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/devfolio/pkg/loader"
	"github.com/aretw0/devfolio/pkg/schema"
)

// normalizeInput turns the accepted input forms into the untyped tree the
// schema engine walks. Raw JSON is decoded with json.Number so integers keep
// their precision; typed documents are converted through their JSON form.
func normalizeInput(data any) (any, error) {
	switch in := data.(type) {
	case []byte:
		return loader.JSON(in)
	case json.RawMessage:
		return loader.JSON(in)
	case Document:
		return toUntyped(&in)
	case *Document:
		if in == nil {
			return nil, nil
		}
		return toUntyped(in)
	default:
		return data, nil
	}
}

func toUntyped(doc *Document) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return loader.JSON(data)
}

// decodeDocument maps a validated tree onto the typed model.
func decodeDocument(value any) (*Document, error) {
	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &doc,
		TagName:    "mapstructure",
		DecodeHook: numberHook,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(value); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// numberHook decodes json.Number literals the validator accepted, including
// ones beyond the float64 range, which mapstructure would refuse.
func numberHook(from, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.Float64 {
		return data, nil
	}
	f, ok := schema.Float(n)
	if !ok {
		return data, nil
	}
	return f, nil
}

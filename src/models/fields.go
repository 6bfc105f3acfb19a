package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"Backend-Medical-Intake/src/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Fields is the ordered field list of a form. At rest it may be found either
// as a native array or as a JSON string holding that array; both decode to
// the same slice. A string that does not parse yields an empty list.
//
// Encodings on write: JSON (local ledger, HTTP) writes a native array,
// BSON (remote database) writes the JSON string.
type Fields []FormField

func (f Fields) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]FormField(f))
}

func (f *Fields) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*f = Fields{}
		return nil
	case data[0] == '"':
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		*f = parseEncodedFields(encoded)
		return nil
	}

	var list []FormField
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if list == nil {
		list = []FormField{}
	}
	*f = list
	return nil
}

func (f Fields) MarshalBSONValue() (bsontype.Type, []byte, error) {
	encoded, err := f.Encode()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(encoded)
}

func (f *Fields) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*f = parseEncodedFields(raw.StringValue())
		return nil
	case bson.TypeArray:
		var list []FormField
		if err := raw.Unmarshal(&list); err != nil {
			return err
		}
		if list == nil {
			list = []FormField{}
		}
		*f = list
		return nil
	case bson.TypeNull, bson.TypeUndefined:
		*f = Fields{}
		return nil
	}
	return fmt.Errorf("fields: cannot decode BSON %s", t)
}

// Encode returns the serialized-string form of the list.
func (f Fields) Encode() (string, error) {
	b, err := f.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseEncodedFields(encoded string) Fields {
	if encoded == "" {
		return Fields{}
	}
	var list []FormField
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		logger.WithError(err).Warn("⚠️ Malformed form fields, treating as empty")
		return Fields{}
	}
	if list == nil {
		return Fields{}
	}
	return list
}

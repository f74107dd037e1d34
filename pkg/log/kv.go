package log

import "fmt"

const (
	// Used when a value is missing for a key in attribute pairs
	missingAttributeValue = "MISSING"
	// Used as the key when an invalid (non-string) key is encountered
	invalidAttributeKey = "invalidKeysAndValues"
)

// FieldsFromKV converts alternating keys and values into Fields.
// A trailing key without a value gets "MISSING". A non-string key stops the
// conversion and the remainder is kept under "invalidKeysAndValues".
func FieldsFromKV(keysAndValues ...any) []Field {
	if len(keysAndValues) == 0 {
		return nil
	}
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues[:len(keysAndValues):len(keysAndValues)], missingAttributeValue)
	}

	fields := make([]Field, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			fields = append(fields, Field{
				Key:   invalidAttributeKey,
				Value: fmt.Sprint(keysAndValues[i:]),
			})
			break
		}
		fields = append(fields, Field{Key: key, Value: keysAndValues[i+1]})
	}

	return fields
}

// KVFromFields flattens fields back into alternating keys and values.
func KVFromFields(fields []Field) []any {
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

// Package payload merges decrypted JSON payloads with legacy plaintext
// columns on read paths.
//
// Rows written before field encryption was introduced carry their values in
// plaintext columns; newer rows keep them inside an encrypted JSON object.
// [Project] picks, field by field, the decrypted value when it exists and the
// plaintext column otherwise.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
)

// Opener decrypts a serialized envelope. [crypto.FieldCipher] satisfies it.
type Opener interface {
	Open(bundle string) (string, error)
}

// Sealer encrypts a plaintext into a serialized envelope. [crypto.FieldCipher]
// satisfies it.
type Sealer interface {
	Seal(plaintext string) (string, error)
}

// Project returns a map holding exactly the requested fields. For every field
// the payload value wins when payload is non-nil and contains the key, even if
// the stored value is nil. Otherwise the fallback value is used, and nil when
// neither has it.
func Project(payload, fallback map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if payload != nil {
			if v, ok := payload[f]; ok {
				out[f] = v
				continue
			}
		}
		if v, ok := fallback[f]; ok {
			out[f] = v
			continue
		}
		out[f] = nil
	}
	return out
}

// DecryptPayload opens bundle with key and parses the plaintext as a JSON
// object. Any failure yields nil, which [Project] treats as "no payload".
func DecryptPayload(bundle string, key []byte) map[string]any {
	env, ok := crypto.Deserialize(bundle)
	if !ok {
		return nil
	}
	plaintext, err := crypto.Decrypt(env, key)
	if err != nil {
		return nil
	}
	return parseObject(plaintext)
}

// Open is DecryptPayload for callers that hold an [Opener] instead of raw
// key bytes.
func Open(bundle string, o Opener) map[string]any {
	if bundle == "" || o == nil {
		return nil
	}
	plaintext, err := o.Open(bundle)
	if err != nil {
		return nil
	}
	return parseObject(plaintext)
}

// Seal JSON-encodes v and encrypts it with s. A nil or empty object is not
// sealed: the empty string is returned so the column stays NULL.
func Seal(v map[string]any, s Sealer) (string, error) {
	if len(v) == 0 {
		return "", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	bundle, err := s.Seal(string(data))
	if err != nil {
		return "", fmt.Errorf("seal payload: %w", err)
	}
	return bundle, nil
}

func parseObject(s string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil
	}
	// "null" decodes into a nil map without error.
	return obj
}

package fieldtype

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

// Address is the composite value produced by the address type: a free-form
// address line with coordinates and an optional HMAC signature issued by a
// trusted geocoder.
type Address struct {
	Address   string  `json:"address"`
	Lng       float64 `json:"lng"`
	Lat       float64 `json:"lat"`
	Signature string  `json:"sig,omitempty"`
}

var (
	addressSecretMu sync.RWMutex
	addressSecret   []byte
)

// SetAddressSecret installs the process-wide key used to verify address
// signatures. While the key is unset, signatures are not checked. Like the
// registries, this is meant to be called once during application startup.
func SetAddressSecret(key []byte) {
	addressSecretMu.Lock()
	defer addressSecretMu.Unlock()
	addressSecret = key
}

func registerAddress(m map[string]Type) {
	m["address"] = Type{
		Pre:   preAddress,
		Valid: validAddress,
	}
}

func preAddress(raw string) any {
	var a Address
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &a); err != nil {
		return raw
	}
	return a
}

func validAddress(v any) string {
	a, ok := v.(Address)
	if !ok {
		return "must be an address object"
	}
	if strings.TrimSpace(a.Address) == "" {
		return "address text is required"
	}
	if a.Lat < -90 || a.Lat > 90 {
		return "latitude must be between -90 and 90"
	}
	if a.Lng < -180 || a.Lng > 180 {
		return "longitude must be between -180 and 180"
	}
	if a.Signature != "" {
		addressSecretMu.RLock()
		key := addressSecret
		addressSecretMu.RUnlock()
		if len(key) > 0 && !verifyAddressSignature(a, key) {
			return "address signature mismatch"
		}
	}
	return ""
}

func verifyAddressSignature(a Address, key []byte) bool {
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s|%g|%g", a.Address, a.Lng, a.Lat)
	want := mac.Sum(nil)
	got, err := hex.DecodeString(a.Signature)
	if err != nil {
		return false
	}
	return hmac.Equal(want, got)
}

// SignAddress computes the signature a trusted producer attaches to an
// address payload. Exposed so hosts can issue signed addresses with the same
// key they install via SetAddressSecret.
func SignAddress(a Address, key []byte) string {
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s|%g|%g", a.Address, a.Lng, a.Lat)
	return hex.EncodeToString(mac.Sum(nil))
}

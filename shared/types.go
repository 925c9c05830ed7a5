package shared

// Namespace groups a set of currency codes.
type Namespace string

const (
	ISO4217         Namespace = "ISO-4217"
	ISO4217Historic Namespace = "ISO-4217-HISTORIC"

	DefaultNamespace = ISO4217
)

// KeySeparator joins namespace and code into a registry key. It is not a legal
// character in either.
const KeySeparator = "|"

// RefSeparator joins code and namespace in the text form of a currency, as in
// "XYZ;CUSTOM". It is not a legal character in either.
const RefSeparator = ";"

// DefaultSymbol is the generic currency sign used when a definition has none.
const DefaultSymbol = "¤"

func (n Namespace) String() string {
	return string(n)
}

// CurrencyRecord is the flat, serializable form of a currency definition carried
// by events and snapshots. Dates use the YYYY-MM-DD layout; empty means unbounded.
type CurrencyRecord struct {
	Code        string    `json:"code"`
	NumericCode string    `json:"numericCode,omitempty"`
	Digits      string    `json:"digits"`
	EnglishName string    `json:"englishName,omitempty"`
	Symbol      string    `json:"symbol,omitempty"`
	Namespace   Namespace `json:"namespace"`
	ValidFrom   string    `json:"validFrom,omitempty"`
	ValidTo     string    `json:"validTo,omitempty"`
}

// Key is the registry key of the record.
func (r CurrencyRecord) Key() string {
	return Key(r.Namespace, r.Code)
}

// Key joins a namespace and a code into a registry key.
func Key(ns Namespace, code string) string {
	return string(ns) + KeySeparator + code
}

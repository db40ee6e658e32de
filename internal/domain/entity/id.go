package entity

// ID is the opaque identifier of a stored document. Each persistence adapter
// converts it to and from its native key.
type ID string

// String returns the identifier in its textual form.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// ParseID validates s and converts it into an ID.
// Returns a ValidationError for the "id" field when s is malformed.
func ParseID(s string) (ID, error) {
	return ParseFieldID("id", s)
}

// ParseFieldID is ParseID with the field name reported in the ValidationError.
func ParseFieldID(field, s string) (ID, error) {
	if err := ValidateID(field, s); err != nil {
		return "", err
	}
	return ID(s), nil
}

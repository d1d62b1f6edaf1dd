package mask

// Input is a field whose displayed value is kept masked while the
// underlying digits stay available for validation.
type Input struct {
	masks    Dynamic
	unmasked string
}

// NewInput creates an empty masked input
func NewInput(masks Dynamic) *Input {
	return &Input{masks: masks}
}

// SetValue replaces the field content with raw and returns the new
// display value.
func (i *Input) SetValue(raw string) string {
	digits := Digits(raw)
	if limit := i.masks.MaxDigits(); len(digits) > limit {
		digits = digits[:limit]
	}
	i.unmasked = digits
	return i.Value()
}

// Value is what the user sees
func (i *Input) Value() string {
	return i.masks.Resolve(len(i.unmasked)).Apply(i.unmasked)
}

// UnmaskedValue returns the digits without any literal
func (i *Input) UnmaskedValue() string {
	return i.unmasked
}

// Reset clears the field
func (i *Input) Reset() {
	i.SetValue("")
}

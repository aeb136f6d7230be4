package domain

import "encoding/json"

// Attainable is a quantity that either has a finite value or is never
// reached, e.g. the payback period of a business that does not profit.
// The zero value is "never".
type Attainable struct {
	value float64
	ok    bool
}

// AttainableAt returns a reachable quantity.
func AttainableAt(v float64) Attainable {
	return Attainable{value: v, ok: true}
}

// Never returns a quantity that is never reached.
func Never() Attainable {
	return Attainable{}
}

// Value returns the quantity and whether it is reachable.
func (a Attainable) Value() (float64, bool) {
	return a.value, a.ok
}

func (a Attainable) IsNever() bool {
	return !a.ok
}

type attainableJSON struct {
	Attainable bool     `json:"attainable"`
	Value      *float64 `json:"value,omitempty"`
}

func (a Attainable) MarshalJSON() ([]byte, error) {
	out := attainableJSON{Attainable: a.ok}
	if a.ok {
		v := a.value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (a *Attainable) UnmarshalJSON(data []byte) error {
	var in attainableJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Attainable && in.Value != nil {
		*a = AttainableAt(*in.Value)
		return nil
	}
	*a = Never()
	return nil
}

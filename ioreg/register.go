package ioreg

import "sort"

// Field is a run of Size bits starting at bit Index.
type Field struct {
	Index uint8
	Size  uint8
}

func (f Field) mask() uint8 {
	return uint8((uint16(1)<<f.Size)-1) << f.Index
}

// Register is an 8-bit register addressed by named bit fields.
type Register struct {
	fields map[string]Field
	values map[string]uint8
	Reg    uint8
}

func CreateRegister(fields map[string]Field) Register {
	reg := Register{
		fields: fields,
		values: make(map[string]uint8),
	}
	for key := range reg.fields {
		reg.values[key] = 0
	}
	return reg
}

// SetField stores value into the named field, truncating it to the field
// width. Unknown names are ignored.
func (r *Register) SetField(key string, value uint8) {
	field, ok := r.fields[key]
	if !ok {
		return
	}
	mask := field.mask()
	r.SetReg((r.Reg &^ mask) | (mask & (value << field.Index)))
}

func (r *Register) SetReg(value uint8) {
	r.Reg = value
	if r.values == nil {
		r.values = make(map[string]uint8)
	}
	for key, field := range r.fields {
		r.values[key] = (r.Reg & field.mask()) >> field.Index
	}
}

func (r *Register) GetField(key string) uint8 {
	field, ok := r.values[key]
	if !ok {
		panic("Field " + key + " not found")
	}
	return field
}

// Names lists the field names in bit order.
func (r *Register) Names() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return r.fields[names[i]].Index < r.fields[names[j]].Index
	})
	return names
}

// Fields returns every field value keyed by name.
func (r *Register) Fields() map[string]uint8 {
	out := make(map[string]uint8)
	for k := range r.fields {
		out[k] = r.GetField(k)
	}
	return out
}

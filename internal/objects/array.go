package objects

import "github.com/cwbudde/ecmacore/internal/values"

const lengthKey = "length"

// NewArrayObject builds an Array exotic object (§4.2 "Array exotic").
// `length` is installed as a non-enumerable, writable, configurable=false
// data property, matching spec's ArrayCreate.
func NewArrayObject(proto Value, initial []Value) *Object {
	o := NewObject(proto)
	o.Class = "Array"
	o.Methods.DefineOwnProperty = arrayDefineOwnProperty
	o.storeProperty(StringKey(lengthKey), &PropertyDescriptor{
		Kind: DataDescriptor, Value: values.Number(float64(len(initial))), Writable: true,
		hasValue: true, hasWritable: true, hasEnumerable: true, hasConfigurable: true,
	})
	for i, v := range initial {
		o.OrdinaryDefineOwnProperty(StringKey(uitoa(uint64(i))), NewDataDescriptor(v, true, true, true))
	}
	return o
}

// arrayDefineOwnProperty implements ArraySetLength plus the ordinary
// index-bookkeeping (§4.2: "length property-set truncates or extends,
// deleting elements with index >= new length beginning from the highest;
// writes beyond length extend it. Non-configurable elements block
// truncation past them").
func arrayDefineOwnProperty(o *Object, key PropertyKey, desc *PropertyDescriptor) bool {
	if !key.IsSymbol() && key.String() == lengthKey {
		return arraySetLength(o, desc)
	}
	if !key.IsSymbol() {
		if idx, ok := IsArrayIndex(key.String()); ok {
			lenDesc, _ := o.OrdinaryGetOwnProperty(StringKey(lengthKey))
			oldLen := uint32(values.ToLength(lenDesc.Value.(values.Number)))
			if idx >= oldLen && !lenDesc.Writable {
				return false
			}
			if !o.OrdinaryDefineOwnProperty(key, desc) {
				return false
			}
			if idx >= oldLen {
				newLenDesc := lenDesc.Clone()
				newLenDesc.Value = values.Number(float64(idx) + 1)
				o.storeProperty(StringKey(lengthKey), newLenDesc)
			}
			return true
		}
	}
	return o.OrdinaryDefineOwnProperty(key, desc)
}

func arraySetLength(o *Object, desc *PropertyDescriptor) bool {
	if !desc.hasValue {
		return o.OrdinaryDefineOwnProperty(StringKey(lengthKey), desc)
	}
	newLenNum := values.ToUint32(values.ToNumberPrimitive(desc.Value))
	numberLen := values.ToNumberPrimitive(desc.Value)
	if float64(newLenNum) != values.ToInteger(numberLen) {
		// RangeError in the engine's array-length coercion wrapper; the
		// objects package reports failure, the caller raises the error.
		return false
	}
	lenDesc, _ := o.OrdinaryGetOwnProperty(StringKey(lengthKey))
	oldLen := uint32(values.ToLength(lenDesc.Value.(values.Number)))

	newDesc := desc.Clone()
	newDesc.Value = values.Number(float64(newLenNum))

	if newLenNum >= oldLen {
		return o.OrdinaryDefineOwnProperty(StringKey(lengthKey), newDesc)
	}
	if !lenDesc.Writable {
		return false
	}
	newWritable := true
	if newDesc.hasWritable && !newDesc.Writable {
		newWritable = false
		newDesc.Writable = true // delete non-writable-ly only at the very end, per spec
	}
	// Delete elements from the top down; stop (and report the descriptor
	// as partially applied) at the first non-configurable element.
	for idx := oldLen; idx > newLenNum; idx-- {
		key := StringKey(uitoa(uint64(idx - 1)))
		if !o.OrdinaryDelete(key) {
			newDesc.Value = values.Number(float64(idx))
			if !newWritable {
				newDesc.Writable = false
			}
			o.OrdinaryDefineOwnProperty(StringKey(lengthKey), newDesc)
			return false
		}
	}
	if !newWritable {
		newDesc.Writable = false
	}
	return o.OrdinaryDefineOwnProperty(StringKey(lengthKey), newDesc)
}

// ArrayLength reads the current `length` own property as a plain uint32,
// a convenience for the Array.prototype builtins.
func ArrayLength(o *Object) uint32 {
	d, ok := o.OrdinaryGetOwnProperty(StringKey(lengthKey))
	if !ok {
		return 0
	}
	return uint32(values.ToLength(d.Value.(values.Number)))
}

package rasterconv

// Sample is the set of supported channel encodings: byte samples in [0,255]
// and unit samples in [0,1].
type Sample interface {
	uint8 | float32
}

// ToUnit returns v as a unit sample.
func ToUnit[T Sample](v T) float32 {
	switch v := any(v).(type) {
	case uint8:
		return float32(v) / 255.0
	case float32:
		return v
	}
	return 0
}

// ToByte returns v as a byte sample. Unit samples are scaled by 255 and
// truncated toward zero. Results outside [0,255] saturate, NaN becomes 0.
func ToByte[T Sample](v T) uint8 {
	switch v := any(v).(type) {
	case uint8:
		return v
	case float32:
		x := v * 255.0
		if !(x > 0) {
			return 0
		}
		if x >= 255 {
			return 255
		}
		return uint8(x)
	}
	return 0
}

// FromByte converts a byte sample into the encoding T.
func FromByte[T Sample](b uint8) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(float32(b) / 255.0)
	}
	return T(b)
}

// FromUnit converts a unit sample into the encoding T.
func FromUnit[T Sample](u float32) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(ToByte(u))
	}
	return T(u)
}

func convertSample[To, From Sample](v From) To {
	var zero To
	switch any(zero).(type) {
	case uint8:
		return To(ToByte(v))
	}
	return To(ToUnit(v))
}

// IsUnit reports whether T is the unit (float) encoding.
func IsUnit[T Sample]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}

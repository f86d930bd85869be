package domain

// Ratio is a derived percentage or rate whose denominator may legitimately be
// zero. An undefined Ratio is reported as null downstream, never coerced to 0
// or Infinity, so charts can show a gap instead of a misleading value.
type Ratio struct {
	Value   float64
	Defined bool
}

func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Defined: true}
}

func UndefinedRatio() Ratio {
	return Ratio{}
}

// ROIPercent derives return-on-investment from already-summed totals:
// (revenue - spend) / spend * 100. Undefined when spend is zero, including
// the unbounded revenue-without-spend case.
func ROIPercent(revenue, spend float64) Ratio {
	if spend == 0 {
		return UndefinedRatio()
	}
	return DefinedRatio((revenue - spend) / spend * 100)
}

// SharePercent derives a part-of-total percentage. Undefined when the total
// is zero.
func SharePercent(part, total float64) Ratio {
	if total == 0 {
		return UndefinedRatio()
	}
	return DefinedRatio(part / total * 100)
}

// RatePer derives an amount-per-count rate (e.g. cost per click) from summed
// totals. Undefined when the count is zero.
func RatePer(amount float64, count int64) Ratio {
	if count == 0 {
		return UndefinedRatio()
	}
	return DefinedRatio(amount / float64(count))
}

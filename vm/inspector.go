package vm

import "strconv"

// Inspect renders v for logs and debugging: nil, true, 42, "text".
// String content is Go-quoted so control bytes stay visible.
func Inspect(v Value) string {
	switch v.Kind() {
	case KindNil:
		return "nil"
	case KindBool:
		if v == True {
			return "true"
		}
		return "false"
	case KindFixnum:
		n, _ := v.Fixnum()
		return strconv.FormatInt(n, 10)
	case KindString:
		return strconv.Quote(string(v.view()))
	}
	return "<invalid>"
}

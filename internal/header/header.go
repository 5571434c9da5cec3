package header

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/robert-malhotra/go-npy/internal/dtype"
)

// ErrMalformed is returned for header text or prefix bytes that are
// structurally invalid or miss a required key.
var ErrMalformed = errors.New("malformed header")

// Header is the decoded header dict of an array file.
type Header struct {
	Shape        []int
	Kind         dtype.Kind
	Order        dtype.Order
	FortranOrder bool

	// Descr is the descriptor exactly as it appears between the quotes,
	// e.g. "<u4". Format writes it back unchanged.
	Descr string
}

// New builds a header for kind and order. The order is normalized so that
// one-byte kinds carry dtype.OrderNone.
func New(shape []int, kind dtype.Kind, order dtype.Order, fortranOrder bool) (Header, error) {
	if !kind.Valid() {
		return Header{}, fmt.Errorf("%w: %s", dtype.ErrUnsupported, kind)
	}
	normalized, ok := dtype.Normalize(kind, order)
	if !ok {
		return Header{}, fmt.Errorf("%w: %s requires a byte order, got %s", ErrMalformed, kind, order)
	}
	h := Header{
		Shape:        append([]int{}, shape...),
		Kind:         kind,
		Order:        normalized,
		FortranOrder: fortranOrder,
		Descr:        string(normalized.Char()) + kind.Code(),
	}
	if err := h.checkShape(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// checkShape rejects negative dimensions and shapes whose element buffer
// would not fit in an int.
func (h Header) checkShape() error {
	if _, ok := dtype.Count(h.Shape, h.Kind); !ok {
		return fmt.Errorf("%w: shape %s is out of range for %s", ErrMalformed, FormatShape(h.Shape), h.Kind)
	}
	return nil
}

// Count returns the number of elements described by the shape.
// An empty shape is a scalar and holds one element.
func (h Header) Count() int {
	n, _ := dtype.Count(h.Shape, h.Kind)
	return n
}

// Parse decodes header text. Trailing padding (spaces and a newline) is
// ignored.
func Parse(text []byte) (Header, error) {
	for i, b := range text {
		if b >= 0x80 {
			return Header{}, fmt.Errorf("%w: non-ASCII byte 0x%02x at offset %d", ErrMalformed, b, i)
		}
	}
	s := string(text)
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ':' || unicode.IsSpace(r)
	})

	var h Header

	descr, ok := valueOf(tokens, "descr")
	if !ok {
		return Header{}, fmt.Errorf("%w: header does not contain the key 'descr'", ErrMalformed)
	}
	if err := h.parseDescr(descr); err != nil {
		return Header{}, err
	}

	fortran, ok := valueOf(tokens, "fortran_order")
	if !ok {
		return Header{}, fmt.Errorf("%w: header does not contain the key 'fortran_order'", ErrMalformed)
	}
	switch fortran {
	case "True":
		h.FortranOrder = true
	case "False":
		h.FortranOrder = false
	default:
		return Header{}, fmt.Errorf("%w: invalid fortran_order %q", ErrMalformed, fortran)
	}

	shape, err := parseShape(s)
	if err != nil {
		return Header{}, err
	}
	h.Shape = shape
	if err := h.checkShape(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// valueOf returns the token following the quoted key.
func valueOf(tokens []string, key string) (string, bool) {
	for i, tok := range tokens {
		if strings.Trim(tok, "{'\":") != key {
			continue
		}
		if i+1 >= len(tokens) {
			return "", false
		}
		return strings.TrimRight(tokens[i+1], "}"), true
	}
	return "", false
}

func (h *Header) parseDescr(value string) error {
	if strings.HasPrefix(value, "[") {
		return fmt.Errorf("%w: structured descriptor %s", dtype.ErrUnsupported, value)
	}
	descr := strings.Trim(value, "'\"")
	if descr == "" {
		return fmt.Errorf("%w: empty descriptor", ErrMalformed)
	}

	order, ok := dtype.ParseOrder(descr[0])
	if !ok {
		return fmt.Errorf("%w: unknown byte order in descriptor %q", ErrMalformed, descr)
	}
	kind, err := dtype.Lookup(descr[1:])
	if err != nil {
		return err
	}
	normalized, ok := dtype.Normalize(kind, order)
	if !ok {
		return fmt.Errorf("%w: descriptor %q has no byte order for a multi-byte kind", ErrMalformed, descr)
	}

	h.Kind = kind
	h.Order = normalized
	h.Descr = descr
	return nil
}

func parseShape(s string) ([]int, error) {
	left := strings.IndexByte(s, '(')
	if left < 0 {
		return nil, fmt.Errorf("%w: shape not found in header", ErrMalformed)
	}
	right := strings.IndexByte(s[left:], ')')
	if right < 0 {
		return nil, fmt.Errorf("%w: unterminated shape in header", ErrMalformed)
	}

	shape := []int{}
	for _, part := range strings.Split(s[left+1:left+right], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseUint(part, 10, strconv.IntSize-1)
		if err != nil {
			return nil, fmt.Errorf("%w: shape contains invalid integer %q", ErrMalformed, part)
		}
		shape = append(shape, int(d))
	}
	return shape, nil
}

// Format returns the header dict text without padding.
func (h Header) Format() string {
	fortran := "False"
	if h.FortranOrder {
		fortran = "True"
	}
	return fmt.Sprintf("{ 'descr': '%s', 'fortran_order': %s, 'shape': %s, }", h.Descr, fortran, FormatShape(h.Shape))
}

// FormatShape renders shape as a Python tuple literal: "()", "(3,)" or
// "(2, 3)".
func FormatShape(shape []int) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(shape[0]) + ",)"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

package render

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/seal-io/bendump/pkg/element"
)

// ValueAttribute names the attribute holding a root
// that cannot be spread into the body.
const ValueAttribute = "value"

// HCL renders the given tree as an HCL body.
//
// A non-empty root dictionary whose keys are all valid identifiers
// becomes one attribute per entry, any other root becomes ValueAttribute.
func HCL(e element.Element) []byte {
	var (
		wf = hclwrite.NewFile()
		wb = wf.Body()
	)

	if d, ok := e.(*element.Dictionary); ok && spreadable(d) {
		for _, et := range d.Entries() {
			wb.SetAttributeRaw(string(et.Key), valueTokens(et.Value))
		}
	} else {
		wb.SetAttributeRaw(ValueAttribute, valueTokens(e))
	}

	return hclwrite.Format(wf.Bytes())
}

func spreadable(d *element.Dictionary) bool {
	if d.Len() == 0 {
		return false
	}

	for _, k := range d.Keys() {
		if !hclsyntax.ValidIdentifier(string(k)) {
			return false
		}
	}

	return true
}

// Value converts the given tree to a cty value:
// integers to numbers, byte strings to strings,
// lists to tuples and dictionaries to objects.
func Value(e element.Element) cty.Value {
	switch v := e.(type) {
	case element.Integer:
		return cty.NumberIntVal(int64(v))
	case element.ByteString:
		return cty.StringVal(string(v))
	case element.List:
		if len(v) == 0 {
			return cty.EmptyTupleVal
		}

		vs := make([]cty.Value, 0, len(v))
		for i := range v {
			vs = append(vs, Value(v[i]))
		}

		return cty.TupleVal(vs)
	case *element.Dictionary:
		if v.Len() == 0 {
			return cty.EmptyObjectVal
		}

		vs := make(map[string]cty.Value, v.Len())
		for _, et := range v.Entries() {
			vs[string(et.Key)] = Value(et.Value)
		}

		return cty.ObjectVal(vs)
	}

	panic(fmt.Sprintf("render: unknown element %s", typeName(e)))
}

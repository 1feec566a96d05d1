package render

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/seal-io/bendump/pkg/element"
)

func valueTokens(e element.Element) hclwrite.Tokens {
	return hclwrite.TokensForValue(Value(e))
}

func typeName(e element.Element) string {
	return fmt.Sprintf("%T", e)
}

package configvars

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// LoadHCLFile reads an HCL file and flattens it into a Map.
//
// Attributes are evaluated without variables or functions. Blocks contribute
// their type and labels as key segments, so
//
//	Commands "deploy" {
//	  region = "eu-west-1"
//	}
//
// yields "Commands:deploy:region". Objects and maps recurse, sequences are
// indexed from 0, null values are skipped.
func LoadHCLFile(path string) (Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to decode HCL file %s: unsupported body type %T", path, file.Body)
	}

	out := make(Map)
	if err := flattenHCLBody(out, "", body); err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, err)
	}
	return out, nil
}

func flattenHCLBody(out Map, key string, body *hclsyntax.Body) error {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		if err := flattenCty(out, joinKey(key, name), val); err != nil {
			return err
		}
	}
	for _, block := range body.Blocks {
		blockKey := joinKey(key, block.Type)
		for _, label := range block.Labels {
			blockKey = joinKey(blockKey, label)
		}
		if err := flattenHCLBody(out, blockKey, block.Body); err != nil {
			return err
		}
	}
	return nil
}

func flattenCty(out Map, key string, val cty.Value) error {
	if val.IsNull() {
		return nil
	}
	if !val.IsKnown() {
		return fmt.Errorf("key %q: value is unknown", key)
	}

	ty := val.Type()
	switch {
	case ty.IsObjectType() || ty.IsMapType():
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			if err := flattenCty(out, joinKey(key, k.AsString()), v); err != nil {
				return err
			}
		}
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		i := 0
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			if err := flattenCty(out, joinKey(key, strconv.Itoa(i)), v); err != nil {
				return err
			}
			i++
		}
	default:
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = str.AsString()
	}
	return nil
}

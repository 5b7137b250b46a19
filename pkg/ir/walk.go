package ir

// ComplexNames returns every named reference reachable from t through array
// items and object properties, in first-seen order and without duplicates.
// Unresolved references (empty names) are skipped.
func ComplexNames(t TypeDescriptor) []string {
	var out []string
	seen := map[string]struct{}{}
	collectNames(t, seen, &out)
	return out
}

func collectNames(t TypeDescriptor, seen map[string]struct{}, out *[]string) {
	switch v := t.(type) {
	case *RefType:
		if v.Name == "" {
			return
		}
		if _, ok := seen[v.Name]; ok {
			return
		}
		seen[v.Name] = struct{}{}
		*out = append(*out, v.Name)
	case *ArrayType:
		collectNames(v.Item, seen, out)
	case *ObjectType:
		if v.Properties == nil {
			return
		}
		for _, prop := range v.Properties.FromOldest() {
			collectNames(prop, seen, out)
		}
	}
}

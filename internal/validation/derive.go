package validation

// CreateSchema derives the create-shape schema from a stored-shape schema.
// Fields named in serverAssigned (identifier, audit timestamps) are removed
// entirely; every surviving field becomes optional; fields named in
// alwaysRequired are restored to required. Validators and nullability are
// carried over unchanged. The derivation is pure, so the alwaysRequired set
// is the single source of truth for what a create payload must supply.
func CreateSchema(stored Schema, serverAssigned, alwaysRequired []string) Schema {
	skip := make(map[string]bool, len(serverAssigned))
	for _, name := range serverAssigned {
		skip[name] = true
	}
	keep := make(map[string]bool, len(alwaysRequired))
	for _, name := range alwaysRequired {
		keep[name] = true
	}

	derived := make(Schema, 0, len(stored))
	for _, f := range stored {
		if skip[f.Name] {
			continue
		}
		f.Required = keep[f.Name]
		derived = append(derived, f)
	}
	return derived
}

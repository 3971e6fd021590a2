package registration

// FullValidate recomputes every field's message from scratch. The returned
// set holds only failing fields; ok is true when it is empty. fields is not
// modified.
func FullValidate(fields Fields) (Errors, bool) {
	errs := make(Errors)
	for _, name := range AllFields {
		if msg := ValidateField(name, fields.Get(name)); msg != "" {
			errs[name] = msg
		}
	}
	return errs, len(errs) == 0
}

// EditPatch returns the single-entry error patch for a live edit: an empty
// message when value is non-empty, the generic required message otherwise.
// Format rules are not consulted.
func EditPatch(name FieldName, value string) Errors {
	if value != "" {
		return Errors{name: ""}
	}
	return Errors{name: RequiredMessage(name)}
}

// ApplyEdit stores value under name and patches that field's message,
// returning new maps. Other entries of errs are carried over untouched, even
// if stale. Neither input is modified.
func ApplyEdit(fields Fields, errs Errors, name FieldName, value string) (Fields, Errors) {
	nextFields := fields.Clone()
	nextFields[name] = value

	nextErrs := errs.Clone()
	nextErrs[name] = EditPatch(name, value)[name]

	return nextFields, nextErrs
}

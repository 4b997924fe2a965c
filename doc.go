/*
Package devfolio validates developer portfolio documents.

A DevFolio document aggregates a person's basics, work history, projects,
education, online courses, certifications, skills, languages, publications,
talks and more. Every collection is optional; each entry has a handful of
required fields and typed, constrained optional ones.

The package-level functions use a shared default Validator:

	res := devfolio.Validate(input)
	if !res.Success {
		fmt.Println(devfolio.FormatErrors(res.Errors))
		// 1. basics.name: Name is required
		// 2. basics.email: Invalid email
	}

Input may be an untyped tree (map[string]any, as produced by encoding/json
or yaml.v3), raw JSON bytes, or a typed Document.

Parse is the strict form and returns a *schema.ValidationError carrying every
violation. SafeParse and Validate never fail; they return a Result. IsValid is
the boolean predicate.

The field rules live in package catalog and the engine in package schema.
Package jsonschema exports the same rules as a draft-07 JSON Schema.
*/
package devfolio

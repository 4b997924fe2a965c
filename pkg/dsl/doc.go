/*
Package dsl provides a fluent builder for portfolio documents.

It produces the untyped trees a decoder would, valid or not, which makes it
handy for tests, fixtures and seeding a store without JSON literals.

Example usage:

	b := dsl.New()

	b.Add("jane").
		Name("Jane Doe").
		Email("jane@example.com").
		Work("Acme", "Lead Engineer", "2020-01-15", "").
		Skill("Go", "expert")

	b.Add("broken").
		Email("not-an-email")

	// The resulting source can be imported into a portfolio.Manager.
	src, err := b.Build()
*/
package dsl
